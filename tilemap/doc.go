// Package tilemap rasterizes a generated dungeon onto a uniform grid of
// tiles and analyses the result as a graph of walkable cells.
//
// What:
//
//   - Rasterize covers every active room's outline with Floor tiles and every
//     hallway point with Corridor tiles (Floor wins where they overlap).
//   - Components finds contiguous walkable regions with breadth-first search.
//   - String renders the grid one character per tile.
//
// Why:
//
//   - Game maps are consumed as tiles, not polygons.
//   - A connected layout rasterizes to exactly one component; more than one
//     means the cell size is too coarse or the tree is a forest.
//
// Complexity:
//
//   - Rasterize:  O(W×H + P), Memory: O(W×H)   (P = hallway points).
//   - Components: O(W×H×d),   Memory: O(W×H)   (d = 4 or 8).
//
// Options:
//
//   - Options.Cell: world units per tile edge.
//   - Options.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: nothing to rasterize, or a non-positive size.
//   - ErrCellSize: Options.Cell is not positive.
package tilemap
