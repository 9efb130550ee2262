// Package geom provides the small set of planar primitives the dungeon
// pipeline works in: points, axis-aligned rectangles and convex or concave
// polygons given by their vertex lists.
//
// Coordinates are float64 in the physics world's space (y grows downward,
// as in the engine that positions the rooms). Nothing in this package
// allocates beyond the returned values, and every function is pure.
//
// Containment:
//
//   - Rect.Contains is half-open: [X, X+W) × [Y, Y+H).
//   - Polygon.Contains uses even-odd ray casting over the vertex list and
//     therefore works for any simple polygon, rotated or not.
package geom
