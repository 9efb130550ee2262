// Package mst reduces the triangulated main-room graph to a minimum spanning
// tree, the skeleton the dungeon's hallways follow.
//
// What & Why
//
//   - Input is a point set (main-room centers) and an edge list over point
//     indices, usually the three sides of every Delaunay triangle.
//   - A Delaunay triangulation contains the Euclidean MST, so reducing its
//     edges yields the cheapest corridor network that reaches every main room.
//
// Algorithms Provided
//
//   - EdgesFromTriangles(tris []int) []Edge
//
//   - Emits (a,b), (b,c), (c,a) for each index triple, walking the triangle
//     list from the last triple to the first. Shared sides appear twice;
//     duplicates are left in place.
//
//   - Kruskal(points []geom.Point, edges []Edge) ([]Edge, error)
//
//   - Strategy: weight every edge by squared Euclidean distance, stable-sort
//     ascending, and accept an edge iff its endpoints are in different sets of
//     a dsu.DSU sized len(points). Stops once len(points)-1 edges are accepted.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) space.
//
//   - Determinism: ties keep input order (sort.SliceStable); the result lists
//     edges in acceptance order and is never re-sorted.
//
//   - EdgesAlongLine(points []geom.Point) []Edge
//
//   - Joins points in order of their projection onto the line they share.
//     The dungeon pipeline uses it in place of triangle sides when the
//     main-room centers are collinear and no triangulation exists.
//
//   - Prim(points []geom.Point, edges []Edge, root int) ([]Edge, error)
//
//   - Verification aid, not a pipeline stage: the dungeon pipeline only
//     calls Kruskal. Tests and benchmarks use Prim to check that Kruskal's
//     tree has minimal total weight.
//
//   - Strategy: grow one tree from root with a min-heap of candidate edges.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Weights
//
//	Squared distance preserves the ordering of true distance, so no square
//	root is taken. TotalWeight reports the summed squared lengths.
//
// Error Conditions
//
//   - ErrVertexOutOfRange: an edge endpoint (or Prim's root) is outside
//     [0, len(points)). This is an upstream defect, never a user error.
//
// A disconnected edge set is not an error: the result is a spanning forest
// with fewer than len(points)-1 edges. Callers that require a tree compare
// the length themselves.
package mst
