// SPDX-License-Identifier: MIT
// Package: dungeongen/dungeon
//
// Package dungeon runs the generation pipeline end to end.
//
// Stages, in order:
//
//	scatter            rooms sampled in a disk and registered with a physics.World
//	separating         physics.Gate waits until every body sleeps
//	main rooms         rooms with area ≥ mean area
//	triangulation      Delaunay over main-room centers, or a chain along
//	                   their line when they are collinear
//	spanning tree      Kruskal over the triangle sides
//	hallways           one L corridor per tree edge
//	intersecting rooms non-main rooms crossed by a corridor
//
// Generate drives all seven stages against a live world. Assemble runs the
// last five against rooms whose bodies are already at rest and is pure given
// the rooms and a coin, which makes it the unit most tests target.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Generate returns errors wrapped with the failing stage name; the
//     underlying sentinel (physics.ErrNotSettled) stays reachable through
//     errors.Is.
//   - Collinear or coincident main-room centers are not an error: Triangles
//     is empty and TriangleEdges joins the centers in order along their line.
//   - Internal invariant violations (a spanning tree with more than
//     |main|-1 edges, an out-of-range tree index) panic.
//   - The package does not log. WithStageHook observes progress.
package dungeon
