// Package dungeongen generates TinyKeep-style dungeon layouts: rooms are
// scattered in a disk, pushed apart by a rigid-body world, and the largest
// are linked by a corridor network that follows a minimum spanning tree.
//
// Pipeline:
//
//	scatter/      — sample room offsets and sizes, register bodies with a physics.World
//	physics/      — the World/Body capability interface and the settle Gate
//	room/         — the Room record and mean-area main-room selection
//	triangulate/  — Delaunay triangles over main-room centers
//	mst/, dsu/    — Kruskal over the triangle sides with a union-find arena
//	hallway/      — one L-shaped corridor per tree edge
//	intersect/    — non-main rooms crossed by a corridor
//	dungeon/      — Generate and Assemble, tying the stages together
//
// Around it:
//
//	physics/separation/ — a small position-based engine implementing physics.World
//	geom/               — points, rectangles, polygons, ray-cast containment
//	tilemap/            — rasterize a Dungeon into tiles and find connected regions
//	internal/stream/    — websocket server streaming one envelope per stage
//	cmd/dungeongen/     — command-line front end (json, dump and tile output)
//
// Quick ASCII example (four main rooms, tree of three corridors):
//
//	[A]────┐    [B]
//	       │     │
//	      [x]    │
//	       │     │
//	[C]────┴────[D]
//
// x is a small room the corridor passes through; it joins the layout.
//
//	go run ./cmd/dungeongen -seed 7 -format tiles
package dungeongen
