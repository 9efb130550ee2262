package dungeon

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dungeongen/hallway"
	"github.com/katalvlaran/dungeongen/intersect"
	"github.com/katalvlaran/dungeongen/mst"
	"github.com/katalvlaran/dungeongen/physics"
	"github.com/katalvlaran/dungeongen/room"
	"github.com/katalvlaran/dungeongen/scatter"
	"github.com/katalvlaran/dungeongen/triangulate"
)

// Generate scatters rooms into world, waits for them to settle and
// assembles the layout.
//
// world must be stepped by someone else (separation.World.Run, a game
// loop). Without a timeout option, Generate waits until ctx ends.
func Generate(ctx context.Context, world physics.World, opts ...Option) (*Dungeon, error) {
	if world == nil {
		return nil, fmt.Errorf("dungeon: %s: nil world", StageScatter)
	}
	cfg := newConfig(opts...)

	d := &Dungeon{Seed: cfg.seed}
	d.Rooms = scatter.Scatter(world, cfg.params, cfg.rng)
	cfg.emit(StageScatter, d)

	if err := cfg.gate.Wait(ctx, world, room.Bodies(d.Rooms)); err != nil {
		return nil, fmt.Errorf("dungeon: %s: %w", StageSeparating, err)
	}
	cfg.emit(StageSeparating, d)

	if err := assemble(d, cfg.coin, cfg.emit); err != nil {
		return nil, err
	}

	return d, nil
}

// Assemble runs the post-separation stages over rooms whose bodies are at
// rest. With the same rooms and an identically seeded coin it returns an
// identical result. A nil coin always lands heads.
func Assemble(rooms []*room.Room, coin hallway.Coin) (*Dungeon, error) {
	d := &Dungeon{Rooms: rooms}
	if err := assemble(d, coin, func(Stage, *Dungeon) {}); err != nil {
		return nil, err
	}

	return d, nil
}

func assemble(d *Dungeon, coin hallway.Coin, emit func(Stage, *Dungeon)) error {
	d.MainRooms, d.AreaThreshold = room.SelectMain(d.Rooms)
	emit(StageMainRooms, d)

	centers := room.Centers(d.MainRooms)
	tris, err := triangulate.Triangulate(centers)
	switch {
	case errors.Is(err, triangulate.ErrTriangulation):
		// Collinear or coincident centers: chain them along their line.
		d.Triangles = []int{}
		d.TriangleEdges = mst.EdgesAlongLine(centers)
	case err != nil:
		return fmt.Errorf("dungeon: %s: %w", StageTriangulation, err)
	default:
		d.Triangles = tris
		d.TriangleEdges = mst.EdgesFromTriangles(tris)
	}
	emit(StageTriangulation, d)

	tree, err := mst.Kruskal(centers, d.TriangleEdges)
	if err != nil {
		panic(fmt.Sprintf("dungeon: %s: %v", StageSpanningTree, err))
	}
	if len(d.MainRooms) > 0 && len(tree) > len(d.MainRooms)-1 {
		panic(fmt.Sprintf("dungeon: %s: %d edges over %d main rooms", StageSpanningTree, len(tree), len(d.MainRooms)))
	}
	d.SpanningTree = tree
	emit(StageSpanningTree, d)

	d.Hallways = hallway.Route(tree, d.MainRooms, coin)
	emit(StageHallways, d)

	d.Intersecting = intersect.Resolve(d.Hallways, d.MainRooms, d.Rooms)
	emit(StageIntersecting, d)

	return nil
}
