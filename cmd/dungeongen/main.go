// Command dungeongen generates a dungeon layout and prints it, or serves
// generation over a websocket with -serve.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/dungeongen/dungeon"
	"github.com/katalvlaran/dungeongen/internal/config"
	"github.com/katalvlaran/dungeongen/internal/stream"
	"github.com/katalvlaran/dungeongen/physics/separation"
	"github.com/katalvlaran/dungeongen/tilemap"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "dungeongen: ", log.LstdFlags)

	cfg, err := config.FromArgs("dungeongen", args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, config.ErrInvalid) {
			return exitUsage
		}
		return exitFailure
	}

	if cfg.Serve != "" {
		srv := stream.NewServer(cfg, logger)
		if err := srv.ListenAndServe(ctx, cfg.Serve); err != nil {
			logger.Print(err)
			return exitFailure
		}
		return exitOK
	}

	d, err := generate(ctx, cfg, logger)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}
	if err := write(stdout, cfg, d); err != nil {
		logger.Print(err)
		return exitFailure
	}

	return exitOK
}

func generate(ctx context.Context, cfg config.Config, logger *log.Logger) (*dungeon.Dungeon, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	world := separation.NewWorld(cfg.Engine)
	go func() { _ = world.Run(ctx, cfg.Tick) }()

	return dungeon.Generate(ctx, world,
		dungeon.WithSeed(cfg.Seed),
		dungeon.WithParams(cfg.Rooms),
		dungeon.WithSettleTimeout(cfg.SettleTimeout),
		dungeon.WithStageHook(func(s dungeon.Stage, d *dungeon.Dungeon) {
			switch s {
			case dungeon.StageSeparating:
				logger.Printf("%s: %d steps", s, world.Steps())
			case dungeon.StageMainRooms:
				logger.Printf("%s: %d of %d (threshold %.1f)", s, len(d.MainRooms), len(d.Rooms), d.AreaThreshold)
			case dungeon.StageIntersecting:
				logger.Printf("%s: %d", s, len(d.Intersecting))
			default:
				logger.Printf("%s", s)
			}
		}))
}

func write(w io.Writer, cfg config.Config, d *dungeon.Dungeon) error {
	switch cfg.Format {
	case config.FormatDump:
		dump := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		dump.Fdump(w, d.Layout())
		return nil
	case config.FormatTiles:
		g, err := tilemap.Rasterize(d, tilemap.Options{Cell: cfg.Cell, Conn: tilemap.Conn4})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s%d components\n", g, len(g.Components()))
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d.Layout())
	}
}
