// Package config loads the command-line tool's settings from an optional
// YAML file and command-line flags. Flags given explicitly override the
// file; everything else falls back to Default.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dungeongen/physics/separation"
	"github.com/katalvlaran/dungeongen/scatter"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Output formats.
const (
	FormatJSON  = "json"
	FormatDump  = "dump"
	FormatTiles = "tiles"
)

// Config is the full set of knobs for one generation or server process.
type Config struct {
	Seed   int64             `yaml:"seed"`
	Rooms  scatter.Params    `yaml:"rooms"`
	Engine separation.Config `yaml:"engine"`
	// SettleTimeout bounds the separating stage; 0 waits indefinitely.
	SettleTimeout time.Duration `yaml:"settleTimeout"`
	// Tick is the engine step period.
	Tick time.Duration `yaml:"tick"`
	// Format selects the output encoding: json, dump or tiles.
	Format string `yaml:"format"`
	// Cell is the tile size for the tiles format.
	Cell float64 `yaml:"cell"`
	// Serve, when set, runs the websocket server on this address.
	Serve string `yaml:"serve"`
}

// Default returns the settings used when neither a file nor a flag
// overrides them.
func Default() Config {
	return Config{
		Rooms:         scatter.DefaultParams(),
		Engine:        separation.DefaultConfig(),
		SettleTimeout: 30 * time.Second,
		Tick:          separation.DefaultTick,
		Format:        FormatJSON,
		Cell:          8,
	}
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, cfg.Validate()
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(bytes.NewReader(raw))
}

// Validate reports the first meaningless setting.
func (c Config) Validate() error {
	switch {
	case c.Rooms.Count < 0:
		return fmt.Errorf("%w: rooms.count %d < 0", ErrInvalid, c.Rooms.Count)
	case c.Rooms.Width < 0 || c.Rooms.Height < 0:
		return fmt.Errorf("%w: negative room size", ErrInvalid)
	case c.Rooms.StdDeviation < 0:
		return fmt.Errorf("%w: rooms.stdDeviation %v < 0", ErrInvalid, c.Rooms.StdDeviation)
	case c.Rooms.SpawnRadius < 0:
		return fmt.Errorf("%w: rooms.spawnRadius %v < 0", ErrInvalid, c.Rooms.SpawnRadius)
	case c.SettleTimeout < 0:
		return fmt.Errorf("%w: settleTimeout %v < 0", ErrInvalid, c.SettleTimeout)
	case c.Tick < 0:
		return fmt.Errorf("%w: tick %v < 0", ErrInvalid, c.Tick)
	case c.Cell <= 0:
		return fmt.Errorf("%w: cell %v <= 0", ErrInvalid, c.Cell)
	}
	switch c.Format {
	case FormatJSON, FormatDump, FormatTiles:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}

	return nil
}

// FromArgs parses command-line arguments (without the program name).
// When -config is given the file is loaded first and only flags that
// appear in args override it.
func FromArgs(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	def := Default()
	f := def
	var path string
	fs.StringVar(&path, "config", "", "YAML settings file")
	fs.Int64Var(&f.Seed, "seed", def.Seed, "RNG seed (0 selects the default seed)")
	fs.IntVar(&f.Rooms.Count, "rooms", def.Rooms.Count, "number of rooms")
	fs.Float64Var(&f.Rooms.Width, "room-width", def.Rooms.Width, "target extra room width")
	fs.Float64Var(&f.Rooms.Height, "room-height", def.Rooms.Height, "target extra room height")
	fs.Float64Var(&f.Rooms.StdDeviation, "stddev", def.Rooms.StdDeviation, "room size spread")
	fs.Float64Var(&f.Rooms.SpawnRadius, "radius", def.Rooms.SpawnRadius, "spawn disk radius")
	fs.Float64Var(&f.Rooms.BoundsWidth, "bounds-width", def.Rooms.BoundsWidth, "canvas width")
	fs.Float64Var(&f.Rooms.BoundsHeight, "bounds-height", def.Rooms.BoundsHeight, "canvas height")
	fs.DurationVar(&f.SettleTimeout, "timeout", def.SettleTimeout, "separation timeout (0 waits forever)")
	fs.DurationVar(&f.Tick, "tick", def.Tick, "engine step period")
	fs.StringVar(&f.Format, "format", def.Format, "output format: json, dump or tiles")
	fs.Float64Var(&f.Cell, "cell", def.Cell, "tile size for -format tiles")
	fs.StringVar(&f.Serve, "serve", def.Serve, "serve websocket generation on this address")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalid, fs.Arg(0))
	}
	if path == "" {
		return f, f.Validate()
	}

	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Seed = f.Seed
		case "rooms":
			cfg.Rooms.Count = f.Rooms.Count
		case "room-width":
			cfg.Rooms.Width = f.Rooms.Width
		case "room-height":
			cfg.Rooms.Height = f.Rooms.Height
		case "stddev":
			cfg.Rooms.StdDeviation = f.Rooms.StdDeviation
		case "radius":
			cfg.Rooms.SpawnRadius = f.Rooms.SpawnRadius
		case "bounds-width":
			cfg.Rooms.BoundsWidth = f.Rooms.BoundsWidth
		case "bounds-height":
			cfg.Rooms.BoundsHeight = f.Rooms.BoundsHeight
		case "timeout":
			cfg.SettleTimeout = f.SettleTimeout
		case "tick":
			cfg.Tick = f.Tick
		case "format":
			cfg.Format = f.Format
		case "cell":
			cfg.Cell = f.Cell
		case "serve":
			cfg.Serve = f.Serve
		}
	})

	return cfg, cfg.Validate()
}
