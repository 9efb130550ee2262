package scatter

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/physics"
	"github.com/katalvlaran/dungeongen/room"
)

// MinRoomSize is the floor added to every sampled width and height.
const MinRoomSize = 40

// Params describes one scatter run.
type Params struct {
	// Count is the number of rooms; values <= 0 produce none.
	Count int `yaml:"count" json:"count"`
	// Width and Height are the target extra size above MinRoomSize.
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	// StdDeviation widens the random size range on both axes.
	StdDeviation float64 `yaml:"stdDeviation" json:"stdDeviation"`
	// SpawnRadius is the radius of the sampling disk.
	SpawnRadius float64 `yaml:"spawnRadius" json:"spawnRadius"`
	// BoundsWidth and BoundsHeight center the disk at half their size.
	BoundsWidth  float64 `yaml:"boundsWidth" json:"boundsWidth"`
	BoundsHeight float64 `yaml:"boundsHeight" json:"boundsHeight"`
	// SleepThreshold is passed to every body; <= 0 selects
	// physics.DefaultSleepThreshold.
	SleepThreshold int `yaml:"sleepThreshold" json:"sleepThreshold"`
}

// DefaultParams returns a medium-sized dungeon on a 1280×720 canvas.
func DefaultParams() Params {
	return Params{
		Count:          150,
		Width:          40,
		Height:         40,
		StdDeviation:   20,
		SpawnRadius:    100,
		BoundsWidth:    1280,
		BoundsHeight:   720,
		SleepThreshold: physics.DefaultSleepThreshold,
	}
}

// PointInCircle returns a rounded point uniformly distributed over the disk
// of the given radius centered at the origin.
func PointInCircle(rng *rand.Rand, radius float64) geom.Point {
	if radius == 0 {
		radius = 1
	}
	t := 2 * math.Pi * rng.Float64()
	u := rng.Float64() + rng.Float64()
	r := u
	if u > 1 {
		r = 2 - u
	}

	return geom.Point{
		X: math.Round(radius * r * math.Cos(t)),
		Y: math.Round(radius * r * math.Sin(t)),
	}
}

// RoomSize returns MinRoomSize + round(U·(target+stdDeviation)).
func RoomSize(rng *rand.Rand, target, stdDeviation float64) int {
	return MinRoomSize + int(math.Round(rng.Float64()*(target+stdDeviation)))
}

// Scatter samples p.Count rooms and inserts one body per room into world.
// The returned rooms are indexed 0..Count-1 in creation order.
func Scatter(world physics.World, p Params, rng *rand.Rand) []*room.Room {
	if p.Count <= 0 {
		return []*room.Room{}
	}
	half := geom.Pt(p.BoundsWidth/2, p.BoundsHeight/2)
	opts := physics.BodyOptions{SleepThreshold: p.SleepThreshold}

	rooms := make([]*room.Room, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		offset := PointInCircle(rng, p.SpawnRadius)
		w := RoomSize(rng, p.Width, p.StdDeviation)
		h := RoomSize(rng, p.Height, p.StdDeviation)

		body := world.NewRectangle(offset.Add(half), float64(w), float64(h), opts)
		world.AddBody(body)
		rooms = append(rooms, room.New(i, offset, w, h, body))
	}

	return rooms
}
