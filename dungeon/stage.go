package dungeon

// Stage identifies one step of the pipeline.
type Stage int

const (
	StageScatter Stage = iota
	StageSeparating
	StageMainRooms
	StageTriangulation
	StageSpanningTree
	StageHallways
	StageIntersecting
)

var stageNames = [...]string{
	StageScatter:       "scatter",
	StageSeparating:    "separating",
	StageMainRooms:     "main rooms",
	StageTriangulation: "triangulation",
	StageSpanningTree:  "spanning tree",
	StageHallways:      "hallways",
	StageIntersecting:  "intersecting rooms",
}

// Stages lists every stage in execution order.
func Stages() []Stage {
	out := make([]Stage, len(stageNames))
	for i := range out {
		out[i] = Stage(i)
	}

	return out
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}

	return stageNames[s]
}

// StageHook observes the dungeon after a stage completes. Fields belonging
// to later stages are still empty. Hooks run synchronously on the
// generating goroutine and must not modify d.
type StageHook func(s Stage, d *Dungeon)
