package hallway_test

import (
	"fmt"

	"github.com/katalvlaran/dungeongen/geom"
	"github.com/katalvlaran/dungeongen/hallway"
)

func ExamplePath() {
	fmt.Println(hallway.Path(geom.Pt(0, 0), geom.Pt(2, 1), true))
	fmt.Println(hallway.Path(geom.Pt(0, 0), geom.Pt(2, 1), false))
	// Output:
	// [{0 0} {1 0} {2 0} {2 0} {2 1}]
	// [{0 0} {0 1} {0 1} {1 1} {2 1}]
}
