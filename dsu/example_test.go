package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/dungeongen/dsu"
)

// ExampleDSU_Union shows cycle detection: the third union closes a cycle
// and is rejected.
func ExampleDSU_Union() {
	d := dsu.New(3)
	fmt.Println(d.Union(0, 1), d.Union(1, 2), d.Union(2, 0), d.Sets())
	// Output: true true false 1
}
