// Package triangulate computes the Delaunay triangulation of main-room
// centers. It is a thin adapter over github.com/fogleman/delaunay that fixes
// the small-input rule and the error surface the pipeline relies on.
//
// Contract:
//   - Output is a flat slice of point indices, one run of 3 per triangle.
//     Winding order is whatever the provider returns and carries no meaning.
//   - Fewer than 3 points yield an empty triangle set and no error.
//   - Any provider failure (all points collinear or coincident) is returned
//     wrapped in ErrTriangulation.
package triangulate

import (
	"errors"
	"fmt"

	"github.com/fogleman/delaunay"

	"github.com/katalvlaran/dungeongen/geom"
)

// ErrTriangulation indicates the triangulation provider could not
// triangulate the input.
var ErrTriangulation = errors.New("triangulate: no triangulation for input")

// MinPoints is the smallest input that can form a triangle.
const MinPoints = 3

// Triangulate returns the Delaunay triangles over points as index triples.
// The returned slice is owned by the caller.
func Triangulate(points []geom.Point) ([]int, error) {
	if len(points) < MinPoints {
		return []int{}, nil
	}
	in := make([]delaunay.Point, len(points))
	for i, p := range points {
		in[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %d points: %v", ErrTriangulation, len(points), err)
	}
	out := make([]int, len(tri.Triangles))
	copy(out, tri.Triangles)

	return out, nil
}

// Count returns the number of triangles in a flat index slice.
func Count(triangles []int) int { return len(triangles) / 3 }
