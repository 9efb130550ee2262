package geom

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// DistSq returns the squared Euclidean distance between p and q.
// Callers comparing distances should prefer it over math.Hypot.
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAt returns the rectangle of size w×h centered on c.
func RectAt(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Center returns the center point of r.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Max returns the bottom-right corner of r.
func (r Rect) Max() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Contains reports whether p lies inside r (half-open on the max edges).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlap returns the penetration depth of r and o along each axis.
// Both values are positive only when the rectangles intersect.
func (r Rect) Overlap(o Rect) (dx, dy float64) {
	dx = math.Min(r.X+r.W, o.X+o.W) - math.Max(r.X, o.X)
	dy = math.Min(r.Y+r.H, o.Y+o.H) - math.Max(r.Y, o.Y)

	return dx, dy
}

// Intersects reports whether r and o share interior area.
func (r Rect) Intersects(o Rect) bool {
	dx, dy := r.Overlap(o)

	return dx > 0 && dy > 0
}

// Polygon returns the four corners of r, clockwise in screen space
// starting at the top-left corner.
func (r Rect) Polygon() Polygon {
	return Polygon{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// BoundingBox returns the smallest rectangle containing both a and b.
// The result may have zero width or height.
func BoundingBox(a, b Point) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Polygon is an ordered vertex list; the closing edge from the last vertex
// back to the first is implicit.
type Polygon []Point

// Contains reports whether p lies inside the polygon using even-odd ray
// casting. Polygons with fewer than three vertices contain nothing.
//
// Complexity: O(len(poly)).
func (poly Polygon) Contains(p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		// Edge straddles the horizontal line through p?
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}

	return inside
}

// Bounds returns the axis-aligned bounding rectangle of the polygon.
// An empty polygon yields the zero Rect.
func (poly Polygon) Bounds() Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, v := range poly[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}

	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
