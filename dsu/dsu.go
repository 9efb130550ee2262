// Package dsu implements a disjoint-set forest (union-find) over the dense
// integer range [0, n).
//
// The forest is a fixed arena of parent and rank slices sized at
// construction; it never grows. Find uses iterative path halving and Union
// uses union by rank, so a sequence of m operations costs O(m·α(n)).
package dsu

// DSU is a disjoint-set forest over n elements.
// The zero value is an empty forest; use New to size it.
type DSU struct {
	parent []int
	rank   []uint8
	sets   int
}

// New returns a forest of n singleton sets. Negative n is treated as 0.
// Complexity: O(n).
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{parent: make([]int, n), rank: make([]uint8, n), sets: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Find returns the representative of x's set. x must be in [0, Len()).
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		// Path halving: point x at its grandparent.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Connected reports whether a and b are in the same set.
func (d *DSU) Connected(a, b int) bool { return d.Find(a) == d.Find(b) }

// Union merges the sets of a and b. It returns false if they were already
// in the same set.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Attach the shallower tree under the deeper root.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.sets--

	return true
}
