package room

// AreaThreshold returns the arithmetic mean of the room areas.
// An empty input yields 0.
//
// Complexity: O(n).
func AreaThreshold(rooms []*Room) float64 {
	if len(rooms) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rooms {
		sum += float64(r.Area)
	}

	return sum / float64(len(rooms))
}

// SelectMain keeps the rooms whose area is at least the mean area, in input
// order, and returns them with the threshold used. With uniform areas every
// room qualifies; an empty input returns an empty selection.
//
// The returned slice is freshly allocated; rooms is not modified.
// Complexity: O(n).
func SelectMain(rooms []*Room) ([]*Room, float64) {
	threshold := AreaThreshold(rooms)
	main := make([]*Room, 0, len(rooms))
	for _, r := range rooms {
		if float64(r.Area) >= threshold {
			main = append(main, r)
		}
	}

	return main, threshold
}
