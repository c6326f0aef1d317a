// Package labeling splits regions into connected components and numbers
// them, producing the label maps the geodesic transforms consume.
//
// Two cells belong to the same component when they are in the same region
// (grid.Regions.Same) and joined by a chain of Conn4 or Conn8 neighbors.
// Components are numbered 1..n in raster order of their first cell; 0 stays
// background.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H) for the output and the BFS queue.
package labeling

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	}
	return fmt.Sprintf("Connectivity(%d)", int(c))
}

// offsets returns the neighbor displacements for c. Unknown values fall
// back to Conn4.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	}
	return [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
}
