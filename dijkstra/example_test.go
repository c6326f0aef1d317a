package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/chamferdt/chamfer"
	"github.com/katalvlaran/chamferdt/dijkstra"
	"github.com/katalvlaran/chamferdt/grid"
)

// ExampleDistances computes exact 3-4 distances from the centre of a 3×3 grid.
func ExampleDistances() {
	labels, _ := grid.LabelsFrom2D([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	markers, _ := grid.NewMarker(3, 3)
	markers.Set(1, 1, true)

	dist, _, err := dijkstra.Distances(labels, markers, chamfer.Borgefors.Mask())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for y := 0; y < 3; y++ {
		fmt.Println(dist[y*3 : y*3+3])
	}
	// Output:
	// [4 3 4]
	// [3 0 3]
	// [4 3 4]
}
