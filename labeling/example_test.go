package labeling_test

import (
	"fmt"

	"github.com/katalvlaran/chamferdt/chamfer"
	"github.com/katalvlaran/chamferdt/geodesic"
	"github.com/katalvlaran/chamferdt/grid"
	"github.com/katalvlaran/chamferdt/labeling"
)

// ExampleConnectedComponents labels two islands of a binary mask and runs a
// geodesic transform on the result. The right island holds no marker.
func ExampleConnectedComponents() {
	b, _ := grid.BinaryFrom2D([][]bool{
		{true, true, false, true},
		{true, false, false, true},
	})
	labels, n, _ := labeling.ConnectedComponents(b, labeling.Conn4)
	fmt.Println("components:", n)
	fmt.Println(labels.Rows())

	markers, _ := grid.NewMarker(4, 2)
	markers.Set(1, 0, true)
	f, _ := geodesic.Float64(labels, markers, chamfer.CityBlock.Mask())
	fmt.Println(f.Rows())
	// Output:
	// components: 2
	// [[1 1 0 2] [1 0 0 2]]
	// [[1 0 NaN +Inf] [2 NaN NaN +Inf]]
}
