package labeling_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/chamferdt/grid"
	"github.com/katalvlaran/chamferdt/labeling"
)

// TestConnectedComponents_Binary4 labels a 4×3 mask with Conn4.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 components of sizes 4 and 2, numbered in raster order.
func TestConnectedComponents_Binary4(t *testing.T) {
	b, err := grid.BinaryFrom2D([][]bool{
		{false, true, true, false},
		{true, true, false, false},
		{false, false, true, true},
	})
	if err != nil {
		t.Fatalf("BinaryFrom2D failed: %v", err)
	}

	l, n, err := labeling.ConnectedComponents(b, labeling.Conn4)
	if err != nil {
		t.Fatalf("ConnectedComponents failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("got %d components; want 2", n)
	}
	want := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 2, 2},
	}
	for y, row := range want {
		for x, v := range row {
			if got := l.At(x, y); got != v {
				t.Errorf("label(%d,%d) = %d; want %d", x, y, got, v)
			}
		}
	}
	if sizes := labeling.Sizes(l); !reflect.DeepEqual(sizes, []int{6, 4, 2}) {
		t.Errorf("sizes = %v; want [6 4 2]", sizes)
	}
}

// TestConnectedComponents_Diagonal8 joins an X of corner-touching cells.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	rows := [][]bool{
		{true, false, false, false, true},
		{false, true, false, true, false},
		{false, false, true, false, false},
		{false, true, false, true, false},
		{true, false, false, false, true},
	}
	b, err := grid.BinaryFrom2D(rows)
	if err != nil {
		t.Fatalf("BinaryFrom2D failed: %v", err)
	}

	_, n8, err := labeling.ConnectedComponents(b, labeling.Conn8)
	if err != nil {
		t.Fatalf("ConnectedComponents failed: %v", err)
	}
	if n8 != 1 {
		t.Errorf("Conn8: got %d components; want 1", n8)
	}

	_, n4, err := labeling.ConnectedComponents(b, labeling.Conn4)
	if err != nil {
		t.Fatalf("ConnectedComponents failed: %v", err)
	}
	if n4 != 9 {
		t.Errorf("Conn4: got %d components; want 9", n4)
	}
}

// TestConnectedComponents_SplitsLabels gives each patch of a repeated
// label its own number and keeps touching labels apart.
func TestConnectedComponents_SplitsLabels(t *testing.T) {
	in, err := grid.LabelsFrom2D([][]int{
		{5, 5, 0, 5},
		{7, 7, 0, 5},
	})
	if err != nil {
		t.Fatalf("LabelsFrom2D failed: %v", err)
	}

	l, n, err := labeling.ConnectedComponents(in, labeling.Conn8)
	if err != nil {
		t.Fatalf("ConnectedComponents failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("got %d components; want 3", n)
	}
	want := [][]int{
		{1, 1, 0, 2},
		{3, 3, 0, 2},
	}
	if got := l.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v; want %v", got, want)
	}
}

func TestConnectivity_String(t *testing.T) {
	if s := labeling.Conn8.String(); s != "conn8" {
		t.Errorf("Conn8.String() = %q", s)
	}
	if s := labeling.Connectivity(5).String(); s != "Connectivity(5)" {
		t.Errorf("Connectivity(5).String() = %q", s)
	}
}
