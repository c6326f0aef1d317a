package geodesic_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chamferdt/chamfer"
	"github.com/katalvlaran/chamferdt/geodesic"
	"github.com/katalvlaran/chamferdt/grid"
	"github.com/katalvlaran/chamferdt/numeric"
)

// benchInputs builds a deterministic n×n label map made of vertical bands
// with random gaps, so paths have to bend between bands.
func benchInputs(b *testing.B, n int) (*grid.Labels, *grid.Marker) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	labels, err := grid.NewLabels(n, n)
	if err != nil {
		b.Fatalf("setup NewLabels failed: %v", err)
	}
	markers, err := grid.NewMarker(n, n)
	if err != nil {
		b.Fatalf("setup NewMarker failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x%16 == 15 && rng.Intn(8) != 0 {
				continue // wall with random gaps
			}
			labels.Set(x, y, 1)
			markers.Set(x, y, rng.Intn(5000) == 0)
		}
	}
	return labels, markers
}

// BenchmarkFloat32_QuasiEuclidean runs the full pipeline on a 512×512 grid.
// Complexity: O(W×H×k) per sweep plus the worklist.
func BenchmarkFloat32_QuasiEuclidean(b *testing.B) {
	labels, markers := benchInputs(b, 512)
	mask := chamfer.QuasiEuclidean.Mask()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := geodesic.Float32(labels, markers, mask); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUint16_ChessKnight reuses one output field across iterations.
func BenchmarkUint16_ChessKnight(b *testing.B) {
	labels, markers := benchInputs(b, 512)
	mask := chamfer.ChessKnight.Mask()
	dst, err := grid.NewField[uint16](512, 512)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = geodesic.TransformInto[uint16](dst, labels, markers, mask, numeric.Uint16{}); err != nil {
			b.Fatal(err)
		}
	}
}
