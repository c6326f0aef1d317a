package geodesic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chamferdt/grid"
)

// randomInputs builds a w×h label map with labels 0..3 and roughly one
// marker per markerEvery cells. The seed is fixed so failures reproduce.
func randomInputs(tb testing.TB, w, h int, seed int64, markerEvery int) (*grid.Labels, *grid.Marker) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	labels, err := grid.NewLabels(w, h)
	require.NoError(tb, err)
	markers, err := grid.NewMarker(w, h)
	require.NoError(tb, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Background is rarer than any single label.
			if rng.Intn(5) > 0 {
				labels.Set(x, y, 1+rng.Intn(3))
			}
			markers.Set(x, y, rng.Intn(markerEvery) == 0)
		}
	}
	return labels, markers
}
