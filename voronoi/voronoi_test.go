package voronoi

import (
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_TwoSitesSplitBoundsAtMidline(t *testing.T) {
	bounds := geom2d.Rect{Min: geom2d.Vec2{X: -10, Y: -10}, Max: geom2d.Vec2{X: 10, Y: 10}}
	xs := []float64{-5, 5}
	ys := []float64{0, 0}

	segs := Generate(t, bounds, xs, ys)
	require.NotEmpty(t, segs)
	for _, s := range segs {
		assert.LessOrEqual(t, s.P1.X, 10.0001)
		assert.GreaterOrEqual(t, s.P1.X, -10.0001)
	}
}

func Generate(t *testing.T, bounds geom2d.Rect, xs, ys []float64) []geom2d.Segment2 {
	t.Helper()
	return Generator{}.Generate(xs, ys, bounds)
}

func TestClipHalfPlane_EmptyWhenFullyExcluded(t *testing.T) {
	square := rectPolygon(geom2d.Rect{Min: geom2d.Vec2{X: 0, Y: 0}, Max: geom2d.Vec2{X: 1, Y: 1}})
	out := clipHalfPlane(square, geom2d.Vec2{X: 1, Y: 0}, -10)
	assert.Empty(t, out)
}
