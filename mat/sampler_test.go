package mat

import (
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
	"github.com/arl/pocketgen/polyline"
	"github.com/arl/pocketgen/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() model.Region {
	outer := polyline.FromPoints([]geom2d.Vec2{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20},
	})
	return model.Region{Outer: outer}
}

func TestSample_UnitSquareProducesInteriorSegments(t *testing.T) {
	region := unitSquare()
	s := Sampler{Voronoi: voronoi.Generator{}}

	segs := s.Sample(region, 1.0, 1e-3)
	require.NotEmpty(t, segs)
	for _, seg := range segs {
		assert.True(t, region.InsideOuterNotInIslands(seg.P1, 1e-2))
		assert.True(t, region.InsideOuterNotInIslands(seg.P2, 1e-2))
	}
}

func TestSampleArc_CoversFullSweep(t *testing.T) {
	a := polyline.Arc{Arc: geom2d.Arc{Center: geom2d.Vec2{}, Radius: 5, Start: 0, Sweep: 3.14159}}
	pts := sampleArc(a, 0.5)
	assert.Greater(t, len(pts), 3)
}
