package spiral

import (
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatSpiral_EndsNearStartRadius(t *testing.T) {
	center := geom2d.Vec2{X: 0, Y: 0}
	start := geom2d.Vec2{X: 5, Y: 0}
	pl := FlatSpiral(center, start, 1.0, geom2d.CCW, 1e-3)

	require.NotEmpty(t, pl.Pieces)
	end := pl.End()
	assert.InDelta(t, 5, center.Dist(end), 0.2)
}

func TestFlatSpiral_ZeroPitchIsEmpty(t *testing.T) {
	pl := FlatSpiral(geom2d.Vec2{}, geom2d.Vec2{X: 1}, 0, geom2d.CW, 1e-3)
	assert.Empty(t, pl.Pieces)
}
