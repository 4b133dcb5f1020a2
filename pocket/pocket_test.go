package pocket

import (
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
	"github.com/arl/pocketgen/polyline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) model.Region {
	outer := polyline.FromPoints([]geom2d.Vec2{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side},
	})
	return model.Region{Outer: outer}
}

func TestRun_UnitSquareProducesNonEmptyPath(t *testing.T) {
	region := square(40)
	opts := DefaultOptions(4)

	var gen Generator
	path, status := gen.Run(region, opts)

	require.True(t, status.Succeeded(), "status: %v", status)
	assert.NotEmpty(t, path.Items)
	assert.Greater(t, path.Length(), 0.0)
}

func TestRun_InvalidEmitCombinationFailsFast(t *testing.T) {
	region := square(40)
	opts := DefaultOptions(4)
	opts.EmitOptions = model.EmitChord | model.EmitSmoothChord

	var gen Generator
	_, status := gen.Run(region, opts)

	assert.True(t, status.Failed())
	assert.True(t, status.Detail(model.DetailConfigFault))
}

func TestRun_StartPointOutsideRegionIsInfeasible(t *testing.T) {
	region := square(40)
	opts := DefaultOptions(4)
	outside := geom2d.Vec2{X: 100, Y: 100}
	opts.StartPoint = &outside

	var gen Generator
	_, status := gen.Run(region, opts)

	assert.True(t, status.Failed())
	assert.True(t, status.Detail(model.DetailInfeasible))
}

func TestRun_PocketTooSmallForCutterIsInfeasible(t *testing.T) {
	region := square(1)
	opts := DefaultOptions(10)

	var gen Generator
	_, status := gen.Run(region, opts)

	assert.True(t, status.Failed())
}
