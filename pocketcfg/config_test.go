package pocketcfg

import (
	"path/filepath"
	"testing"

	"github.com/arl/pocketgen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	c := DefaultConfig(6.35)
	x, y := 1.0, 2.0
	c.StartPointX, c.StartPointY = &x, &y

	path := filepath.Join(t.TempDir(), "pocket.yml")
	require.NoError(t, c.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.CutterDiameter, got.CutterDiameter)
	assert.Equal(t, c.MillDirection, got.MillDirection)
	require.NotNil(t, got.StartPointX)
	assert.Equal(t, 1.0, *got.StartPointX)
}

func TestToOptions(t *testing.T) {
	c := DefaultConfig(10)
	opts := c.ToOptions()
	assert.Equal(t, 10.0, opts.CutterDiameter)
	assert.True(t, opts.EmitOptions.Has(model.EmitSegment))
	assert.True(t, opts.EmitOptions.Has(model.EmitSpiral))
	assert.False(t, opts.EmitOptions.Has(model.EmitDebugMAT))
}
