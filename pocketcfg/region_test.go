package pocketcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegion_OuterAndIsland(t *testing.T) {
	yaml := `
outer:
  - [0, 0]
  - [20, 0]
  - [20, 20]
  - [0, 20]
islands:
  - - [8, 8]
    - [12, 8]
    - [12, 12]
    - [8, 12]
`
	path := filepath.Join(t.TempDir(), "region.yml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	region, err := LoadRegion(path)
	require.NoError(t, err)
	assert.Equal(t, 4, region.Outer.NumSegments())
	require.Len(t, region.Islands, 1)
	assert.Equal(t, 4, region.Islands[0].NumSegments())
}

func TestLoadRegion_TooFewOuterPointsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.yml")
	require.NoError(t, os.WriteFile(path, []byte("outer:\n  - [0,0]\n  - [1,1]\n"), 0o644))

	_, err := LoadRegion(path)
	assert.Error(t, err)
}
