package spatial

import (
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_InsertQuery(t *testing.T) {
	tr := New(geom2d.Rect{Min: geom2d.Vec2{X: 0, Y: 0}, Max: geom2d.Vec2{X: 100, Y: 100}})

	for i := 0; i < 50; i++ {
		x := float64(i)
		tr.Insert(geom2d.Rect{Min: geom2d.Vec2{X: x, Y: x}, Max: geom2d.Vec2{X: x + 1, Y: x + 1}}, i)
	}

	got := tr.Query(geom2d.Rect{Min: geom2d.Vec2{X: 10, Y: 10}, Max: geom2d.Vec2{X: 11, Y: 11}})
	require.NotEmpty(t, got)
	found := false
	for _, v := range got {
		if v.(int) == 10 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTree_QueryEmptyRegion(t *testing.T) {
	tr := New(geom2d.Rect{Min: geom2d.Vec2{X: 0, Y: 0}, Max: geom2d.Vec2{X: 10, Y: 10}})
	tr.Insert(geom2d.Rect{Min: geom2d.Vec2{X: 0, Y: 0}, Max: geom2d.Vec2{X: 1, Y: 1}}, "a")
	got := tr.Query(geom2d.Rect{Min: geom2d.Vec2{X: 5, Y: 5}, Max: geom2d.Vec2{X: 6, Y: 6}})
	assert.Empty(t, got)
}
