package polyline

import (
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/stretchr/testify/assert"
)

func square() *Polyline {
	return FromPoints([]geom2d.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	})
}

func TestPointInPolyline(t *testing.T) {
	s := square()
	assert.True(t, s.PointInPolyline(geom2d.Vec2{X: 5, Y: 5}, 1e-6))
	assert.False(t, s.PointInPolyline(geom2d.Vec2{X: 15, Y: 5}, 1e-6))
	assert.True(t, s.PointInPolyline(geom2d.Vec2{X: 0, Y: 5}, 1e-6)) // on boundary
}

func TestGetPerimeter(t *testing.T) {
	s := square()
	assert.InDelta(t, 40, s.GetPerimeter(), 1e-9)
}

func TestParametricPoint(t *testing.T) {
	s := square()
	p := s.ParametricPoint(0)
	assert.Equal(t, geom2d.Vec2{X: 0, Y: 0}, p)
	mid := s.ParametricPoint(0.25)
	assert.InDelta(t, 10, mid.X, 1e-9)
}

func TestLineIntersections(t *testing.T) {
	s := square()
	pts := s.LineIntersections(geom2d.Vec2{X: -5, Y: 5}, geom2d.Vec2{X: 15, Y: 5}, 1e-6)
	assert.Len(t, pts, 2)
}
