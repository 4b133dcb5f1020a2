package geom2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBiarc_EqualTangentsDegenerates(t *testing.T) {
	p1 := Vec2{0, 0}
	p2 := Vec2{10, 0}
	t1 := Vec2{1, 0}
	t2 := Vec2{1, 0}

	b := ComputeBiarc(p1, t1, p2, t2, 1e-6)
	require.True(t, b.Degenerate)
	assert.Equal(t, PieceLine, b.Arc1.Kind)
	assert.Equal(t, p1, b.Arc1.P1)
	assert.Equal(t, p2, b.Arc1.P2)
}

func TestComputeBiarc_EndpointsAndTangents(t *testing.T) {
	p1 := Vec2{0, 0}
	p2 := Vec2{10, 5}
	t1 := Vec2{1, 0}
	t2 := Vec2{0, 1}

	b := ComputeBiarc(p1, t1, p2, t2, 1e-6)
	require.False(t, b.Degenerate)

	assert.InDelta(t, p1.X, b.Arc1.Start().X, 1e-9)
	assert.InDelta(t, p1.Y, b.Arc1.Start().Y, 1e-9)
	assert.InDelta(t, p2.X, b.Arc2.End().X, 1e-9)
	assert.InDelta(t, p2.Y, b.Arc2.End().Y, 1e-9)

	// the two arcs must meet at a shared junction point.
	assert.InDelta(t, b.Arc1.End().X, b.Arc2.Start().X, 1e-6)
	assert.InDelta(t, b.Arc1.End().Y, b.Arc2.Start().Y, 1e-6)

	if b.Arc1.Kind == PieceArc {
		tang := b.Arc1.Arc.TangentAt(0)
		angDiff := math.Abs(normalizeAngleDiff(tang.Angle() - t1.Angle()))
		assert.LessOrEqual(t, angDiff, 1e-6)
	}
	if b.Arc2.Kind == PieceArc {
		tang := b.Arc2.Arc.TangentAt(1)
		angDiff := math.Abs(normalizeAngleDiff(tang.Angle() - t2.Angle()))
		assert.LessOrEqual(t, angDiff, 1e-6)
	}
}

func TestCircleIntersect(t *testing.T) {
	pts := CircleIntersect(Vec2{0, 0}, 5, Vec2{6, 0}, 5)
	require.Len(t, pts, 2)
	for _, p := range pts {
		assert.InDelta(t, 5, p.Dist(Vec2{0, 0}), 1e-9)
		assert.InDelta(t, 5, p.Dist(Vec2{6, 0}), 1e-9)
	}
}

func TestCircleIntersect_Disjoint(t *testing.T) {
	pts := CircleIntersect(Vec2{0, 0}, 1, Vec2{10, 0}, 1)
	assert.Nil(t, pts)
}
