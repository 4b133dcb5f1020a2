package connect

import (
	"math/rand"
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMayShortcut_SingleContainingBall(t *testing.T) {
	balls := []model.Ball{{Center: geom2d.Vec2{X: 0, Y: 0}, Radius: 10}}
	ok := MayShortcut(geom2d.Vec2{X: -2, Y: 0}, geom2d.Vec2{X: 2, Y: 0}, balls, 1e-6)
	assert.True(t, ok)
}

func TestMayShortcut_GapRejected(t *testing.T) {
	balls := []model.Ball{
		{Center: geom2d.Vec2{X: 0, Y: 0}, Radius: 2},
		{Center: geom2d.Vec2{X: 20, Y: 0}, Radius: 2},
	}
	ok := MayShortcut(geom2d.Vec2{X: 0, Y: 0}, geom2d.Vec2{X: 20, Y: 0}, balls, 1e-6)
	assert.False(t, ok)
}

func TestMayShortcut_ChainOfOverlappingBalls(t *testing.T) {
	balls := []model.Ball{
		{Center: geom2d.Vec2{X: 0, Y: 0}, Radius: 3},
		{Center: geom2d.Vec2{X: 4, Y: 0}, Radius: 3},
		{Center: geom2d.Vec2{X: 8, Y: 0}, Radius: 3},
	}
	ok := MayShortcut(geom2d.Vec2{X: 0, Y: 0}, geom2d.Vec2{X: 8, Y: 0}, balls, 1e-6)
	assert.True(t, ok)
}

func TestMayShortcut_StableUnderPermutation(t *testing.T) {
	balls := []model.Ball{
		{Center: geom2d.Vec2{X: 0, Y: 0}, Radius: 3},
		{Center: geom2d.Vec2{X: 4, Y: 0}, Radius: 3},
		{Center: geom2d.Vec2{X: 8, Y: 0}, Radius: 3},
		{Center: geom2d.Vec2{X: 30, Y: 30}, Radius: 1}, // unrelated, far away
	}
	a, b := geom2d.Vec2{X: 0, Y: 0}, geom2d.Vec2{X: 8, Y: 0}
	want := MayShortcut(a, b, balls, 1e-6)

	for i := 0; i < 5; i++ {
		shuffled := append([]model.Ball(nil), balls...)
		rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := MayShortcut(a, b, shuffled, 1e-6)
		assert.Equal(t, want, got)
	}
}

// buildFourSliceTree builds: root -> mid -> {leafA, leafB}; the two leaves
// share mid as their parent, so mid is their least common ancestor.
func buildFourSliceTree() (root, mid, leafA, leafB *model.Slice) {
	root = &model.Slice{Ball: model.Ball{Center: geom2d.Vec2{X: 0, Y: 0}, Radius: 5}, Dir: geom2d.CW,
		Start: geom2d.Vec2{X: 5, Y: 0}, End: geom2d.Vec2{X: -5, Y: 0}}
	mid = &model.Slice{Ball: model.Ball{Center: geom2d.Vec2{X: 8, Y: 0}, Radius: 5}, Parent: root, Dir: geom2d.CW,
		Start: geom2d.Vec2{X: 3, Y: 0}, End: geom2d.Vec2{X: 13, Y: 0}}
	leafA = &model.Slice{Ball: model.Ball{Center: geom2d.Vec2{X: 16, Y: 6}, Radius: 5}, Parent: mid, Dir: geom2d.CW,
		Start: geom2d.Vec2{X: 11, Y: 6}, End: geom2d.Vec2{X: 21, Y: 6}}
	leafB = &model.Slice{Ball: model.Ball{Center: geom2d.Vec2{X: 16, Y: -6}, Radius: 5}, Parent: mid, Dir: geom2d.CW,
		Start: geom2d.Vec2{X: 11, Y: -6}, End: geom2d.Vec2{X: 21, Y: -6}}
	return
}

func TestSwitchBranch_RoutesThroughCommonParentWhenNoShortcut(t *testing.T) {
	_, mid, leafA, leafB := buildFourSliceTree()

	pl := SwitchBranch(leafB, leafA, nil, nil, 1e-6, func(a, b geom2d.Vec2) []model.Ball {
		return nil // no colliders: never shortcuts
	})

	require.NotEmpty(t, pl.Pieces)
	// the route must pass through mid's ball center.
	passesThroughMid := false
	for _, p := range pl.Pieces {
		if p.End().Approx(mid.Ball.Center, 1e-9) || p.Start().Approx(mid.Ball.Center, 1e-9) {
			passesThroughMid = true
		}
	}
	assert.True(t, passesThroughMid)
}

func TestSwitchBranch_ShortcutsWhenAdmissible(t *testing.T) {
	_, _, leafA, leafB := buildFourSliceTree()

	allBalls := []model.Ball{leafA.Ball, leafB.Ball, {Center: geom2d.Vec2{X: 8, Y: 0}, Radius: 9}}
	pl := SwitchBranch(leafB, leafA, nil, nil, 1e-6, func(a, b geom2d.Vec2) []model.Ball {
		return allBalls
	})

	require.Len(t, pl.Pieces, 1)
	assert.Equal(t, geom2d.PieceLine, pl.Pieces[0].Kind)
}

func TestSwitchBranch_DirectParentUsesSmoothChord(t *testing.T) {
	root, mid, _, _ := buildFourSliceTree()
	pl := SwitchBranch(mid, root, nil, nil, 1e-6, nil)
	require.NotEmpty(t, pl.Pieces)
}
