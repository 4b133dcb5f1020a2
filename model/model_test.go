package model

import (
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate_ChordConflict(t *testing.T) {
	o := DefaultOptions(10)
	o.EmitOptions = EmitChord | EmitSmoothChord
	st := o.Validate()
	assert.True(t, st.Failed())
	assert.True(t, st.Detail(DetailConfigFault))
}

func TestOptionsValidate_SmoothChordNeedsDirection(t *testing.T) {
	o := DefaultOptions(10)
	o.EmitOptions = EmitSmoothChord
	o.MillDirection = geom2d.Unknown
	st := o.Validate()
	assert.True(t, st.Failed())
	assert.True(t, st.Detail(DetailConfigFault))
}

func TestOptionsValidate_OK(t *testing.T) {
	o := DefaultOptions(10)
	o.MillDirection = geom2d.CW
	st := o.Validate()
	assert.True(t, st.Succeeded())
}

func TestLCA(t *testing.T) {
	root := &Slice{}
	mid := &Slice{Parent: root}
	leafA := &Slice{Parent: mid}
	leafB := &Slice{Parent: mid}

	got := LCA(leafA, leafB)
	assert.Same(t, mid, got)

	path := PathToAncestor(leafA, mid)
	assert.Empty(t, path)
}

func TestCurve_ParametricPt(t *testing.T) {
	c := NewCurve([]geom2d.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}})
	mid := c.ParametricPt(0.5)
	require.InDelta(t, 5, mid.X, 1e-9)
	require.InDelta(t, 0, mid.Y, 1e-9)
}

func TestBranch_DeepDistance(t *testing.T) {
	root := &Branch{Curve: NewCurve([]geom2d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}})}
	child := &Branch{Curve: NewCurve([]geom2d.Vec2{{X: 1, Y: 0}, {X: 1, Y: 4}}), Parent: root}
	root.Children = append(root.Children, child)
	assert.InDelta(t, 5, root.DeepDistance(), 1e-9)
}
