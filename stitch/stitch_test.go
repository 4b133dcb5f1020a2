package stitch

import (
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleSliceRoot() *model.Branch {
	arc := geom2d.Arc{Center: geom2d.Vec2{X: 0, Y: 0}, Radius: 5, Start: 0, Sweep: 6.283185}
	s := &model.Slice{
		Ball:     model.Ball{Center: geom2d.Vec2{X: 0, Y: 0}, Radius: 5},
		Segments: []geom2d.Piece{geom2d.ArcPiece(arc)},
		Start:    arc.PointAt(0),
		End:      arc.PointAt(1),
		Dir:      geom2d.CCW,
	}
	root := &model.Branch{Curve: model.NewCurve([]geom2d.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}})}
	root.Slices = append(root.Slices, s)
	return root
}

func TestRun_EmitsSegmentForSingleSlice(t *testing.T) {
	root := singleSliceRoot()
	opts := model.DefaultOptions(2)
	opts.EmitOptions = model.EmitSegment

	path := Run(root, opts)
	require.Len(t, path.Items, 1)
	assert.Equal(t, model.ItemSegment, path.Items[0].Kind)
}

func TestRun_DebugMATTogglesWithoutChangingRest(t *testing.T) {
	root := singleSliceRoot()
	opts := model.DefaultOptions(2)
	opts.EmitOptions = model.EmitSegment

	withoutDebug := Run(root, opts)

	opts.EmitOptions |= model.EmitDebugMAT
	withDebug := Run(root, opts)

	assert.Equal(t, withoutDebug.Items, withDebug.WithoutDebug().Items)
	assert.Greater(t, len(withDebug.Items), len(withoutDebug.Items))
}

func TestRun_ChordAndSegmentOrdering(t *testing.T) {
	root := singleSliceRoot()
	second := &model.Slice{
		Ball:     model.Ball{Center: geom2d.Vec2{X: 12, Y: 0}, Radius: 5},
		Segments: []geom2d.Piece{geom2d.ArcPiece(geom2d.Arc{Center: geom2d.Vec2{X: 12, Y: 0}, Radius: 5, Sweep: 3})},
		Start:    geom2d.Vec2{X: 7, Y: 0},
		End:      geom2d.Vec2{X: 17, Y: 0},
	}
	root.Slices = append(root.Slices, second)

	opts := model.DefaultOptions(2)
	opts.EmitOptions = model.EmitSegment | model.EmitChord

	path := Run(root, opts)
	require.Len(t, path.Items, 3) // segment, chord, segment
	assert.Equal(t, model.ItemSegment, path.Items[0].Kind)
	assert.Equal(t, model.ItemChord, path.Items[1].Kind)
	assert.Equal(t, model.ItemSegment, path.Items[2].Kind)
}
