package roll

import (
	"testing"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareBoundary is a minimal model.Polyliner over an axis-aligned square,
// just enough to drive Region.MICRadius / InsideOuterNotInIslands in tests
// without depending on the concrete polyline package.
type squareBoundary struct {
	min, max geom2d.Vec2
}

func (s squareBoundary) corners() [4]geom2d.Vec2 {
	return [4]geom2d.Vec2{
		{X: s.min.X, Y: s.min.Y},
		{X: s.max.X, Y: s.min.Y},
		{X: s.max.X, Y: s.max.Y},
		{X: s.min.X, Y: s.max.Y},
	}
}

func (s squareBoundary) GetPerimeter() float64 {
	return 2 * ((s.max.X - s.min.X) + (s.max.Y - s.min.Y))
}

func (s squareBoundary) NumSegments() int { return 4 }

func (s squareBoundary) GetSegment(i int) model.Segment {
	c := s.corners()
	return model.Segment{P1: c[i], P2: c[(i+1)%4]}
}

func (s squareBoundary) PointInPolyline(p geom2d.Vec2, tol float64) bool {
	return p.X >= s.min.X-tol && p.X <= s.max.X+tol &&
		p.Y >= s.min.Y-tol && p.Y <= s.max.Y+tol
}

func (s squareBoundary) LineIntersections(p1, p2 geom2d.Vec2, tol float64) []geom2d.Vec2 {
	return nil
}

func (s squareBoundary) ArcFit(tol float64) geom2d.Polyline {
	var pl geom2d.Polyline
	c := s.corners()
	for i := 0; i < 4; i++ {
		pl.Append(geom2d.Line(c[i], c[(i+1)%4]))
	}
	return pl
}

func (s squareBoundary) ParametricPoint(u float64) geom2d.Vec2 {
	return s.corners()[0]
}

// stubIndex is a linear-scan stand-in for spatial.Tree, sufficient for
// small test fixtures.
type stubIndex struct {
	items []struct {
		bounds geom2d.Rect
		obj    interface{}
	}
}

func (idx *stubIndex) Insert(bounds geom2d.Rect, obj interface{}) {
	idx.items = append(idx.items, struct {
		bounds geom2d.Rect
		obj    interface{}
	}{bounds, obj})
}

func (idx *stubIndex) Query(bounds geom2d.Rect) []interface{} {
	var out []interface{}
	for _, it := range idx.items {
		if it.bounds.Overlaps(bounds) {
			out = append(out, it.obj)
		}
	}
	return out
}

func unitSquareRegion() model.Region {
	return model.Region{Outer: squareBoundary{min: geom2d.Vec2{X: -50, Y: -50}, max: geom2d.Vec2{X: 50, Y: 50}}}
}

func TestRun_UnitSquarePlacesRootSliceAndOneBranch(t *testing.T) {
	region := unitSquareRegion()
	opts := model.DefaultOptions(10)
	opts.GeneralTol = 0.1

	root := &model.Branch{Curve: model.NewCurve([]geom2d.Vec2{{X: 0, Y: 0}, {X: 20, Y: 0}})}

	idx := &stubIndex{}
	status := Run(root, region, opts, idx, nil)

	assert.True(t, status.Succeeded())
	require.Len(t, root.Slices, 1)
	assert.Greater(t, root.Slices[0].Ball.Radius, 0.0)
}

func TestRun_EmptyRootCurveIsInternalError(t *testing.T) {
	region := unitSquareRegion()
	opts := model.DefaultOptions(10)
	root := &model.Branch{}

	idx := &stubIndex{}
	status := Run(root, region, opts, idx, nil)

	assert.True(t, status.Failed())
	assert.True(t, status.Detail(model.DetailInternal))
}

func TestRun_BranchWithNoAncestorSliceIsAbandoned(t *testing.T) {
	region := unitSquareRegion()
	opts := model.DefaultOptions(10)
	opts.GeneralTol = 0.1

	root := &model.Branch{Curve: model.NewCurve([]geom2d.Vec2{{X: 0, Y: 0}, {X: 20, Y: 0}})}
	orphan := &model.Branch{Curve: model.NewCurve([]geom2d.Vec2{{X: 0, Y: 30}, {X: 0, Y: 40}})}
	// orphan has no Parent pointer set, so nearestUpstreamSlice finds nothing.

	root.Children = append(root.Children, orphan)

	idx := &stubIndex{}
	status := Run(root, region, opts, idx, nil)

	assert.True(t, status.Partial())
	assert.True(t, status.Detail(model.DetailBranchAbandoned))
}

func TestOuterArc_NoIntersectionSweepsFullCircle(t *testing.T) {
	parent := model.Ball{Center: geom2d.Vec2{X: 0, Y: 0}, Radius: 2}
	candidate := model.Ball{Center: geom2d.Vec2{X: 100, Y: 0}, Radius: 2}
	arc := outerArc(parent, candidate, geom2d.CCW)
	assert.InDelta(t, 2*3.141592653589793, arc.Sweep, 1e-9)
}

func TestOuterArc_PartialOverlapStaysOutsideParent(t *testing.T) {
	parent := model.Ball{Center: geom2d.Vec2{X: 0, Y: 0}, Radius: 5}
	candidate := model.Ball{Center: geom2d.Vec2{X: 6, Y: 0}, Radius: 5}
	arc := outerArc(parent, candidate, geom2d.CW)

	mid := arc.PointAt(0.5)
	assert.GreaterOrEqual(t, mid.Dist(parent.Center), parent.Radius-1e-9)
}
