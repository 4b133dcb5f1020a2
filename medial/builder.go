// Package medial builds the tree builder (component D): it turns the
// filtered MAT segments produced by package mat into a rooted tree of
// model.Branch, choosing a root either automatically (maximum-MIC passable
// endpoint) or from a user-supplied start point, then grows each branch
// greedily until the medial graph is exhausted.
package medial

import (
	"sort"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// Builder constructs the medial tree for a single region/options pair.
type Builder struct {
	Region model.Region
	Opts   model.Options
}

// Build turns segments into a rooted model.Branch tree, or a Status with
// DetailInfeasible if no admissible root exists.
func (b Builder) Build(segments []model.MATSegment) (*model.Branch, model.Status) {
	tol := b.Opts.GeneralTol
	minPassable := b.Opts.MinPassableMIC()
	cutterR, margin := b.Opts.CutterRadius(), b.Opts.Margin

	pl := newPool(tol)
	for _, seg := range segments {
		mic1 := b.Region.MICRadius(seg.P1, cutterR, margin)
		mic2 := b.Region.MICRadius(seg.P2, cutterR, margin)
		pl.addSegment(seg.P1, seg.P2, mic1, mic2, mic1 >= minPassable, mic2 >= minPassable)
	}

	root, status := b.chooseRoot(pl, minPassable, cutterR, margin)
	if root == nil {
		return nil, status
	}
	b.attach(root, pl)
	return root, model.StatusOK
}

func (b Builder) chooseRoot(pl *pool, minPassable, cutterR, margin float64) (*model.Branch, model.Status) {
	if b.Opts.StartPoint == nil {
		p, ok := pl.maxMICPoint()
		if !ok {
			return nil, model.NewStatus(model.StatusFailure, model.DetailInfeasible)
		}
		return &model.Branch{Curve: model.NewCurve([]geom2d.Vec2{p, p})}, model.StatusOK
	}

	start := *b.Opts.StartPoint
	mic := b.Region.MICRadius(start, cutterR, margin)
	if !b.Region.InsideOuterNotInIslands(start, b.Opts.GeneralTol) || mic < minPassable {
		return nil, model.NewStatus(model.StatusFailure, model.DetailInfeasible)
	}

	target, ok := pl.nearest(start, func(p geom2d.Vec2) bool {
		return !crosses(b.Region, start, p, b.Opts.GeneralTol)
	})
	if !ok {
		return nil, model.NewStatus(model.StatusFailure, model.DetailInfeasible)
	}
	return &model.Branch{Curve: model.NewCurve([]geom2d.Vec2{start, target})}, model.StatusOK
}

func crosses(region model.Region, a, b geom2d.Vec2, tol float64) bool {
	if len(region.Outer.LineIntersections(a, b, tol)) > 0 {
		return true
	}
	for _, isl := range region.Islands {
		if len(isl.LineIntersections(a, b, tol)) > 0 {
			return true
		}
	}
	return false
}

// attach grows br linearly while it has exactly one follower at its
// current end, forking a child branch per follower otherwise, per
// Attach_segments.
func (b Builder) attach(br *model.Branch, pl *pool) {
	cur := br.Curve.End()
	for {
		followers := pl.pull(cur)
		switch len(followers) {
		case 0:
			return
		case 1:
			br.Curve.Append(followers[0])
			cur = followers[0]
		default:
			for _, f := range followers {
				child := &model.Branch{
					Curve:  model.NewCurve([]geom2d.Vec2{cur, f}),
					Parent: br,
				}
				b.attach(child, pl)
				br.Children = append(br.Children, child)
			}
			pruneAndSortChildren(br, b.Opts.GeneralTol)
			return
		}
	}
}

func pruneAndSortChildren(br *model.Branch, tol float64) {
	kept := br.Children[:0]
	for _, c := range br.Children {
		if c.DeepDistance() > tol {
			kept = append(kept, c)
		}
	}
	br.Children = kept
	sort.SliceStable(br.Children, func(i, j int) bool {
		di, dj := br.Children[i].DeepDistance(), br.Children[j].DeepDistance()
		if di != dj {
			return di < dj
		}
		// deterministic tie-break for equal-length children (e.g. two
		// branches passing symmetrically either side of an island):
		// order by the first diverging curve point's coordinates.
		pi, pj := br.Children[i].Curve.Points[1], br.Children[j].Curve.Points[1]
		if pi.X != pj.X {
			return pi.X < pj.X
		}
		return pi.Y < pj.Y
	})
}
