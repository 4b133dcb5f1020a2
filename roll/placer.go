package roll

import (
	"math"

	"github.com/arl/pocketgen/buildctx"
	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// Index is the subset of spatial.Tree's API the slice placer needs; kept as
// an interface so tests can substitute a stub.
type Index interface {
	Insert(bounds geom2d.Rect, obj interface{})
	Query(bounds geom2d.Rect) []interface{}
}

// Run places slices along the branches of the tree rooted at root, in
// depth-first, children-shortest-first order (the same order the tree
// builder already sorted children into), sharing one running "last
// finished slice anywhere" and one spatial index across the whole pocket.
// On the root branch only the full-circle root slice at the curve's start
// is placed; the rest of the root branch's curve is not rolled.
func Run(root *model.Branch, region model.Region, opts model.Options, idx Index, ctx *buildctx.Context) model.Status {
	if len(root.Curve.Points) < 2 {
		return model.NewStatus(model.StatusFailure, model.DetailInternal)
	}

	rootSlice := makeRootSlice(root, region, opts)
	if rootSlice == nil {
		return model.NewStatus(model.StatusFailure, model.DetailInfeasible)
	}
	root.Slices = append(root.Slices, rootSlice)
	registerSlice(idx, rootSlice)

	state := &runState{region: region, opts: opts, idx: idx, ctx: ctx, lastSlice: rootSlice}
	status := model.StatusOK

	var walk func(b *model.Branch, isRoot bool)
	walk = func(b *model.Branch, isRoot bool) {
		if !isRoot {
			ok := state.placeBranch(b)
			if !ok {
				status = model.NewStatus(model.StatusPartial, model.DetailBranchAbandoned)
				return
			}
		}
		for _, c := range b.Children {
			walk(c, false)
		}
	}
	walk(root, true)

	return status
}

type runState struct {
	region    model.Region
	opts      model.Options
	idx       Index
	ctx       *buildctx.Context
	lastSlice *model.Slice
}

func registerSlice(idx Index, s *model.Slice) {
	idx.Insert(geom2d.RectFromCircle(s.Ball.Center, s.Ball.Radius), s)
}

// makeRootSlice creates the full-circle slice at the root branch's start
// point, per spec §4.5 "Root branch".
func makeRootSlice(root *model.Branch, region model.Region, opts model.Options) *model.Slice {
	p := root.Curve.Start()
	r := region.MICRadius(p, opts.CutterRadius(), opts.Margin)
	if r < opts.MinPassableMIC() {
		return nil
	}
	dir := opts.MillDirection
	arc := geom2d.Arc{Center: p, Radius: r, Start: 0, Sweep: fullSweep(dir)}
	return &model.Slice{
		Ball:     model.Ball{Center: p, Radius: r},
		Segments: []geom2d.Piece{geom2d.ArcPiece(arc)},
		Start:    arc.PointAt(0),
		End:      arc.PointAt(1),
		Dir:      dir,
	}
}

func fullSweep(dir geom2d.Direction) float64 {
	if dir == geom2d.CCW {
		return 2 * math.Pi
	}
	return -2 * math.Pi
}

// nearestUpstreamSlice finds, among every slice placed on b's ancestor
// chain (root included), the one whose ball center is nearest to p.
func nearestUpstreamSlice(b *model.Branch, p geom2d.Vec2) *model.Slice {
	var best *model.Slice
	bestD := 0.0
	for anc := b.Parent; anc != nil; anc = anc.Parent {
		for _, s := range anc.Slices {
			d := s.Ball.Center.Dist2(p)
			if best == nil || d < bestD {
				best, bestD = s, d
			}
		}
	}
	return best
}

// placeBranch runs the roll main loop over a single non-root branch,
// returning false if the branch must be abandoned outright (no ancestor
// slice to attach to).
func (st *runState) placeBranch(b *model.Branch) bool {
	parent := nearestUpstreamSlice(b, b.Curve.Start())
	if parent == nil {
		if st.ctx != nil {
			st.ctx.Warnf("branch abandoned: no ancestor slice to attach to")
		}
		return false
	}

	left := 0.0
	curParent := parent
	first := true

	for left < 1 {
		candidate, newLeft, ok := st.searchSlice(b, left, curParent)
		if !ok {
			break // no candidate: branch terminates
		}

		if overshoot(candidate.MaxEngagement, st.opts.MaxEngagement, st.opts.EngagementTol) {
			if st.ctx != nil {
				st.ctx.Errf("engagement overshoot: branch terminated")
			}
			break
		}
		if candidate.MaxEngagement < st.opts.MinEngagement {
			break // undershoot: silent termination
		}

		candidate.Parent = curParent
		if first && st.opts.EmitOptions.Has(model.EmitBranchEntry) {
			b.EntryConnector = st.computeEntryConnector(st.lastSlice, candidate)
		}
		first = false

		b.Slices = append(b.Slices, candidate)
		registerSlice(st.idx, candidate)
		curParent = candidate
		st.lastSlice = candidate
		left = newLeft
	}
	return true
}

// overshoot reports whether eng exceeds max by more than 10*epsEng
// (relaxed overshoot threshold, spec §4.5 post-search checks).
func overshoot(eng, max, epsEng float64) bool {
	if max <= 0 {
		return eng > 0
	}
	return (eng-max)/max > 10*epsEng
}
