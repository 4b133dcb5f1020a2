// Package pocket is the generator's public entry point: it wires the
// sampler (mat), tree builder (medial), slice placer (roll) and path
// stitcher (stitch) into the single Run call a caller needs, the same
// outer-facade role the teacher's recast/detour packages leave to
// sample.SoloMesh.
package pocket

import (
	"github.com/arl/pocketgen/buildctx"
	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/mat"
	"github.com/arl/pocketgen/medial"
	"github.com/arl/pocketgen/model"
	"github.com/arl/pocketgen/roll"
	"github.com/arl/pocketgen/spatial"
	"github.com/arl/pocketgen/spiral"
	"github.com/arl/pocketgen/stitch"
	"github.com/arl/pocketgen/voronoi"
)

// Re-exported so callers depend only on this package for the common types.
type (
	Options   = model.Options
	Status    = model.Status
	Path      = model.Path
	Region    = model.Region
	Polyliner = model.Polyliner
)

// DefaultOptions returns spec-documented defaults for a cutter of the
// given diameter.
func DefaultOptions(cutterDiameter float64) Options { return model.DefaultOptions(cutterDiameter) }

// Generator runs a single pocket clearing job. The zero value is usable:
// missing collaborators (Voronoi, Spiral, Log) are filled with the default
// implementations the first time Run is called.
type Generator struct {
	Voronoi model.VoronoiEdger
	Spiral  model.SpiralGenerator
	Log     model.Logger

	RejectCrossingEdges bool
}

// Run clears region with the cutter and options described by opts,
// returning the ordered toolpath and a Status describing how the run
// went (success, partial with abandoned branches, or outright failure).
func (g *Generator) Run(region model.Region, opts model.Options) (model.Path, model.Status) {
	if status := opts.Validate(); status.Failed() {
		return model.Path{}, status
	}

	g.fillDefaults(&opts)

	ctx := buildctx.New(opts.Log)
	ctx.EnableLog(true)
	ctx.EnableTimer(true)

	ctx.StartTimer(buildctx.TimerSample)
	sampler := mat.Sampler{Voronoi: opts.Voronoi, RejectCrossingEdges: g.RejectCrossingEdges || opts.RejectCrossingEdges}
	segments := sampler.Sample(region, opts.CutterRadius(), opts.GeneralTol)
	ctx.StopTimer(buildctx.TimerSample)
	if len(segments) == 0 {
		ctx.Errf("no medial-axis segments sampled: pocket too small or too narrow for the cutter")
		return model.Path{}, model.NewStatus(model.StatusFailure, model.DetailInfeasible)
	}

	ctx.StartTimer(buildctx.TimerTreeBuild)
	root, status := medial.Builder{Region: region, Opts: opts}.Build(segments)
	ctx.StopTimer(buildctx.TimerTreeBuild)
	if status.Failed() {
		ctx.Errf("no admissible tree root: %v", status)
		return model.Path{}, status
	}

	idx := spatial.New(regionBounds(region))

	ctx.StartTimer(buildctx.TimerRoll)
	rollStatus := roll.Run(root, region, opts, idx, ctx)
	ctx.StopTimer(buildctx.TimerRoll)
	if rollStatus.Failed() {
		return model.Path{}, rollStatus
	}

	ctx.StartTimer(buildctx.TimerStitch)
	path := stitch.Run(root, opts)
	ctx.StopTimer(buildctx.TimerStitch)

	ctx.Logf("pocket cleared: %d path items, %.3f total length", len(path.Items), path.Length())
	return path, rollStatus
}

func (g *Generator) fillDefaults(opts *model.Options) {
	if opts.Voronoi == nil {
		if g.Voronoi == nil {
			g.Voronoi = voronoi.Generator{}
		}
		opts.Voronoi = g.Voronoi
	}
	if opts.Spiral == nil {
		if g.Spiral == nil {
			g.Spiral = spiral.Generator{Tol: opts.GeneralTol}
		}
		opts.Spiral = g.Spiral
	}
	if opts.Log == nil {
		if g.Log == nil {
			g.Log = model.NopLogger{}
		}
		opts.Log = g.Log
	}
}

// regionBounds returns the axis-aligned bounding box of every boundary in
// region, inset outward by a generous margin so the slice placer's index
// never has to grow the tree mid-run.
func regionBounds(region model.Region) geom2d.Rect {
	b := boundaryBounds(region.Outer)
	for _, isl := range region.Islands {
		b = b.Union(boundaryBounds(isl))
	}
	return b.Inset(-b.Max.Sub(b.Min).Len() * 0.1)
}

func boundaryBounds(pl model.Polyliner) geom2d.Rect {
	n := pl.NumSegments()
	if n == 0 {
		return geom2d.Rect{}
	}
	first := pl.GetSegment(0)
	b := geom2d.RectFromPoints(first.P1, first.P1)
	for i := 0; i < n; i++ {
		seg := pl.GetSegment(i)
		b = b.ExpandToContain(seg.P1)
		b = b.ExpandToContain(seg.P2)
		if seg.Arc != nil {
			b = b.Union(arcBounds(*seg.Arc))
		}
	}
	return b
}

func arcBounds(a model.Arcer) geom2d.Rect {
	arc := geom2d.Arc{Center: a.Center(), Radius: a.Radius(), Start: a.Start(), Sweep: a.Sweep()}
	return arc.Bounds()
}
