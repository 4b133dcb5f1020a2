// Package mat builds the Medial Axis Transform sampler (component C):
// boundary sampling, the Voronoi stabilisation phantom point, and the
// filtering pass that keeps only MAT segments lying strictly inside the
// region.
package mat

import (
	"math"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// Sampler builds MAT segments from a region's boundary, delegating the
// actual Voronoi-diagram construction to an injected model.VoronoiEdger.
type Sampler struct {
	Voronoi model.VoronoiEdger

	// RejectCrossingEdges additionally drops MAT segments whose interior
	// crosses a region boundary, gated off by default per spec §4.3 step 3.
	RejectCrossingEdges bool
}

// Sample walks the region's outer and island boundaries at spacing
// cutterRadius/10, runs the injected Voronoi generator over the resulting
// point cloud (plus a stabilisation phantom point), and returns the
// filtered set of MAT segments.
func (s Sampler) Sample(region model.Region, cutterRadius, generalTol float64) []model.MATSegment {
	spacing := cutterRadius / 10
	if spacing <= 0 {
		spacing = generalTol
	}

	pts := samplePolyline(region.Outer, spacing)
	for _, isl := range region.Islands {
		pts = append(pts, samplePolyline(isl, spacing)...)
	}
	if len(pts) < 3 {
		return nil
	}

	bounds := geom2d.RectFromPoints(pts[0], pts[0])
	for _, p := range pts {
		bounds = bounds.ExpandToContain(p)
	}

	phantom := phantomPoint(pts, bounds)
	bounds = bounds.ExpandToContain(phantom)

	xs := make([]float64, len(pts)+1)
	ys := make([]float64, len(pts)+1)
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	xs[len(pts)], ys[len(pts)] = phantom.X, phantom.Y

	edges := s.Voronoi.Generate(xs, ys, bounds)

	out := make([]model.MATSegment, 0, len(edges))
	for _, e := range edges {
		if e.Length() < generalTol {
			continue
		}
		if !region.InsideOuterNotInIslands(e.P1, generalTol) ||
			!region.InsideOuterNotInIslands(e.P2, generalTol) {
			continue
		}
		if s.RejectCrossingEdges && crossesBoundary(region, e, generalTol) {
			continue
		}
		out = append(out, model.MATSegment{P1: e.P1, P2: e.P2})
	}
	return out
}

// phantomPoint places the Voronoi-stabilisation point directly below the
// leftmost-bottom sample, at vertical distance (maxX-minX)/2, per spec
// §4.3 step 2. The bounds passed to the generator are expanded to contain
// it; the edges of its cell lie outside the region and are discarded by the
// region-membership filter above.
func phantomPoint(pts []geom2d.Vec2, bounds geom2d.Rect) geom2d.Vec2 {
	lb := pts[0]
	for _, p := range pts {
		if p.X < lb.X || (p.X == lb.X && p.Y < lb.Y) {
			lb = p
		}
	}
	return geom2d.Vec2{X: lb.X, Y: lb.Y - (bounds.Max.X-bounds.Min.X)/2}
}

func crossesBoundary(region model.Region, e geom2d.Segment2, tol float64) bool {
	if len(region.Outer.LineIntersections(e.P1, e.P2, tol)) > 0 {
		return true
	}
	for _, isl := range region.Islands {
		if len(isl.LineIntersections(e.P1, e.P2, tol)) > 0 {
			return true
		}
	}
	return false
}

func samplePolyline(pl model.Polyliner, spacing float64) []geom2d.Vec2 {
	var pts []geom2d.Vec2
	n := pl.NumSegments()
	for i := 0; i < n; i++ {
		pts = append(pts, sampleSegment(pl.GetSegment(i), spacing)...)
	}
	return pts
}

func sampleSegment(seg model.Segment, spacing float64) []geom2d.Vec2 {
	if seg.Arc == nil {
		return sampleLine(seg.P1, seg.P2, spacing)
	}
	return sampleArc(*seg.Arc, spacing)
}

func sampleLine(p1, p2 geom2d.Vec2, spacing float64) []geom2d.Vec2 {
	pts := []geom2d.Vec2{p1}
	length := p1.Dist(p2)
	if length < 1e-12 {
		return pts
	}
	n := int(math.Ceil(length / spacing))
	for i := 1; i < n; i++ {
		pts = append(pts, geom2d.Lerp(p1, p2, float64(i)/float64(n)))
	}
	return pts
}

func sampleArc(a model.Arcer, spacing float64) []geom2d.Vec2 {
	pts := []geom2d.Vec2{a.P1()}
	length := math.Abs(a.Sweep()) * a.Radius()
	if length < 1e-12 {
		return pts
	}
	n := int(math.Ceil(length / spacing))
	c, r, start, sweep := a.Center(), a.Radius(), a.Start(), a.Sweep()
	for i := 1; i < n; i++ {
		theta := start + float64(i)/float64(n)*sweep
		pts = append(pts, geom2d.Vec2{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)})
	}
	return pts
}
