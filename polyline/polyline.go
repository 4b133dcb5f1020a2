// Package polyline provides a concrete, testable implementation of the
// model.Polyliner / model.Arcer collaborator interfaces that the spec
// treats as externally supplied: a closed boundary built from an ordered
// list of line and arc pieces.
package polyline

import (
	"math"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// Polyline is a closed boundary of line and arc pieces, traversed in order
// with the last piece's end implicitly connecting back to the first
// piece's start.
type Polyline struct {
	pieces []geom2d.Piece
}

// New builds a Polyline from an ordered, already-closed sequence of pieces.
func New(pieces []geom2d.Piece) *Polyline {
	return &Polyline{pieces: pieces}
}

// FromPoints builds a closed straight-edged Polyline from an ordered list
// of vertices.
func FromPoints(pts []geom2d.Vec2) *Polyline {
	pieces := make([]geom2d.Piece, len(pts))
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		pieces[i] = geom2d.Line(p, q)
	}
	return &Polyline{pieces: pieces}
}

// GetPerimeter returns the total length of every piece.
func (p *Polyline) GetPerimeter() float64 {
	var l float64
	for _, piece := range p.pieces {
		l += piece.Length()
	}
	return l
}

// NumSegments returns the number of pieces.
func (p *Polyline) NumSegments() int { return len(p.pieces) }

// GetSegment returns piece i as a model.Segment, wrapping an Arc
// collaborator when the piece is a circular arc.
func (p *Polyline) GetSegment(i int) model.Segment {
	piece := p.pieces[i]
	if piece.Kind == geom2d.PieceArc {
		a := Arc{piece.Arc}
		var arcer model.Arcer = a
		return model.Segment{P1: piece.Start(), P2: piece.End(), Arc: &arcer}
	}
	return model.Segment{P1: piece.P1, P2: piece.P2}
}

// PointInPolyline reports whether p lies inside the closed boundary, using
// a crossing-number test against the line pieces and the chords of the arc
// pieces, widened by tol.
func (p *Polyline) PointInPolyline(pt geom2d.Vec2, tol float64) bool {
	inside := false
	for _, piece := range p.pieces {
		a, b := piece.Start(), piece.End()
		if piece.Kind == geom2d.PieceArc {
			a, b = sampleChordEndpoints(piece.Arc)
		}
		if rayCrosses(a, b, pt) {
			inside = !inside
		}
	}
	if inside {
		return true
	}
	// boundary-tolerant: a point within tol of any piece counts as inside.
	return p.nearestDist(pt) <= tol
}

func (p *Polyline) nearestDist(pt geom2d.Vec2) float64 {
	best := math.MaxFloat64
	for _, piece := range p.pieces {
		var d float64
		if piece.Kind == geom2d.PieceArc {
			_, u := piece.Arc.NearestPoint(pt)
			d = pt.Dist(piece.Arc.PointAt(u))
		} else {
			d = distPointSegment(pt, piece.P1, piece.P2)
		}
		if d < best {
			best = d
		}
	}
	return best
}

func sampleChordEndpoints(a geom2d.Arc) (geom2d.Vec2, geom2d.Vec2) {
	return a.PointAt(0), a.PointAt(1)
}

func rayCrosses(a, b, p geom2d.Vec2) bool {
	if (a.Y > p.Y) == (b.Y > p.Y) {
		return false
	}
	xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
	return p.X < xCross
}

func distPointSegment(p, a, b geom2d.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Len2()
	if l2 < 1e-18 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Dist(a.Add(ab.Scale(t)))
}

// LineIntersections returns every point where segment p1->p2 crosses the
// boundary, within tol of an exact intersection.
func (p *Polyline) LineIntersections(p1, p2 geom2d.Vec2, tol float64) []geom2d.Vec2 {
	var out []geom2d.Vec2
	for _, piece := range p.pieces {
		if piece.Kind == geom2d.PieceArc {
			out = append(out, piece.Arc.LineIntersect(p1, p2)...)
			continue
		}
		if pt, ok := lineLineIntersect(p1, p2, piece.P1, piece.P2, tol); ok {
			out = append(out, pt)
		}
	}
	return out
}

func lineLineIntersect(a0, a1, b0, b1 geom2d.Vec2, tol float64) (geom2d.Vec2, bool) {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-15 {
		return geom2d.Vec2{}, false
	}
	diff := b0.Sub(a0)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom
	if t < -tol || t > 1+tol || u < -tol || u > 1+tol {
		return geom2d.Vec2{}, false
	}
	return a0.Add(d1.Scale(t)), true
}

// ArcFit returns the boundary re-expressed as a geom2d.Polyline, fitting
// arcs to runs of near-circular pieces within tol via geom2d.ArcFit over a
// dense point sampling of the boundary.
func (p *Polyline) ArcFit(tol float64) geom2d.Polyline {
	var pts []geom2d.Vec2
	for _, piece := range p.pieces {
		pts = append(pts, piece.Start())
		if piece.Kind == geom2d.PieceArc {
			const samples = 16
			for i := 1; i < samples; i++ {
				pts = append(pts, piece.Arc.PointAt(float64(i)/samples))
			}
		}
	}
	pts = append(pts, p.pieces[len(p.pieces)-1].End())
	return geom2d.ArcFit(pts, tol)
}

// ParametricPoint returns the point at normalized arc-length parameter u in
// [0,1] around the whole closed boundary.
func (p *Polyline) ParametricPoint(u float64) geom2d.Vec2 {
	total := p.GetPerimeter()
	if total < 1e-15 {
		return p.pieces[0].Start()
	}
	target := u * total
	var acc float64
	for _, piece := range p.pieces {
		l := piece.Length()
		if acc+l >= target {
			local := (target - acc) / l
			if piece.Kind == geom2d.PieceArc {
				return piece.Arc.PointAt(local)
			}
			return geom2d.Lerp(piece.P1, piece.P2, local)
		}
		acc += l
	}
	return p.pieces[len(p.pieces)-1].End()
}

// Arc adapts geom2d.Arc to the model.Arcer collaborator interface.
type Arc struct {
	geom2d.Arc
}

func (a Arc) Center() geom2d.Vec2 { return a.Arc.Center }
func (a Arc) Radius() float64     { return a.Arc.Radius }
func (a Arc) Start() float64      { return a.Arc.Start }
func (a Arc) Sweep() float64      { return a.Arc.Sweep }
func (a Arc) P1() geom2d.Vec2     { return a.Arc.P1() }

func (a Arc) GetExtrema() []float64 { return a.Arc.GetExtrema() }

func (a Arc) NearestPoint(p geom2d.Vec2) (geom2d.Vec2, float64) { return a.Arc.NearestPoint(p) }

func (a Arc) LineIntersect(p1, p2 geom2d.Vec2) []geom2d.Vec2 { return a.Arc.LineIntersect(p1, p2) }
