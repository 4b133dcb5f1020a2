package model

import (
	"math"

	"github.com/arl/pocketgen/geom2d"
)

// Region is the planar area to clear: one outer boundary and zero or more
// island boundaries (holes) that must not be cut into.
type Region struct {
	Outer   Polyliner
	Islands []Polyliner
}

// MICRadius returns the Maximum Inscribed Circle radius at p: the distance
// from p to the nearest outline/island segment, minus the cutter radius and
// the user margin. Passability is the caller's concern (compare against
// MinPassableMIC).
func (r Region) MICRadius(p geom2d.Vec2, cutterRadius, margin float64) float64 {
	d := nearestBoundaryDist(r.Outer, p)
	for _, isl := range r.Islands {
		if dd := nearestBoundaryDist(isl, p); dd < d {
			d = dd
		}
	}
	return d - cutterRadius - margin
}

func nearestBoundaryDist(pl Polyliner, p geom2d.Vec2) float64 {
	best := maxFloat
	n := pl.NumSegments()
	for i := 0; i < n; i++ {
		seg := pl.GetSegment(i)
		var d float64
		if seg.Arc != nil {
			_, u := (*seg.Arc).NearestPoint(p)
			q := arcPointAt(*seg.Arc, u)
			d = p.Dist(q)
		} else {
			d = distPointSegment(p, seg.P1, seg.P2)
		}
		if d < best {
			best = d
		}
	}
	return best
}

func arcPointAt(a Arcer, u float64) geom2d.Vec2 {
	theta := a.Start() + u*a.Sweep()
	c := a.Center()
	r := a.Radius()
	return geom2d.Vec2{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)}
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
	proj := a.Add(ab.Scale(t))
	return p.Dist(proj)
}

// InsideOuterNotInIslands reports whether p lies inside the outer boundary
// and outside every island, to tolerance tol.
func (r Region) InsideOuterNotInIslands(p geom2d.Vec2, tol float64) bool {
	if !r.Outer.PointInPolyline(p, tol) {
		return false
	}
	for _, isl := range r.Islands {
		if isl.PointInPolyline(p, tol) {
			return false
		}
	}
	return true
}

const maxFloat = 1.0e308
