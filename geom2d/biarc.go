package geom2d

import "math"

// Biarc is the result of fitting two tangent-continuous circular arcs
// between two endpoints with prescribed unit tangents (Ryan Juckett's
// construction). When the geometry degenerates — equal tangents with no
// usable fallback — Degenerate is set, Arc1 holds the straight Line(P1, P2)
// and Arc2 is left as the zero Piece.
type Biarc struct {
	P1, P2     Vec2
	T1, T2     Vec2 // unit tangents at P1 and P2
	Pm         Vec2 // shared junction point
	Arc1, Arc2 Piece
	Degenerate bool
}

// ComputeBiarc builds the biarc interpolating p1->p2 with unit tangents t1
// (at p1) and t2 (at p2), following Ryan Juckett's derivation:
//
//	v = p2 - p1, t = t1 + t2, D = 2(1 - t1.t2)
//	d2 = (-v.t + sqrt((v.t)^2 + 2(1-t1.t2)(v.v))) / D      [D != 0]
//	d2 = (v.v) / (4 (v.t2))                                 [D == 0 fallback]
//	pm = 1/2 (p1 + p2 + d2 (t1 - t2))
func ComputeBiarc(p1, t1, p2, t2 Vec2, tol float64) Biarc {
	b := Biarc{P1: p1, P2: p2, T1: t1, T2: t2}

	v := p2.Sub(p1)
	dotT1T2 := t1.Dot(t2)
	d := 2 * (1 - dotT1T2)

	var d2 float64
	ok := true
	if math.Abs(d) < 1e-12 {
		dPrime := 4 * v.Dot(t2)
		if math.Abs(dPrime) < 1e-12 {
			ok = false
		} else {
			d2 = v.Dot(v) / dPrime
		}
	} else {
		vt := v.Dot(t1.Add(t2))
		disc := vt*vt + 2*(1-dotT1T2)*v.Dot(v)
		if disc < 0 {
			disc = 0
		}
		d2 = (-vt + math.Sqrt(disc)) / d
	}

	if !ok {
		b.Degenerate = true
		b.Arc1 = Line(p1, p2)
		b.Arc2 = Piece{}
		return b
	}

	pm := p1.Add(p2).Add(t1.Sub(t2).Scale(d2)).Scale(0.5)
	b.Pm = pm

	arc1, deg1 := arcThrough(p1, t1, pm)
	arc2, deg2 := arcThroughReversed(p2, t2, pm)

	if deg1 && deg2 {
		b.Degenerate = true
		b.Arc1 = Line(p1, p2)
		return b
	}
	if deg1 {
		b.Arc1 = Line(p1, pm)
	} else {
		b.Arc1 = ArcPiece(arc1)
	}
	if deg2 {
		b.Arc2 = Line(pm, p2)
	} else {
		b.Arc2 = ArcPiece(arc2)
	}
	return b
}

// arcThrough builds the arc starting at p with tangent t and ending at pm.
// c = p + ((pm-p).(pm-p)) / (2 n.(pm-p)) n, where n is the left normal of t.
// Returns degenerate=true (straight segment) when the denominator vanishes,
// i.e. p, pm and the tangent direction are collinear.
func arcThrough(p, t, pm Vec2) (Arc, bool) {
	n := t.LeftNormal()
	w := pm.Sub(p)
	denom := 2 * n.Dot(w)
	if math.Abs(denom) < 1e-12 {
		return Arc{}, true
	}
	s := w.Dot(w) / denom
	c := p.Add(n.Scale(s))

	radius := p.Dist(c)
	startAngle := p.Sub(c).Angle()
	endAngle := pm.Sub(c).Angle()
	sweep := signedSweep(startAngle, endAngle, -sign(p.Sub(c).Dot(n)))
	return Arc{Center: c, Radius: radius, Start: startAngle, Sweep: sweep}, false
}

// arcThroughReversed builds the arc from pm to p2 with exit tangent t2 at
// p2, by constructing the arc from p2 backwards (tangent -t2) and then
// reversing its sweep so that it reads pm->p2 forwards.
func arcThroughReversed(p2, t2, pm Vec2) (Arc, bool) {
	a, deg := arcThrough(p2, t2.Neg(), pm)
	if deg {
		return a, true
	}
	// a currently runs p2 -> pm; reverse it to run pm -> p2.
	a.Start = a.Start + a.Sweep
	a.Sweep = -a.Sweep
	return a, false
}

// sign returns -1 for negative v and +1 otherwise. arcThrough applies it to
// (p-c).n, n being the left normal of the start tangent: a positive value
// puts the center to the right of the tangent, so the arc turns clockwise
// (negative sweep), and a negative value makes it turn counter-clockwise.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// signedSweep returns the sweep angle from start to end that has the
// requested sign (positive = CCW/increasing angle, negative = CW).
func signedSweep(start, end, wantSign float64) float64 {
	d := normalizeAngleDiff(end - start)
	if wantSign > 0 && d < 0 {
		d += 2 * math.Pi
	}
	if wantSign < 0 && d > 0 {
		d -= 2 * math.Pi
	}
	return d
}
