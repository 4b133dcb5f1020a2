package geom2d

import "math"

// CubicBezier evaluates a cubic Bézier curve with control points p0..p3 at
// parameter t in [0,1].
func CubicBezier(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// HermiteSpline evaluates a cubic Hermite segment through p0,p1 with
// tangents m0,m1 at parameter t in [0,1].
func HermiteSpline(p0, m0, p1, m1 Vec2, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return Vec2{
		X: h00*p0.X + h10*m0.X + h01*p1.X + h11*m1.X,
		Y: h00*p0.Y + h10*m0.Y + h01*p1.Y + h11*m1.Y,
	}
}

// SampleCurve flattens a parametric curve eval(t), t in [0,1], into a
// polyline of straight segments whose chord error from the true curve stays
// within tol. It adaptively bisects: a segment is accepted once its
// midpoint deviates from the chord by less than tol.
func SampleCurve(eval func(t float64) Vec2, tol float64, maxDepth int) []Vec2 {
	pts := []Vec2{eval(0)}
	var recurse func(t0, t1 float64, p0, p1 Vec2, depth int)
	recurse = func(t0, t1 float64, p0, p1 Vec2, depth int) {
		tm := (t0 + t1) / 2
		pm := eval(tm)
		chordMid := Lerp(p0, p1, 0.5)
		if depth >= maxDepth || pm.Dist(chordMid) <= tol {
			pts = append(pts, p1)
			return
		}
		recurse(t0, tm, p0, pm, depth+1)
		recurse(tm, t1, pm, p1, depth+1)
	}
	recurse(0, 1, pts[0], eval(1), 0)
	return pts
}

// ArcFit fits a sequence of circular arcs (falling back to lines where the
// sampled points are nearly collinear) to the polyline pts, within chordal
// tolerance tol. This is the post-processing step applied after spline
// sampling, turning a dense point cloud back into a compact Polyline of
// line/arc pieces.
func ArcFit(pts []Vec2, tol float64) Polyline {
	var out Polyline
	if len(pts) < 2 {
		return out
	}
	i := 0
	for i < len(pts)-1 {
		j := i + 1
		// grow the run as long as a single arc (or line) through
		// pts[i..j] stays within tol of every intermediate sample.
		for j+1 < len(pts) {
			if !fitsArc(pts[i:j+2], tol) {
				break
			}
			j++
		}
		out.Append(fitPiece(pts[i], pts[j], pts[i:j+1]))
		i = j
	}
	return out
}

func fitsArc(pts []Vec2, tol float64) bool {
	if len(pts) < 3 {
		return true
	}
	c, r, ok := circumcircle(pts[0], pts[len(pts)/2], pts[len(pts)-1])
	if !ok {
		return isCollinear(pts, tol)
	}
	for _, p := range pts {
		if math.Abs(p.Dist(c)-r) > tol {
			return false
		}
	}
	return true
}

func isCollinear(pts []Vec2, tol float64) bool {
	p0, p1 := pts[0], pts[len(pts)-1]
	d := p1.Sub(p0)
	l := d.Len()
	if l < 1e-15 {
		return true
	}
	for _, p := range pts {
		// distance from p to the line p0->p1
		dist := math.Abs(d.Cross(p.Sub(p0))) / l
		if dist > tol {
			return false
		}
	}
	return true
}

func fitPiece(p0, p1 Vec2, samples []Vec2) Piece {
	if isCollinear(samples, 1e-9) {
		return Line(p0, p1)
	}
	mid := samples[len(samples)/2]
	c, r, ok := circumcircle(p0, mid, p1)
	if !ok {
		return Line(p0, p1)
	}
	startAngle := p0.Sub(c).Angle()
	endAngle := p1.Sub(c).Angle()
	midAngle := mid.Sub(c).Angle()
	// choose the sweep sign that passes through the mid sample.
	sweepCCW := signedSweep(startAngle, endAngle, 1)
	dMid := normalizeAngleDiff(midAngle - startAngle)
	if dMid < 0 {
		dMid += 2 * math.Pi
	}
	uMidCCW := dMid / sweepCCW
	sweep := sweepCCW
	if uMidCCW < 0 || uMidCCW > 1 {
		sweep = signedSweep(startAngle, endAngle, -1)
	}
	return ArcPiece(Arc{Center: c, Radius: r, Start: startAngle, Sweep: sweep})
}

// circumcircle returns the center and radius of the circle through p1,p2,p3.
func circumcircle(p1, p2, p3 Vec2) (Vec2, float64, bool) {
	ax, ay := p1.X, p1.Y
	bx, by := p2.X, p2.Y
	cx, cy := p3.X, p3.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < 1e-12 {
		return Vec2{}, 0, false
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	center := Vec2{ux, uy}
	return center, center.Dist(p1), true
}
