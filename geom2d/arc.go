package geom2d

import "math"

// Arc is a circular arc described by its center, radius, a start angle (in
// radians, measured from the positive X axis) and a signed sweep angle:
// positive sweep travels counter-clockwise, negative clockwise.
type Arc struct {
	Center Vec2
	Radius float64
	Start  float64
	Sweep  float64
}

// PointAt returns the point at parameter u in [0,1] along the arc, u=0 being
// the start and u=1 the end.
func (a Arc) PointAt(u float64) Vec2 {
	theta := a.Start + u*a.Sweep
	return Vec2{
		X: a.Center.X + a.Radius*math.Cos(theta),
		Y: a.Center.Y + a.Radius*math.Sin(theta),
	}
}

// TangentAt returns the unit tangent at parameter u, oriented in the
// direction of travel (i.e. consistent with the sign of Sweep).
func (a Arc) TangentAt(u float64) Vec2 {
	theta := a.Start + u*a.Sweep
	t := Vec2{X: -math.Sin(theta), Y: math.Cos(theta)}
	if a.Sweep < 0 {
		t = t.Neg()
	}
	return t
}

// P1 returns the arc's start point.
func (a Arc) P1() Vec2 { return a.PointAt(0) }

// Length returns the arc length.
func (a Arc) Length() float64 { return math.Abs(a.Sweep) * a.Radius }

// Direction reports the rotation sense of the arc.
func (a Arc) Direction() Direction {
	if a.Sweep >= 0 {
		return CCW
	}
	return CW
}

// GetExtrema returns the parameters u in (0,1) at which the arc is tangent
// to one of the four axis directions (its local X/Y extrema), used by
// bounding computations and by ArcFit error estimation.
func (a Arc) GetExtrema() []float64 {
	var us []float64
	// axis-aligned tangents occur every pi/2 of absolute angle.
	if a.Sweep == 0 {
		return us
	}
	step := math.Pi / 2
	// first multiple of step strictly after Start, walking in sweep's sign.
	sign := 1.0
	if a.Sweep < 0 {
		sign = -1
	}
	k := math.Floor(a.Start/step) + 1
	if sign < 0 {
		k = math.Ceil(a.Start/step) - 1
	}
	for {
		theta := k * step
		u := (theta - a.Start) / a.Sweep
		if sign > 0 && u >= 1 {
			break
		}
		if sign < 0 && u >= 1 {
			break
		}
		if u > 0 && u < 1 {
			us = append(us, u)
		}
		k += sign
		if len(us) > 8 {
			break // defensive bound; an arc has at most 4 extrema per axis pair
		}
	}
	return us
}

// Bounds returns the axis-aligned bounding box of the arc.
func (a Arc) Bounds() Rect {
	r := RectFromPoints(a.PointAt(0), a.PointAt(1))
	for _, u := range a.GetExtrema() {
		r = r.ExpandToContain(a.PointAt(u))
	}
	return r
}

// NearestPoint returns the point on the arc closest to p, and the parameter
// u at which it occurs.
func (a Arc) NearestPoint(p Vec2) (Vec2, float64) {
	theta := math.Atan2(p.Y-a.Center.Y, p.X-a.Center.X)
	u := angleParam(a, theta)
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	return a.PointAt(u), u
}

// angleParam returns the sweep-parameter u at which the arc passes through
// absolute angle theta, clamping to the nearer endpoint when theta lies
// outside [Start, Start+Sweep].
func angleParam(a Arc, theta float64) float64 {
	if a.Sweep == 0 {
		return 0
	}
	d := normalizeAngleDiff(theta - a.Start)
	if a.Sweep > 0 && d < 0 {
		d += 2 * math.Pi
	}
	if a.Sweep < 0 && d > 0 {
		d -= 2 * math.Pi
	}
	u := d / a.Sweep
	if u <= 1 {
		return u
	}
	// outside the swept range: nearest endpoint by angular distance.
	past := math.Abs(d) - math.Abs(a.Sweep)
	before := 2*math.Pi - math.Abs(d)
	if past <= before {
		return 1
	}
	return 0
}

func normalizeAngleDiff(d float64) float64 {
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// LineIntersect returns the intersection points of the arc with the segment
// a0->a1, restricted to the arc's swept range and the segment's [0,1] range.
func (a Arc) LineIntersect(a0, a1 Vec2) []Vec2 {
	d := a1.Sub(a0)
	f := a0.Sub(a.Center)

	aq := d.Dot(d)
	bq := 2 * f.Dot(d)
	cq := f.Dot(f) - a.Radius*a.Radius

	disc := bq*bq - 4*aq*cq
	if disc < 0 || aq == 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := (-bq - sq) / (2 * aq)
	t2 := (-bq + sq) / (2 * aq)

	var pts []Vec2
	for _, t := range []float64{t1, t2} {
		if t < -1e-12 || t > 1+1e-12 {
			continue
		}
		p := a0.Add(d.Scale(t))
		theta := math.Atan2(p.Y-a.Center.Y, p.X-a.Center.X)
		u := angleParam(a, theta)
		// reject points that only match after endpoint clamping, i.e. lie
		// outside the actual swept arc.
		recon := a.PointAt(u)
		if recon.Dist(p) < 1e-6*math.Max(1, a.Radius) {
			pts = append(pts, p)
		}
	}
	return pts
}

// CircleIntersect returns the 0, 1, or 2 intersection points of the full
// circles underlying two arcs (ignoring their sweep ranges) — used by the
// slice placer to find where a new ball meets its parent ball.
func CircleIntersect(c1 Vec2, r1 float64, c2 Vec2, r2 float64) []Vec2 {
	d := c1.Dist(c2)
	if d < 1e-15 {
		return nil // concentric: either no intersection or infinite
	}
	if d > r1+r2 || d < math.Abs(r1-r2) {
		return nil
	}
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	dir := c2.Sub(c1).Scale(1 / d)
	mid := c1.Add(dir.Scale(a))
	perp := dir.LeftNormal()
	if h < 1e-12 {
		return []Vec2{mid}
	}
	return []Vec2{mid.Add(perp.Scale(h)), mid.Sub(perp.Scale(h))}
}
