// Package spiral implements the default model.SpiralGenerator: a flat
// Archimedean entry spiral, sampled into line segments by geom2d's own
// adaptive curve flattener rather than a fixed-angle step table.
package spiral

import (
	"math"

	"github.com/arl/pocketgen/geom2d"
)

// defaultTol bounds the chord error of the sampled spiral when
// Generator.Tol is unset; the pocket generator's default Generator sets Tol
// to general_tolerance.
const defaultTol = 1e-3

// Generator is the default model.SpiralGenerator implementation. The zero
// value samples at defaultTol.
type Generator struct {
	Tol float64
}

// FlatSpiral returns an Archimedean spiral centred at center, growing
// outward by pitch per full turn, swept in direction dir from the spiral's
// eye (radius zero) until the radius reaches center.Dist(start). The final
// point lands back at that same radius but not generally at start itself:
// the swept angle is whatever it takes to grow from 0 to that radius at
// the given pitch, which only lines up with start's angle when the radius
// is an integral multiple of pitch. This is the shape used as the pocket's
// entry cut per spec §4.6, where only the radius, not the exact endpoint
// angle, matters.
func (g Generator) FlatSpiral(center, start geom2d.Vec2, pitch float64, dir geom2d.Direction) geom2d.Polyline {
	tol := g.Tol
	if tol <= 0 {
		tol = defaultTol
	}
	return FlatSpiral(center, start, pitch, dir, tol)
}

// FlatSpiral is the free-function form, sampled to chord-error tol.
func FlatSpiral(center, start geom2d.Vec2, pitch float64, dir geom2d.Direction, tol float64) geom2d.Polyline {
	r0 := center.Dist(start)
	theta0 := start.Sub(center).Angle()
	sign := dir.Sign()

	if r0 < 1e-12 || pitch <= 0 {
		var pl geom2d.Polyline
		return pl
	}

	// radius grows linearly from 0 at the spiral's eye to r0 at the
	// starting radius, matching an Archimedean spiral
	// r(theta) = pitch/(2*pi) * theta; the angle swept to get there is
	// whatever that implies, r0/pitch full turns.
	totalAngle := 2 * math.Pi * (r0 / pitch)

	eval := func(t float64) geom2d.Vec2 {
		theta := sign * totalAngle * t
		r := pitch / (2 * math.Pi) * math.Abs(theta)
		return geom2d.Vec2{
			X: center.X + r*math.Cos(theta0+theta),
			Y: center.Y + r*math.Sin(theta0+theta),
		}
	}

	pts := geom2d.SampleCurve(eval, tol, 24)
	var pl geom2d.Polyline
	for i := 1; i < len(pts); i++ {
		pl.Append(geom2d.Line(pts[i-1], pts[i]))
	}
	return pl
}
