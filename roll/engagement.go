// Package roll implements the slice placer (component E, "roll"): walking
// a branch's parametric curve, it places the sequence of slices whose
// radial engagement against previously cut material stays within the
// configured band, refining each tentative slice against nearby finished
// slices fetched from the spatial index.
package roll

import (
	"math"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// rawEngagement is the single-arc engagement estimate between a parent ball
// and a tentative new ball: the maximal radial overlap length along the
// line joining their centers (spec §4.5, "Tentative slice construction").
// It returns 0 when the two balls do not intersect.
func rawEngagement(parent, b model.Ball) float64 {
	d := parent.Center.Dist(b.Center)
	switch {
	case d >= parent.Radius+b.Radius:
		return 0
	case d <= math.Abs(parent.Radius-b.Radius):
		// one ball fully contains the other.
		if b.Radius <= parent.Radius {
			return 2 * b.Radius
		}
		return 2 * parent.Radius
	default:
		return parent.Radius + b.Radius - d
	}
}

// penetration returns how deep point p sits inside ball c, i.e. the radial
// overlap length at that single point; zero or negative means p is outside
// (or on the boundary of) c.
func penetration(p geom2d.Vec2, c model.Ball) float64 {
	return c.Radius - p.Dist(c.Center)
}

// maxPenetration samples n points along arc and returns the deepest
// penetration into any of the given balls, used by refine to re-derive
// Max_engagement for the tentative slice's arc.
func maxPenetration(arc geom2d.Arc, balls []model.Ball, n int) float64 {
	if n < 2 {
		n = 2
	}
	max := 0.0
	for i := 0; i < n; i++ {
		u := float64(i) / float64(n-1)
		p := arc.PointAt(u)
		for _, b := range balls {
			if pen := penetration(p, b); pen > max {
				max = pen
			}
		}
	}
	return max
}
