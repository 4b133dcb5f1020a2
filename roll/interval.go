package roll

import (
	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

const coverageSamples = 48

// freeInterval is a contiguous run of the tentative arc's parameter range
// [0,1] that is not covered by any collider ball.
type freeInterval struct {
	u0, u1 float64
}

// freeIntervals samples arc at coverageSamples points and returns the
// contiguous runs not covered by any of colliders — the "surviving sweep"
// that Refine carves the tentative slice's single arc into.
func freeIntervals(arc geom2d.Arc, colliders []model.Ball, tol float64) []freeInterval {
	covered := make([]bool, coverageSamples)
	for i := 0; i < coverageSamples; i++ {
		u := float64(i) / float64(coverageSamples-1)
		p := arc.PointAt(u)
		for _, c := range colliders {
			if p.Dist(c.Center) <= c.Radius-tol {
				covered[i] = true
				break
			}
		}
	}

	var out []freeInterval
	i := 0
	for i < coverageSamples {
		if covered[i] {
			i++
			continue
		}
		j := i
		for j < coverageSamples && !covered[j] {
			j++
		}
		out = append(out, freeInterval{
			u0: float64(i) / float64(coverageSamples-1),
			u1: float64(j-1) / float64(coverageSamples-1),
		})
		i = j
	}
	return out
}

// subArc returns the portion of arc spanning parameter range [u0,u1].
func subArc(arc geom2d.Arc, u0, u1 float64) geom2d.Arc {
	return geom2d.Arc{
		Center: arc.Center,
		Radius: arc.Radius,
		Start:  arc.Start + u0*arc.Sweep,
		Sweep:  (u1 - u0) * arc.Sweep,
	}
}
