package roll

import (
	"math"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// searchSlice runs the binary search described by spec §4.5 over the
// branch's remaining curve parameter range [left, 1], returning the last
// refined candidate with non-zero engagement that the search evaluated.
// That candidate is not guaranteed to lie inside the configured engagement
// band: the caller checks it for overshoot and undershoot. ok is false when
// no parameter in the range admits any candidate at all (the branch
// terminates here).
func (st *runState) searchSlice(b *model.Branch, left float64, parent *model.Slice) (candidate *model.Slice, newLeft float64, ok bool) {
	right := 1.0
	bestLeft := left

searchLoop:
	for {
		mid := (left + right) / 2
		p := b.Curve.ParametricPt(mid)
		r := st.region.MICRadius(p, st.opts.CutterRadius(), st.opts.Margin)

		switch {
		case r < st.opts.MinPassableMIC():
			right = mid
		default:
			s := st.tentativeSlice(p, r, parent, b)
			switch {
			case s.MaxEngagement == 0:
				if s.Dist <= 0 {
					left = mid
				} else {
					right = mid
				}
			default:
				st.refine(s)
				candidate = s
				bestLeft = mid
				max := st.opts.MaxEngagement
				switch {
				case s.MaxEngagement > max:
					right = mid
				case max > 0 && (max-s.MaxEngagement)/max > st.opts.EngagementTol:
					left = mid
				default:
					left = mid
					break searchLoop
				}
			}
		}

		if b.Curve.ParametricPt(left).Dist(b.Curve.ParametricPt(right)) < st.opts.GeneralTol {
			break
		}
	}

	if candidate == nil {
		return nil, left, false
	}
	return candidate, bestLeft, true
}

// tentativeSlice builds the candidate slice at point p with MIC radius r,
// against parent, without yet consulting the spatial index for other
// nearby material (that refinement happens in refine).
func (st *runState) tentativeSlice(p geom2d.Vec2, r float64, parent *model.Slice, b *model.Branch) *model.Slice {
	cand := model.Ball{Center: p, Radius: r}
	dist := parent.Ball.Dist(cand)
	eng := rawEngagement(parent.Ball, cand)

	s := &model.Slice{Ball: cand, Dir: st.opts.MillDirection, Dist: dist, MaxEngagement: eng}
	if eng > 0 {
		arc := outerArc(parent.Ball, cand, s.Dir)
		s.Segments = []geom2d.Piece{geom2d.ArcPiece(arc)}
		s.Start = arc.PointAt(0)
		s.End = arc.PointAt(1)
	}
	return s
}

// outerArc returns the portion of candidate's circle that lies outside
// parent's circle, swept in direction dir — the new material this slice
// must cut.
func outerArc(parent, candidate model.Ball, dir geom2d.Direction) geom2d.Arc {
	pts := geom2d.CircleIntersect(parent.Center, parent.Radius, candidate.Center, candidate.Radius)
	if len(pts) < 2 {
		sweep := 2 * math.Pi
		if dir == geom2d.CW {
			sweep = -2 * math.Pi
		}
		return geom2d.Arc{Center: candidate.Center, Radius: candidate.Radius, Sweep: sweep}
	}

	a1 := angleOf(candidate.Center, pts[0])
	a2 := angleOf(candidate.Center, pts[1])

	arc := arcBetween(candidate, a1, a2, dir)
	if arc.PointAt(0.5).Dist(parent.Center) >= parent.Radius {
		return arc
	}
	return arcBetween(candidate, a2, a1, dir)
}

func angleOf(c, p geom2d.Vec2) float64 { return math.Atan2(p.Y-c.Y, p.X-c.X) }

// arcBetween returns the arc of ball b from absolute angle a1 to a2, swept
// in direction dir.
func arcBetween(b model.Ball, a1, a2 float64, dir geom2d.Direction) geom2d.Arc {
	sweep := a2 - a1
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	if dir == geom2d.CW {
		sweep -= 2 * math.Pi
	}
	return geom2d.Arc{Center: b.Center, Radius: b.Radius, Start: a1, Sweep: sweep}
}
