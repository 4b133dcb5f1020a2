package roll

import (
	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// refine re-derives s's engagement and swept geometry against every
// previously placed slice whose ball lies near s (queried from the
// spatial index, not just s's immediate parent): the raw estimate computed
// by tentativeSlice only accounts for the parent ball, but a pocket can
// fold back on itself so that an earlier, unrelated branch's material also
// bounds the new slice's true engagement.
func (st *runState) refine(s *model.Slice) {
	if len(s.Segments) == 0 || s.Segments[0].Kind != geom2d.PieceArc {
		return
	}
	arc := s.Segments[0].Arc

	colliders := st.nearbySlices(boundsForQuery(s), s)
	if len(colliders) == 0 {
		return
	}

	intervals := freeIntervals(arc, colliders, st.opts.GeneralTol)
	if len(intervals) == 0 {
		s.MaxEngagement = 0
		s.Segments = nil
		return
	}

	pieces := make([]geom2d.Piece, 0, len(intervals))
	for _, iv := range intervals {
		pieces = append(pieces, geom2d.ArcPiece(subArc(arc, iv.u0, iv.u1)))
	}
	s.Segments = pieces
	s.Start = pieces[0].Start()
	s.End = pieces[len(pieces)-1].End()

	s.MaxEngagement = maxPenetration(arc, colliders, 24)
	if len(intervals) > 1 {
		s.MaxEngagement *= st.opts.SegmentDeratingK
	}
}

// boundsForQuery returns the region around s's ball worth querying for
// colliders: the ball itself grown to twice its radius, wide enough to
// catch material that only partially overlaps the sweep.
func boundsForQuery(s *model.Slice) geom2d.Rect {
	return geom2d.RectFromCircle(s.Ball.Center, s.Ball.Radius*2)
}

// nearbySlices queries idx for slices overlapping bounds and returns their
// balls, excluding s itself (which is not yet registered at refine time,
// but defensive against callers that register before refining).
func (st *runState) nearbySlices(bounds geom2d.Rect, s *model.Slice) []model.Ball {
	raw := st.idx.Query(bounds)
	out := make([]model.Ball, 0, len(raw))
	for _, v := range raw {
		other, ok := v.(*model.Slice)
		if !ok || other == s {
			continue
		}
		if other.Ball.Overlaps(s.Ball) {
			out = append(out, other.Ball)
		}
	}
	return out
}
