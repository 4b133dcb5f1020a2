package roll

import (
	"github.com/arl/pocketgen/connect"
	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// computeEntryConnector builds the branch-entry connector run when a
// branch's first slice is placed: the move from wherever the cutter last
// finished to this branch's first slice, routed through the slice parent
// chain per connect.SwitchBranch.
func (st *runState) computeEntryConnector(last, first *model.Slice) *geom2d.Polyline {
	if last == nil {
		return nil
	}
	pl := connect.SwitchBranch(first, last, nil, nil, st.opts.GeneralTol, st.colliderSource)
	return &pl
}

// colliderSource adapts the spatial index into a connect.ColliderSource,
// used by SwitchBranch's shortcut admissibility check.
func (st *runState) colliderSource(a, b geom2d.Vec2) []model.Ball {
	bounds := geom2d.RectFromPoints(a, b)
	raw := st.idx.Query(bounds)
	out := make([]model.Ball, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(*model.Slice); ok {
			out = append(out, s.Ball)
		}
	}
	return out
}
