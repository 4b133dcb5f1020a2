package connect

import (
	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// ColliderSource returns the current set of collider balls to test a
// candidate shortcut against — either "everything placed so far" (a plain
// slice) or the result of an indexed range query, depending on the caller.
type ColliderSource func(a, b geom2d.Vec2) []model.Ball

// SwitchBranch builds the connector polyline from src to dst, per spec
// §4.7. When dst is the direct child of src in the slice-parent chain, it
// emits a smooth tangent-continuous biarc chord; otherwise it routes
// through the least common ancestor, shortcutting through intermediate
// ball centers whenever doing so stays inside previously cut material.
func SwitchBranch(dst, src *model.Slice, dstPt, srcPt *geom2d.Vec2, tol float64, colliders ColliderSource) geom2d.Polyline {
	from := src.End
	if srcPt != nil {
		from = *srcPt
	}
	to := dst.Start
	if dstPt != nil {
		to = *dstPt
	}

	if dst.Parent == src {
		return smoothChord(src, dst, from, to, tol)
	}

	anc := model.LCA(src, dst)
	if anc == nil {
		// disconnected trees: nothing better to do than a direct move.
		var pl geom2d.Polyline
		pl.Append(geom2d.Line(from, to))
		return pl
	}

	path := append(model.PathToAncestor(src, anc), anc)
	// path currently runs upward from src to anc; combined with the
	// downward run from anc to dst it describes the full detour.
	downward := reverseSlices(model.PathToAncestor(dst, anc))
	waypoints := append(path, downward...)

	var pl geom2d.Polyline
	cur := from
	for _, s := range waypoints {
		next := s.Ball.Center
		if colliders != nil && MayShortcut(cur, to, colliders(cur, to), tol) {
			pl.Append(geom2d.Line(cur, to))
			return pl
		}
		pl.Append(geom2d.Line(cur, next))
		cur = next
	}
	pl.Append(geom2d.Line(cur, to))
	return pl
}

func reverseSlices(s []*model.Slice) []*model.Slice {
	out := make([]*model.Slice, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// smoothChord builds the tangent-continuous biarc connector between src and
// dst when dst.Parent == src: outward normals from each slice's center to
// its endpoint are rotated into tangents consistent with the slice's
// rotation direction, then fed to geom2d.ComputeBiarc.
func smoothChord(src, dst *model.Slice, from, to geom2d.Vec2, tol float64) geom2d.Polyline {
	t1 := tangentAt(src, from)
	t2 := tangentAt(dst, to)

	b := geom2d.ComputeBiarc(from, t1, to, t2, tol)
	var pl geom2d.Polyline
	if b.Degenerate {
		pl.Append(geom2d.Line(from, to))
		return pl
	}
	pl.Append(b.Arc1, b.Arc2)
	return pl
}

// tangentAt returns the unit tangent at point p on the boundary of s's
// ball, oriented consistently with s's rotation direction: the outward
// normal from center to p, rotated +/-90 degrees.
func tangentAt(s *model.Slice, p geom2d.Vec2) geom2d.Vec2 {
	n := p.Sub(s.Ball.Center).Normalize()
	if s.Dir == geom2d.CCW {
		return n.LeftNormal()
	}
	return n.RightNormal()
}
