// Package connect implements the branch-entry / return-to-base connectors
// (component G): least-common-ancestor routing with straight-segment
// shortcutting, and the tangent-continuous biarc chord used when one slice
// is the direct parent of another.
package connect

import (
	"math"
	"sort"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
	"github.com/arl/pocketgen/spatial"
)

// crossing records where the ray a->b enters or exits one collider ball.
type crossing struct {
	dist float64
	ball int
}

// MayShortcut decides whether the straight segment a->b lies entirely
// inside the union of the given collider balls, per spec §4.7: balls
// containing a seed a running "inside" set; each ray/ball intersection
// toggles membership, except that a crossing where the ray enters a ball
// already seeded as containing a (a lies on its boundary) is not counted;
// if the inside set ever empties before reaching |ab|, the shortcut is
// rejected.
func MayShortcut(a, b geom2d.Vec2, colliders []model.Ball, tol float64) bool {
	for _, c := range colliders {
		if a.Dist(c.Center) <= c.Radius+tol && b.Dist(c.Center) <= c.Radius+tol {
			return true
		}
	}

	ab := b.Sub(a)
	abLen := ab.Len()
	if abLen < 1e-15 {
		return true
	}

	var crossings []crossing
	inside := map[int]bool{}
	for i, c := range colliders {
		containsA := a.Dist(c.Center) <= c.Radius+tol
		ts := rayCircleParams(a, ab, c)
		for _, t := range ts {
			if containsA && a.Add(ab.Scale(t)).Sub(c.Center).Dot(ab) < 0 {
				continue // entry into a ball already counted as containing a
			}
			crossings = append(crossings, crossing{dist: t * abLen, ball: i})
		}
		if containsA {
			inside[i] = true
		}
	}

	if len(inside) == 0 {
		return false
	}

	sort.Slice(crossings, func(i, j int) bool { return crossings[i].dist < crossings[j].dist })

	for _, cr := range crossings {
		if cr.dist > abLen+tol {
			break
		}
		if inside[cr.ball] {
			delete(inside, cr.ball)
		} else {
			inside[cr.ball] = true
		}
		if len(inside) == 0 && cr.dist < abLen-tol {
			return false
		}
	}
	return true
}

// rayCircleParams returns the ray parameters t (in the same units as ab,
// i.e. a+t*ab) at which the infinite ray from a in direction ab crosses
// circle c's boundary, restricted to t in [0,1].
func rayCircleParams(a, ab geom2d.Vec2, c model.Ball) []float64 {
	f := a.Sub(c.Center)
	aq := ab.Dot(ab)
	if aq < 1e-18 {
		return nil
	}
	bq := 2 * f.Dot(ab)
	cq := f.Dot(f) - c.Radius*c.Radius
	disc := bq*bq - 4*aq*cq
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := (-bq - sq) / (2 * aq)
	t2 := (-bq + sq) / (2 * aq)
	var out []float64
	for _, t := range []float64{t1, t2} {
		if t >= -1e-9 && t <= 1+1e-9 {
			out = append(out, t)
		}
	}
	return out
}

// MayShortcutIndexed is the spatial-index overload: it first fetches
// candidate colliders by querying the bounding rectangle of a->b, then
// delegates to MayShortcut.
func MayShortcutIndexed(a, b geom2d.Vec2, idx *spatial.Tree, tol float64) bool {
	bounds := geom2d.RectFromPoints(a, b)
	objs := idx.Query(bounds)
	colliders := make([]model.Ball, 0, len(objs))
	for _, o := range objs {
		if s, ok := o.(*model.Slice); ok {
			colliders = append(colliders, s.Ball)
		}
	}
	return MayShortcut(a, b, colliders, tol)
}
