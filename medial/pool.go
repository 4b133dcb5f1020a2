package medial

import (
	"math"

	"github.com/arl/pocketgen/geom2d"
)

type key struct{ x, y int64 }

type segRef struct {
	id    int
	other geom2d.Vec2
}

// pool is the segment pool described in spec §4.4: each MAT segment
// endpoint is registered, keyed by coordinates quantised to
// general_tolerance, only when that endpoint is passable. Each segment
// carries an id so that, once traversed from one end, pull at
// the far end does not re-offer the same segment back the way the
// traversal came.
type pool struct {
	tol       float64
	adjacency map[key][]segRef
	consumed  map[int]bool
	mic       map[key]float64
	point     map[key]geom2d.Vec2
	// keyOrder records each distinct key in first-registration order, so
	// root selection can iterate deterministically instead of ranging the
	// (randomly ordered) maps above.
	keyOrder []key
	nextID   int
}

func newPool(tol float64) *pool {
	return &pool{
		tol:       tol,
		adjacency: make(map[key][]segRef),
		consumed:  make(map[int]bool),
		mic:       make(map[key]float64),
		point:     make(map[key]geom2d.Vec2),
	}
}

func (p *pool) quant(v geom2d.Vec2) key {
	return key{
		x: int64(math.Round(v.X / p.tol)),
		y: int64(math.Round(v.Y / p.tol)),
	}
}

// addSegment registers a MAT segment's two endpoints, one adjacency entry
// per side that is individually passable (mic1/mic2 already compared
// against the passability threshold by the caller).
func (p *pool) addSegment(p1, p2 geom2d.Vec2, mic1, mic2 float64, passable1, passable2 bool) {
	id := p.nextID
	p.nextID++
	if passable1 {
		p.register(p1, p2, mic1, id)
	}
	if passable2 {
		p.register(p2, p1, mic2, id)
	}
}

func (p *pool) register(v, other geom2d.Vec2, mic float64, id int) {
	k := p.quant(v)
	p.adjacency[k] = append(p.adjacency[k], segRef{id: id, other: other})
	if cur, ok := p.mic[k]; !ok || mic > cur {
		p.mic[k] = mic
	}
	if _, ok := p.point[k]; !ok {
		p.point[k] = v
		p.keyOrder = append(p.keyOrder, k)
	}
}

// pull returns the other endpoint of every segment incident to v that has
// not yet been traversed, and marks those segments consumed so neither
// this nor the opposite endpoint offers them again.
func (p *pool) pull(v geom2d.Vec2) []geom2d.Vec2 {
	k := p.quant(v)
	var out []geom2d.Vec2
	for _, ref := range p.adjacency[k] {
		if p.consumed[ref.id] {
			continue
		}
		p.consumed[ref.id] = true
		out = append(out, ref.other)
	}
	return out
}

// maxMICPoint returns the registered passable point with the greatest MIC
// radius, used for automatic root selection. Iterates keyOrder rather than
// ranging the mic/point maps directly so that an exact MIC tie (e.g. two
// points symmetric across an island) resolves the same way on every run:
// the point that sorts first by coordinates wins.
func (p *pool) maxMICPoint() (geom2d.Vec2, bool) {
	var bestKey key
	best := -1.0
	found := false
	for _, k := range p.keyOrder {
		m := p.mic[k]
		if !found || m > best || (m == best && lessKey(p.point[k], p.point[bestKey])) {
			best, bestKey, found = m, k, true
		}
	}
	if !found {
		return geom2d.Vec2{}, false
	}
	return p.point[bestKey], true
}

// nearest returns the registered passable point closest to target for
// which admissible(point) holds, used by the user start-point root
// variant's straight-line reachability requirement. Iterates keyOrder for
// the same deterministic-tie-break reason as maxMICPoint.
func (p *pool) nearest(target geom2d.Vec2, admissible func(geom2d.Vec2) bool) (geom2d.Vec2, bool) {
	var best geom2d.Vec2
	bestD := math.MaxFloat64
	found := false
	for _, k := range p.keyOrder {
		pt := p.point[k]
		if !admissible(pt) {
			continue
		}
		if d := pt.Dist2(target); !found || d < bestD || (d == bestD && lessKey(pt, best)) {
			best, bestD, found = pt, d, true
		}
	}
	return best, found
}

// lessKey orders two points by X then Y, the tie-break coordinate order
// used wherever root selection must pick deterministically between two
// equally-good candidates.
func lessKey(a, b geom2d.Vec2) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
