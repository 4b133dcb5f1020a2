// Package spatial provides a bounding-box index over geom2d.Rect, used to
// register finished slices so that collision and shortcut queries can be
// answered without a linear scan. Boundary segments are not registered:
// MIC radius queries scan the region's boundaries directly. It is grounded on
// the node-splitting / bucket-at-leaf idiom of the teacher's BV-tree walk in
// detour/mesh.go, adapted from a static bulk-loaded tree to an
// incrementally-insertable quadtree since slices are registered one at a
// time as run() proceeds.
package spatial

import "github.com/arl/pocketgen/geom2d"

const (
	defaultMaxPerNode = 8
	defaultMaxDepth   = 16
)

// Item is an object registered in the index together with its bounding
// rectangle.
type Item struct {
	Bounds geom2d.Rect
	Value  interface{}
}

// Tree is a bounding-box quadtree. The zero value is not usable; create one
// with New.
type Tree struct {
	root       *node
	maxPerNode int
	maxDepth   int
}

type node struct {
	bounds   geom2d.Rect
	items    []Item
	children [4]*node // nil until split
	leaf     bool
}

// New creates an empty Tree covering bounds. Objects inserted outside
// bounds are still accepted (the root's item list grows) but will not
// benefit from spatial partitioning.
func New(bounds geom2d.Rect) *Tree {
	return &Tree{
		root:       &node{bounds: bounds, leaf: true},
		maxPerNode: defaultMaxPerNode,
		maxDepth:   defaultMaxDepth,
	}
}

// Insert registers obj under the given bounding rectangle. There is no
// delete operation — the index is built incrementally over the lifetime of
// a single run() and discarded afterwards.
func (t *Tree) Insert(bounds geom2d.Rect, obj interface{}) {
	t.root.insert(Item{Bounds: bounds, Value: obj}, 0, t.maxPerNode, t.maxDepth)
}

// Query returns every registered object whose bounding rectangle overlaps
// bounds.
func (t *Tree) Query(bounds geom2d.Rect) []interface{} {
	var out []interface{}
	t.root.query(bounds, &out)
	return out
}

func (n *node) insert(it Item, depth, maxPerNode, maxDepth int) {
	if n.leaf {
		n.items = append(n.items, it)
		if len(n.items) > maxPerNode && depth < maxDepth && !n.bounds.Empty() {
			n.split(maxPerNode, maxDepth, depth)
		}
		return
	}
	placed := false
	for _, c := range n.children {
		if in(it.Bounds, c.bounds) {
			c.insert(it, depth+1, maxPerNode, maxDepth)
			placed = true
			break
		}
	}
	if !placed {
		// straddles multiple quadrants (or this node's bounds): keep at
		// this level so Query still finds it via overlap testing.
		n.items = append(n.items, it)
	}
}

// In reports whether r fits entirely within s — a local helper kept next to
// the only call site that needs it.
func in(r, s geom2d.Rect) bool {
	return s.Min.X <= r.Min.X && r.Max.X <= s.Max.X &&
		s.Min.Y <= r.Min.Y && r.Max.Y <= s.Max.Y
}

func (n *node) split(maxPerNode, maxDepth, depth int) {
	c := n.bounds.Center()
	quads := [4]geom2d.Rect{
		{Min: geom2d.Vec2{X: n.bounds.Min.X, Y: n.bounds.Min.Y}, Max: geom2d.Vec2{X: c.X, Y: c.Y}},
		{Min: geom2d.Vec2{X: c.X, Y: n.bounds.Min.Y}, Max: geom2d.Vec2{X: n.bounds.Max.X, Y: c.Y}},
		{Min: geom2d.Vec2{X: n.bounds.Min.X, Y: c.Y}, Max: geom2d.Vec2{X: c.X, Y: n.bounds.Max.Y}},
		{Min: geom2d.Vec2{X: c.X, Y: c.Y}, Max: geom2d.Vec2{X: n.bounds.Max.X, Y: n.bounds.Max.Y}},
	}
	for i := range n.children {
		n.children[i] = &node{bounds: quads[i], leaf: true}
	}
	items := n.items
	n.items = nil
	n.leaf = false
	for _, it := range items {
		n.insert(it, depth, maxPerNode, maxDepth)
	}
}

func (n *node) query(bounds geom2d.Rect, out *[]interface{}) {
	if !n.bounds.Empty() && !n.bounds.Overlaps(bounds) && len(n.items) == 0 {
		return
	}
	for _, it := range n.items {
		if it.Bounds.Overlaps(bounds) {
			*out = append(*out, it.Value)
		}
	}
	if n.leaf {
		return
	}
	for _, c := range n.children {
		if c.bounds.Overlaps(bounds) {
			c.query(bounds, out)
		}
	}
}
