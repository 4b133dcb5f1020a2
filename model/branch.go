package model

import (
	assert "github.com/aurelien-rainone/assertgo"
	"github.com/arl/pocketgen/geom2d"
)

// Curve is a polyline of MAT points with arc-length parameterization,
// underlying a Branch.
type Curve struct {
	Points []geom2d.Vec2
	cum    []float64 // cumulative length up to Points[i], cum[0] == 0
}

// NewCurve builds a Curve from at least two points.
func NewCurve(points []geom2d.Vec2) Curve {
	assert.True(len(points) >= 2, "branch curve must have at least two points")
	c := Curve{Points: points, cum: make([]float64, len(points))}
	for i := 1; i < len(points); i++ {
		c.cum[i] = c.cum[i-1] + points[i-1].Dist(points[i])
	}
	return c
}

// Append extends the curve with an additional point.
func (c *Curve) Append(p geom2d.Vec2) {
	last := c.cum[len(c.cum)-1]
	prev := c.Points[len(c.Points)-1]
	c.Points = append(c.Points, p)
	c.cum = append(c.cum, last+prev.Dist(p))
}

// Start returns the curve's first point.
func (c Curve) Start() geom2d.Vec2 { return c.Points[0] }

// End returns the curve's last point.
func (c Curve) End() geom2d.Vec2 { return c.Points[len(c.Points)-1] }

// Length returns the total arc length of the curve.
func (c Curve) Length() float64 { return c.cum[len(c.cum)-1] }

// ParametricPt returns the point at normalized arc-length parameter u in
// [0,1] along the curve (Get_parametric_pt).
func (c Curve) ParametricPt(u float64) geom2d.Vec2 {
	if u <= 0 {
		return c.Start()
	}
	if u >= 1 {
		return c.End()
	}
	target := u * c.Length()
	for i := 1; i < len(c.cum); i++ {
		if c.cum[i] >= target {
			segLen := c.cum[i] - c.cum[i-1]
			if segLen < 1e-15 {
				return c.Points[i]
			}
			t := (target - c.cum[i-1]) / segLen
			return geom2d.Lerp(c.Points[i-1], c.Points[i], t)
		}
	}
	return c.End()
}

// ParamAtPoint returns the normalized arc-length parameter nearest to the
// point closest to p among the curve's sampled points — used to seed the
// binary search's "left" bound from an already-placed slice center.
func (c Curve) ParamAtPoint(p geom2d.Vec2) float64 {
	best := 0
	bestD := p.Dist2(c.Points[0])
	for i, q := range c.Points {
		if d := p.Dist2(q); d < bestD {
			bestD = d
			best = i
		}
	}
	if c.Length() < 1e-15 {
		return 0
	}
	return c.cum[best] / c.Length()
}

// Branch is a node in the medial tree: a contiguous corridor carrying an
// ordered list of slices. Children are kept sorted by ascending deep
// distance so shorter sub-trees are visited first (component D/F).
type Branch struct {
	Curve    Curve
	Parent   *Branch
	Children []*Branch
	Slices   []*Slice

	// EntryConnector is the branch-entry connector computed when the first
	// slice is placed on a non-root branch (nil for the root branch, and
	// nil if the branch has no slices yet).
	EntryConnector *geom2d.Polyline

	deepDistance float64
	deepValid    bool
}

// DeepDistance returns the total curve length of the subtree rooted at b
// (b's own curve plus every descendant's), memoized after first
// computation — the tree is built once and never mutated afterward.
func (b *Branch) DeepDistance() float64 {
	if b.deepValid {
		return b.deepDistance
	}
	d := b.Curve.Length()
	for _, c := range b.Children {
		d += c.DeepDistance()
	}
	b.deepDistance = d
	b.deepValid = true
	return d
}

// IsRoot reports whether b has no parent.
func (b *Branch) IsRoot() bool { return b.Parent == nil }
