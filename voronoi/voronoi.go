// Package voronoi implements the default model.VoronoiEdger: for each
// site, the Voronoi cell is the bounding box clipped by the half-plane
// perpendicular bisector to every other site, built with repeated
// Sutherland-Hodgman clipping rather than a sweep-line algorithm — grounded
// on the half-plane-intersection approach used for Voronoi cell
// construction elsewhere in the retrieved corpus, adapted here to
// geom2d's own convex-polygon clipping instead of a 3D-oriented mesh
// library.
package voronoi

import "github.com/arl/pocketgen/geom2d"

// Generator is the default model.VoronoiEdger implementation. The zero
// value is ready to use.
type Generator struct{}

// Generate returns, for every site (xs[i], ys[i]), the edges of its
// Voronoi cell clipped to bounds, as unordered segments. Cells sharing a
// boundary each emit their own copy of that edge; callers filtering edges
// by region membership do not need them deduplicated.
func (Generator) Generate(xs, ys []float64, bounds geom2d.Rect) []geom2d.Segment2 {
	n := len(xs)
	sites := make([]geom2d.Vec2, n)
	for i := range xs {
		sites[i] = geom2d.Vec2{X: xs[i], Y: ys[i]}
	}

	var out []geom2d.Segment2
	for i, c := range sites {
		poly := rectPolygon(bounds)
		for j, other := range sites {
			if i == j {
				continue
			}
			mid := c.Add(other).Scale(0.5)
			normal := other.Sub(c).Normalize()
			if normal.Len2() < 1e-18 {
				continue // coincident sites: bisector undefined, skip.
			}
			poly = clipHalfPlane(poly, normal, normal.Dot(mid))
			if len(poly) == 0 {
				break
			}
		}
		for k := range poly {
			p1 := poly[k]
			p2 := poly[(k+1)%len(poly)]
			if p1.Dist(p2) < 1e-12 {
				continue
			}
			out = append(out, geom2d.Segment2{P1: p1, P2: p2})
		}
	}
	return out
}

func rectPolygon(r geom2d.Rect) []geom2d.Vec2 {
	return []geom2d.Vec2{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// clipHalfPlane returns poly intersected with the half-plane
// {p : normal.Dot(p) <= max}, via Sutherland-Hodgman clipping against a
// single edge.
func clipHalfPlane(poly []geom2d.Vec2, normal geom2d.Vec2, max float64) []geom2d.Vec2 {
	if len(poly) == 0 {
		return poly
	}
	n := len(poly)
	var out []geom2d.Vec2
	for i := 0; i < n; i++ {
		cur := poly[i]
		next := poly[(i+1)%n]
		curIn := normal.Dot(cur) <= max+1e-9
		nextIn := normal.Dot(next) <= max+1e-9
		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			denom := normal.Dot(next) - normal.Dot(cur)
			t := (max - normal.Dot(cur)) / denom
			out = append(out, geom2d.Lerp(cur, next, t))
		}
	}
	return out
}
