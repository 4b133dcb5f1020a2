package geom2d

// Rect is an axis-aligned bounding box, specialized to 2D float64 from the
// well-formed-rectangle idiom of gogeo's f32/d3.Rectangle: Min/Max pair with
// canonicalizing constructors, not a raw (origin, size) pair.
type Rect struct {
	Min, Max Vec2
}

// RectFromPoints returns the smallest well-formed Rect containing p and q.
func RectFromPoints(p, q Vec2) Rect {
	r := Rect{Min: p, Max: p}
	r = r.ExpandToContain(q)
	return r
}

// RectFromCircle returns the smallest Rect containing the disc of center c
// and radius rad.
func RectFromCircle(c Vec2, rad float64) Rect {
	return Rect{
		Min: Vec2{c.X - rad, c.Y - rad},
		Max: Vec2{c.X + rad, c.Y + rad},
	}
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// ExpandToContain returns r enlarged, if necessary, to contain p.
func (r Rect) ExpandToContain(p Vec2) Rect {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

// Union returns the smallest Rect containing both r and s.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		Min: Vec2{min(r.Min.X, s.Min.X), min(r.Min.Y, s.Min.Y)},
		Max: Vec2{max(r.Max.X, s.Max.X), max(r.Max.Y, s.Max.Y)},
	}
}

// Inset returns r shrunk by n on every side (or grown, if n is negative).
func (r Rect) Inset(n float64) Rect {
	if r.Max.X-r.Min.X < 2*n {
		mid := (r.Min.X + r.Max.X) / 2
		r.Min.X, r.Max.X = mid, mid
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Max.Y-r.Min.Y < 2*n {
		mid := (r.Min.Y + r.Max.Y) / 2
		r.Min.Y, r.Max.Y = mid, mid
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}

// Overlaps reports whether r and s share any point.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Contains reports whether p lies within r (Min inclusive, Max exclusive).
func (r Rect) Contains(p Vec2) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
