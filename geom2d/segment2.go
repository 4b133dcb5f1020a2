package geom2d

// Segment2 is a bare undirected line segment, the shape returned by the
// Voronoi edge generator collaborator (spec §6): "an unordered line
// segment", with no notion of direction or arc.
type Segment2 struct {
	P1, P2 Vec2
}

// Length returns the Euclidean length of the segment.
func (s Segment2) Length() float64 { return s.P1.Dist(s.P2) }

// Bounds returns the segment's axis-aligned bounding box.
func (s Segment2) Bounds() Rect { return RectFromPoints(s.P1, s.P2) }
