package model

import "github.com/arl/pocketgen/geom2d"

// MATSegment is a line segment surviving the medial-axis sampling and
// filtering pass (component C): both endpoints lie strictly inside the
// region and, optionally, the segment does not cross any boundary.
type MATSegment struct {
	P1, P2 geom2d.Vec2
}

// Length returns the Euclidean length of the segment.
func (s MATSegment) Length() float64 { return s.P1.Dist(s.P2) }
