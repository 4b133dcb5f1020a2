package model

import "github.com/arl/pocketgen/geom2d"

// Ball is the inscribed circle at a slice's center; its radius equals the
// MIC radius there.
type Ball struct {
	Center geom2d.Vec2
	Radius float64
}

// Dist returns the signed distance between two balls: negative when one
// ball lies inside the other (per spec §3, Slice.Dist).
func (b Ball) Dist(other Ball) float64 {
	d := b.Center.Dist(other.Center)
	if d < abs64(b.Radius-other.Radius) {
		// one ball contains the other: negative "inside" distance.
		return d - (b.Radius + other.Radius)
	}
	return d - b.Radius - other.Radius
}

// Overlaps reports whether b and other intersect (non-empty boundary
// intersection or one strictly contains the other's center region).
func (b Ball) Overlaps(other Ball) bool {
	d := b.Center.Dist(other.Center)
	return d < b.Radius+other.Radius
}

func abs64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Slice is a partial annular cut: one or more circular segments swept by
// the cutter, bounded in radial engagement against previously cut material.
type Slice struct {
	Ball   Ball
	Parent *Slice

	// Segments holds the arcs making up this slice. A slice with more than
	// one arc segment is "refined"; the chords joining its segments are not
	// stored here but added by the stitcher when the slice is emitted.
	Segments []geom2d.Piece

	Start, End geom2d.Vec2
	Dir        geom2d.Direction

	MaxEngagement float64
	Dist          float64 // signed distance to Parent's ball
}

// Refined reports whether the slice's sweep was split into more than one
// arc by Refine.
func (s *Slice) Refined() bool {
	n := 0
	for _, p := range s.Segments {
		if p.Kind == geom2d.PieceArc {
			n++
		}
	}
	return n > 1
}

// Ancestors returns the chain of slices from s up to (and including) the
// root slice, s first.
func (s *Slice) Ancestors() []*Slice {
	var out []*Slice
	for cur := s; cur != nil; cur = cur.Parent {
		out = append(out, cur)
	}
	return out
}

// LCA returns the least common ancestor of a and b in the slice parent
// chain, or nil if they belong to different trees.
func LCA(a, b *Slice) *Slice {
	ancestorsA := a.Ancestors()
	idx := make(map[*Slice]int, len(ancestorsA))
	for i, s := range ancestorsA {
		idx[s] = i
	}
	for cur := b; cur != nil; cur = cur.Parent {
		if _, ok := idx[cur]; ok {
			return cur
		}
	}
	return nil
}

// PathToAncestor returns the chain of slices strictly between s and anc
// (exclusive of both), walking from s upward.
func PathToAncestor(s, anc *Slice) []*Slice {
	if s == anc {
		return nil
	}
	var out []*Slice
	for cur := s.Parent; cur != nil && cur != anc; cur = cur.Parent {
		out = append(out, cur)
	}
	return out
}
