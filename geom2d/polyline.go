package geom2d

// PieceKind distinguishes the two concrete shapes a Piece can hold. There is
// no open hierarchy here, so a tagged variant (as opposed to an interface)
// keeps allocation and traversal cheap — grounded on the teacher's own
// preference for small closed enums over polymorphic dispatch (DtStatus,
// LogCategory).
type PieceKind int

const (
	PieceLine PieceKind = iota
	PieceArc
)

// Piece is one element of a Polyline: either a straight segment or a
// circular arc.
type Piece struct {
	Kind PieceKind
	P1   Vec2 // line endpoints, or arc start point
	P2   Vec2 // line endpoint only
	Arc  Arc  // valid iff Kind == PieceArc
}

// Line returns a straight Piece from p1 to p2.
func Line(p1, p2 Vec2) Piece { return Piece{Kind: PieceLine, P1: p1, P2: p2} }

// ArcPiece returns a Piece wrapping a.
func ArcPiece(a Arc) Piece { return Piece{Kind: PieceArc, P1: a.PointAt(0), Arc: a} }

// Start returns the first point of the piece.
func (p Piece) Start() Vec2 {
	if p.Kind == PieceArc {
		return p.Arc.PointAt(0)
	}
	return p.P1
}

// End returns the last point of the piece.
func (p Piece) End() Vec2 {
	if p.Kind == PieceArc {
		return p.Arc.PointAt(1)
	}
	return p.P2
}

// Length returns the geometric length of the piece.
func (p Piece) Length() float64 {
	if p.Kind == PieceArc {
		return p.Arc.Length()
	}
	return p.P1.Dist(p.P2)
}

// Polyline is an ordered sequence of line/arc pieces, forming the output
// toolpath's element type and the underlying representation returned by
// biarc construction and spiral/spline sampling.
type Polyline struct {
	Pieces []Piece
}

// Append adds pieces to the polyline, in order.
func (pl *Polyline) Append(pieces ...Piece) {
	pl.Pieces = append(pl.Pieces, pieces...)
}

// Start returns the first point of the polyline. Panics on an empty
// polyline — callers must not stitch zero-length path items.
func (pl Polyline) Start() Vec2 { return pl.Pieces[0].Start() }

// End returns the last point of the polyline.
func (pl Polyline) End() Vec2 { return pl.Pieces[len(pl.Pieces)-1].End() }

// Length returns the total length of the polyline.
func (pl Polyline) Length() float64 {
	var l float64
	for _, p := range pl.Pieces {
		l += p.Length()
	}
	return l
}
