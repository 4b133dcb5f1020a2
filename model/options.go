package model

import "github.com/arl/pocketgen/geom2d"

// EmitOptions is a bitmask over the closed set of path-item kinds the
// stitcher may emit, following the same flag-set-with-bitwise-union idiom
// as the teacher's RaycastOptions / DtStraightPathOptions.
type EmitOptions uint32

const (
	EmitSegment EmitOptions = 1 << iota
	EmitBranchEntry
	EmitChord
	EmitSmoothChord
	EmitSegmentChord
	EmitSpiral
	EmitReturnToBase
	EmitDebugMAT

	// EmitDefault is a reasonable default selection: everything except
	// smooth chords, segment chords and the debug medial-axis overlay.
	EmitDefault = EmitSegment | EmitBranchEntry | EmitChord | EmitSpiral | EmitReturnToBase
)

// Has reports whether all bits of want are set in o.
func (o EmitOptions) Has(want EmitOptions) bool { return o&want == want }

// Options configures a single pocket clearing run.
type Options struct {
	CutterDiameter float64
	GeneralTol     float64 // general_tolerance
	Margin         float64

	MaxEngagement float64
	MinEngagement float64

	// SegmentDeratingK derates Max_engagement when a slice's sweep is split
	// into multiple segments by Refine.
	SegmentDeratingK float64

	// EngagementTol is the relative tolerance used by the slice placer's
	// binary search (engagement_tolerance in the spec, default 0.1%).
	EngagementTol float64

	StartPoint    *geom2d.Vec2
	MillDirection geom2d.Direction
	EmitOptions   EmitOptions

	// RejectCrossingEdges enables the optional MAT-filter pass that drops
	// edges whose interior crosses a region boundary (off by default, per
	// spec §4.3 step 3).
	RejectCrossingEdges bool

	Voronoi VoronoiEdger
	Spiral  SpiralGenerator
	Log     Logger
}

// CutterRadius returns half of CutterDiameter.
func (o Options) CutterRadius() float64 { return o.CutterDiameter / 2 }

// MinPassableMIC is the smallest MIC radius still considered passable: 10%
// of the cutter radius.
func (o Options) MinPassableMIC() float64 { return 0.1 * o.CutterRadius() }

// DefaultOptions returns an Options populated with the spec's documented
// defaults. Voronoi/Spiral/Log are left nil; a Generator fills them with
// its default collaborators if unset.
func DefaultOptions(cutterDiameter float64) Options {
	return Options{
		CutterDiameter:   cutterDiameter,
		GeneralTol:       1e-3,
		Margin:           0,
		MaxEngagement:    1.2,
		MinEngagement:    0.3,
		SegmentDeratingK: 0.5,
		EngagementTol:    1e-3,
		MillDirection:    geom2d.CW,
		EmitOptions:      EmitDefault,
	}
}

// Validate applies the spec's §6 configuration-fault checks, returning a
// non-nil Status (DetailConfigFault) when two emission options are declared
// mutually exclusive or incompatible with MillDirection.
func (o Options) Validate() Status {
	if o.EmitOptions.Has(EmitChord) && o.EmitOptions.Has(EmitSmoothChord) {
		return NewStatus(StatusFailure, DetailConfigFault)
	}
	if o.EmitOptions.Has(EmitSmoothChord) && o.MillDirection == geom2d.Unknown {
		return NewStatus(StatusFailure, DetailConfigFault)
	}
	return StatusOK
}
