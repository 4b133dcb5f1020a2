// Package model holds the pocket toolpath generator's shared data model
// (Region, MAT segments, Branch, Slice) and the collaborator interfaces the
// core algorithm depends on but does not implement itself (polyline/arc
// predicates, the Voronoi edge generator, the flat-spiral sampler, and
// logging) — grounded on the teacher's split between its core packages and
// the InputGeom/meshloaderobj collaborators it accepts from callers.
package model

import "github.com/arl/pocketgen/geom2d"

// Polyliner is the collaborator interface for a closed outer or island
// boundary. Implementations may mix line and arc segments.
type Polyliner interface {
	GetPerimeter() float64
	NumSegments() int
	GetSegment(i int) Segment
	PointInPolyline(p geom2d.Vec2, tol float64) bool
	LineIntersections(p1, p2 geom2d.Vec2, tol float64) []geom2d.Vec2
	ArcFit(tol float64) geom2d.Polyline
	ParametricPoint(u float64) geom2d.Vec2
}

// Segment is one edge of a Polyliner: either a line (Arc == nil) or an arc.
type Segment struct {
	P1, P2 geom2d.Vec2
	Arc    *Arcer
}

// Arcer is the collaborator interface for a single arc segment of a
// boundary polyline.
type Arcer interface {
	Center() geom2d.Vec2
	Radius() float64
	Start() float64
	Sweep() float64
	P1() geom2d.Vec2
	GetExtrema() []float64
	NearestPoint(p geom2d.Vec2) (geom2d.Vec2, float64)
	LineIntersect(a, b geom2d.Vec2) []geom2d.Vec2
}

// VoronoiEdger is the black-box Voronoi edge generator: given sample point
// coordinates and a bounding box, it returns unordered line segments.
type VoronoiEdger interface {
	Generate(xs, ys []float64, bounds geom2d.Rect) []geom2d.Segment2
}

// SpiralGenerator builds the flat Archimedean entry spiral.
type SpiralGenerator interface {
	FlatSpiral(center, start geom2d.Vec2, pitch float64, dir geom2d.Direction) geom2d.Polyline
}

// Logger is the host logging collaborator: log/warn/err, exactly as listed
// in the external interfaces section of the spec.
type Logger interface {
	Logf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errf(format string, args ...interface{})
}

// NopLogger discards every message; the zero value is ready to use.
type NopLogger struct{}

func (NopLogger) Logf(string, ...interface{})  {}
func (NopLogger) Warnf(string, ...interface{}) {}
func (NopLogger) Errf(string, ...interface{})  {}
