// Package stitch implements the path stitcher (component F): a
// depth-first traversal of the finished branch tree that emits ordered
// model.PathItem values gated by the configured emit-option bitmask.
package stitch

import (
	"github.com/arl/pocketgen/connect"
	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
)

// Run traverses root (children already sorted short-first by the tree
// builder) and returns the ordered path.
func Run(root *model.Branch, opts model.Options) model.Path {
	var path model.Path

	if opts.EmitOptions.Has(model.EmitSpiral) && opts.Spiral != nil && len(root.Slices) > 0 {
		rootSlice := root.Slices[0]
		spiralPitch := opts.MaxEngagement
		pl := opts.Spiral.FlatSpiral(rootSlice.Ball.Center, rootSlice.Start, spiralPitch, rootSlice.Dir)
		if len(pl.Pieces) > 0 {
			path.Items = append(path.Items, model.PathItem{Kind: model.ItemSpiral, Path: pl})
		}
	}

	var lastSlice *model.Slice
	var walk func(b *model.Branch)
	walk = func(b *model.Branch) {
		emitBranch(&path, b, opts)
		if len(b.Slices) > 0 {
			lastSlice = b.Slices[len(b.Slices)-1]
		}
		for _, c := range b.Children {
			walk(c)
		}
	}
	walk(root)

	if opts.EmitOptions.Has(model.EmitReturnToBase) && lastSlice != nil && len(root.Slices) > 0 {
		rootSlice := root.Slices[0]
		pl := connect.SwitchBranch(rootSlice, lastSlice, &rootSlice.Ball.Center, nil, opts.GeneralTol, nil)
		path.Items = append(path.Items, model.PathItem{Kind: model.ItemReturnToBase, Path: pl})
	}

	return path
}

func emitBranch(path *model.Path, b *model.Branch, opts model.Options) {
	if opts.EmitOptions.Has(model.EmitDebugMAT) {
		path.Items = append(path.Items, model.PathItem{Kind: model.ItemDebugMAT, Path: curveToPolyline(b.Curve)})
	}
	if b.EntryConnector != nil {
		path.Items = append(path.Items, model.PathItem{Kind: model.ItemBranchEntry, Path: *b.EntryConnector})
	}

	var last *model.Slice
	for _, s := range b.Slices {
		if last != nil {
			emitChord(path, last, s, opts)
		}
		if opts.EmitOptions.Has(model.EmitSegment) {
			emitSliceSegments(path, s, opts)
		}
		last = s
	}
}

func emitChord(path *model.Path, last, curr *model.Slice, opts model.Options) {
	switch {
	case opts.EmitOptions.Has(model.EmitSmoothChord):
		pl := connect.SwitchBranch(curr, last, nil, nil, opts.GeneralTol, nil)
		path.Items = append(path.Items, model.PathItem{Kind: model.ItemSmoothChord, Path: pl})
	case opts.EmitOptions.Has(model.EmitChord):
		var pl geom2d.Polyline
		pl.Append(geom2d.Line(last.End, curr.Start))
		path.Items = append(path.Items, model.PathItem{Kind: model.ItemChord, Path: pl})
	}
}

func emitSliceSegments(path *model.Path, s *model.Slice, opts model.Options) {
	if !s.Refined() || !opts.EmitOptions.Has(model.EmitSegmentChord) {
		var pl geom2d.Polyline
		pl.Append(s.Segments...)
		path.Items = append(path.Items, model.PathItem{Kind: model.ItemSegment, Path: pl})
		return
	}

	// refined slice with inter-segment chords requested: interleave a
	// straight chord between consecutive arc pieces.
	var pl geom2d.Polyline
	for i, seg := range s.Segments {
		if i > 0 {
			prev := s.Segments[i-1]
			pl.Append(geom2d.Line(prev.End(), seg.Start()))
		}
		pl.Append(seg)
	}
	path.Items = append(path.Items, model.PathItem{Kind: model.ItemSegmentChord, Path: pl})
}

func curveToPolyline(c model.Curve) geom2d.Polyline {
	var pl geom2d.Polyline
	for i := 1; i < len(c.Points); i++ {
		pl.Append(geom2d.Line(c.Points[i-1], c.Points[i]))
	}
	return pl
}
