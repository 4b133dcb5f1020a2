package model

import "github.com/arl/pocketgen/geom2d"

// ItemKind tags the role a PathItem plays in the emitted toolpath.
type ItemKind int

const (
	ItemSpiral ItemKind = iota
	ItemEntry
	ItemSegment
	ItemSegmentChord
	ItemChord
	ItemSmoothChord
	ItemBranchEntry
	ItemReturnToBase
	ItemDebugMAT
)

func (k ItemKind) String() string {
	switch k {
	case ItemSpiral:
		return "SPIRAL"
	case ItemEntry:
		return "ENTRY"
	case ItemSegment:
		return "SEGMENT"
	case ItemSegmentChord:
		return "SEGMENT_CHORD"
	case ItemChord:
		return "CHORD"
	case ItemSmoothChord:
		return "SMOOTH_CHORD"
	case ItemBranchEntry:
		return "BRANCH_ENTRY"
	case ItemReturnToBase:
		return "RETURN_TO_BASE"
	case ItemDebugMAT:
		return "DEBUG_MAT"
	default:
		return "UNKNOWN"
	}
}

// PathItem is one tagged element of the emitted toolpath.
type PathItem struct {
	Kind ItemKind
	Path geom2d.Polyline
}

// Path is the ordered output of a pocket clearing run.
type Path struct {
	Items []PathItem
}

// Length returns the total geometric length of every item in the path.
func (p Path) Length() float64 {
	var l float64
	for _, it := range p.Items {
		l += it.Path.Length()
	}
	return l
}

// WithoutDebug returns a copy of p with every ItemDebugMAT item removed,
// used to check the "toggling DEBUG_MAT only adds/removes those items"
// testable property.
func (p Path) WithoutDebug() Path {
	out := Path{Items: make([]PathItem, 0, len(p.Items))}
	for _, it := range p.Items {
		if it.Kind != ItemDebugMAT {
			out.Items = append(out.Items, it)
		}
	}
	return out
}
