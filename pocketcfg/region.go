package pocketcfg

import (
	"fmt"
	"os"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
	"github.com/arl/pocketgen/polyline"
	yaml "gopkg.in/yaml.v2"
)

// point is the YAML-friendly [x, y] pair used by RegionFile.
type point [2]float64

func (p point) vec() geom2d.Vec2 { return geom2d.Vec2{X: p[0], Y: p[1]} }

// RegionFile is the simple polygon description the CLI's run subcommand
// loads a pocket boundary from: one outer closed polygon plus zero or more
// island polygons, every polygon a plain point list (arcs are not
// representable in this format — only the line-segment subset of
// model.Polyliner is needed to describe raw stock outlines).
type RegionFile struct {
	Outer   []point   `yaml:"outer"`
	Islands [][]point `yaml:"islands,omitempty"`
}

// LoadRegion reads and parses a RegionFile, converting it into a
// model.Region backed by package polyline.
func LoadRegion(path string) (model.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Region{}, err
	}
	var rf RegionFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return model.Region{}, err
	}
	if len(rf.Outer) < 3 {
		return model.Region{}, fmt.Errorf("pocketcfg: outer boundary needs at least 3 points, got %d", len(rf.Outer))
	}

	region := model.Region{Outer: polyline.FromPoints(toVecs(rf.Outer))}
	for _, isl := range rf.Islands {
		if len(isl) < 3 {
			return model.Region{}, fmt.Errorf("pocketcfg: island boundary needs at least 3 points, got %d", len(isl))
		}
		region.Islands = append(region.Islands, polyline.FromPoints(toVecs(isl)))
	}
	return region, nil
}

func toVecs(pts []point) []geom2d.Vec2 {
	out := make([]geom2d.Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.vec()
	}
	return out
}
