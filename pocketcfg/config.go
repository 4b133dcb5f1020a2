// Package pocketcfg provides a YAML-loadable mirror of model.Options, in
// the same spirit as the teacher's sample/solomesh.Settings: a plain struct
// of build parameters with a defaults constructor, read and written to disk
// by the CLI's config/run subcommands.
package pocketcfg

import (
	"os"

	"github.com/arl/pocketgen/geom2d"
	"github.com/arl/pocketgen/model"
	yaml "gopkg.in/yaml.v2"
)

// Config mirrors model.Options field-for-field, using YAML-friendly names
// and a string encoding for MillDirection/EmitOptions so the file stays
// human-editable.
type Config struct {
	CutterDiameter float64 `yaml:"cutter_diameter"`
	GeneralTol     float64 `yaml:"general_tolerance"`
	Margin         float64 `yaml:"margin"`

	MaxEngagement float64 `yaml:"max_engagement"`
	MinEngagement float64 `yaml:"min_engagement"`

	SegmentDeratingK float64 `yaml:"segment_derating_k"`
	EngagementTol    float64 `yaml:"engagement_tolerance"`

	StartPointX *float64 `yaml:"start_point_x,omitempty"`
	StartPointY *float64 `yaml:"start_point_y,omitempty"`

	MillDirection string   `yaml:"mill_direction"` // "cw", "ccw", "unknown"
	EmitOptions   []string `yaml:"emit_options"`
}

// DefaultConfig returns a Config populated with the spec's documented
// defaults for a cutter of the given diameter.
func DefaultConfig(cutterDiameter float64) Config {
	return Config{
		CutterDiameter:   cutterDiameter,
		GeneralTol:       1e-3,
		Margin:           0,
		MaxEngagement:    1.2,
		MinEngagement:    0.3,
		SegmentDeratingK: 0.5,
		EngagementTol:    1e-3,
		MillDirection:    "cw",
		EmitOptions:      []string{"segment", "branch_entry", "chord", "spiral", "return_to_base"},
	}
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save marshals c as YAML and writes it to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var emitBits = map[string]model.EmitOptions{
	"segment":        model.EmitSegment,
	"branch_entry":   model.EmitBranchEntry,
	"chord":          model.EmitChord,
	"smooth_chord":   model.EmitSmoothChord,
	"segment_chord":  model.EmitSegmentChord,
	"spiral":         model.EmitSpiral,
	"return_to_base": model.EmitReturnToBase,
	"debug_mat":      model.EmitDebugMAT,
}

var directions = map[string]geom2d.Direction{
	"cw":      geom2d.CW,
	"ccw":     geom2d.CCW,
	"unknown": geom2d.Unknown,
}

// ToOptions converts c into a model.Options, ready for Generator.Run. The
// Voronoi/Spiral/Log collaborators are left nil; Generator.Run fills them
// with its defaults unless the caller sets them.
func (c Config) ToOptions() model.Options {
	opts := model.Options{
		CutterDiameter:   c.CutterDiameter,
		GeneralTol:       c.GeneralTol,
		Margin:           c.Margin,
		MaxEngagement:    c.MaxEngagement,
		MinEngagement:    c.MinEngagement,
		SegmentDeratingK: c.SegmentDeratingK,
		EngagementTol:    c.EngagementTol,
		MillDirection:    directions[c.MillDirection],
	}
	if c.StartPointX != nil && c.StartPointY != nil {
		opts.StartPoint = &geom2d.Vec2{X: *c.StartPointX, Y: *c.StartPointY}
	}
	for _, name := range c.EmitOptions {
		opts.EmitOptions |= emitBits[name]
	}
	return opts
}
