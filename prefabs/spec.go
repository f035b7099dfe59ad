package prefabs

import (
	"fmt"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomdash/dash"
	"github.com/milk9111/roomdash/geom"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ObstacleSpec struct {
	Shape  string  `yaml:"shape"` // "rect" or "circle"
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
}

// RoomSpec describes the static room layout: border margin inside the base
// resolution, the spawn point, and the obstacle list.
type RoomSpec struct {
	Name      string         `yaml:"name"`
	Margin    float64        `yaml:"margin"`
	Spawn     PointSpec      `yaml:"spawn"`
	Obstacles []ObstacleSpec `yaml:"obstacles"`
}

// BuildObstacles converts the spec entries to collision shapes, skipping
// entries with an unknown shape or degenerate extents.
func (s *RoomSpec) BuildObstacles() []geom.Obstacle {
	out := make([]geom.Obstacle, 0, len(s.Obstacles))
	for _, o := range s.Obstacles {
		center := cp.Vector{X: o.X, Y: o.Y}
		switch strings.ToLower(o.Shape) {
		case "rect", "rectangle":
			if o.Width > 0 && o.Height > 0 {
				out = append(out, geom.Rect(center, o.Width, o.Height))
			}
		case "circle":
			if o.Radius > 0 {
				out = append(out, geom.Circle(center, o.Radius))
			}
		}
	}
	return out
}

func LoadRoomSpec(filename string) (*RoomSpec, error) {
	spec, err := LoadSpec[RoomSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Margin < 0 {
		spec.Margin = 0
	}
	return &spec, nil
}

// PlayerSpec configures the dashing agent.
type PlayerSpec struct {
	Name            string  `yaml:"name"`
	Radius          float64 `yaml:"radius"`
	DashSpeed       float64 `yaml:"dash_speed"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// Speed is the effective dash speed after the upgrade multiplier.
func (s *PlayerSpec) Speed() float64 {
	m := s.SpeedMultiplier
	if m <= 0 {
		m = 1
	}
	return s.DashSpeed * m
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Radius <= 0 {
		spec.Radius = 12
	}
	if spec.DashSpeed <= 0 {
		spec.DashSpeed = 600
	}
	return &spec, nil
}

// TuningSpec mirrors dash.Tuning in YAML, durations in milliseconds.
// Zero fields fall back to the controller defaults.
type TuningSpec struct {
	CellSize         float64 `yaml:"cell_size"`
	GlideEpsilon     float64 `yaml:"glide_epsilon"`
	ArriveEpsilon    float64 `yaml:"arrive_epsilon"`
	StallWindowMS    int     `yaml:"stall_window_ms"`
	StallDistance    float64 `yaml:"stall_distance"`
	MaxReplanSteps   int     `yaml:"max_replan_steps"`
	MinSegmentMS     int     `yaml:"min_segment_ms"`
	SeparationMargin float64 `yaml:"separation_margin"`
}

// Tuning converts the YAML values to controller tuning, leaving zero fields
// for withDefaults to fill.
func (s *TuningSpec) Tuning() dash.Tuning {
	return dash.Tuning{
		CellSize:           s.CellSize,
		GlideEpsilon:       s.GlideEpsilon,
		ArriveEpsilon:      s.ArriveEpsilon,
		StallWindow:        time.Duration(s.StallWindowMS) * time.Millisecond,
		StallDistance:      s.StallDistance,
		MaxReplanSteps:     s.MaxReplanSteps,
		MinSegmentDuration: time.Duration(s.MinSegmentMS) * time.Millisecond,
		SeparationMargin:   s.SeparationMargin,
	}
}

func LoadTuningSpec() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
