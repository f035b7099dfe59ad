package dash

import "time"

// Tuning collects the movement constants that used to be scattered literals.
// Values load from prefabs/tuning.yaml; zero fields fall back to defaults.
type Tuning struct {
	// CellSize is the requested navigation grid resolution, clamped by the
	// grid builder into [nav.MinCellSize, nav.MaxCellSize].
	CellSize float64
	// GlideEpsilon pulls the glide stop point back from the hit surface along
	// the normal so the agent never comes to rest in contact.
	GlideEpsilon float64
	// ArriveEpsilon is the distance below which a move counts as arrived.
	ArriveEpsilon float64
	// StallWindow / StallDistance: a route is stalled when net displacement
	// stays under StallDistance for StallWindow of continuous following.
	StallWindow   time.Duration
	StallDistance float64
	// MaxReplanSteps bounds smart-move re-planning before the controller
	// forces a direct tween to the goal.
	MaxReplanSteps int
	// MinSegmentDuration floors glide/tween segment durations.
	MinSegmentDuration time.Duration
	// SeparationMargin keeps separated points a little clear of the surface.
	SeparationMargin float64
}

func DefaultTuning() Tuning {
	return Tuning{
		CellSize:           32,
		GlideEpsilon:       2.0,
		ArriveEpsilon:      0.5,
		StallWindow:        300 * time.Millisecond,
		StallDistance:      1.0,
		MaxReplanSteps:     24,
		MinSegmentDuration: 60 * time.Millisecond,
		SeparationMargin:   0.5,
	}
}

// withDefaults fills zero fields from DefaultTuning.
func (t Tuning) withDefaults() Tuning {
	def := DefaultTuning()
	if t.CellSize <= 0 {
		t.CellSize = def.CellSize
	}
	if t.GlideEpsilon <= 0 {
		t.GlideEpsilon = def.GlideEpsilon
	}
	if t.ArriveEpsilon <= 0 {
		t.ArriveEpsilon = def.ArriveEpsilon
	}
	if t.StallWindow <= 0 {
		t.StallWindow = def.StallWindow
	}
	if t.StallDistance <= 0 {
		t.StallDistance = def.StallDistance
	}
	if t.MaxReplanSteps <= 0 {
		t.MaxReplanSteps = def.MaxReplanSteps
	}
	if t.MinSegmentDuration <= 0 {
		t.MinSegmentDuration = def.MinSegmentDuration
	}
	if t.SeparationMargin <= 0 {
		t.SeparationMargin = def.SeparationMargin
	}
	return t
}
