package config

import "math"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressionScore = "score"
	ProgressionNone  = "none"
)

// DifficultyManager maps cumulative score onto a difficulty level. The
// level starts at initial_level and reaches 1 at progression.max_at.
type DifficultyManager struct {
	initial float64
	maxAt   float64
	grows   bool
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	maxAt := float64(cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return &DifficultyManager{
		initial: clampF(cfg.InitialLevel, 0.0, 1.0),
		maxAt:   maxAt,
		grows:   cfg.Enabled && cfg.Progression.Type == ProgressionScore,
	}
}

// Grows reports whether the level rises with score.
func (d *DifficultyManager) Grows() bool {
	return d.grows
}

// Progress returns the share of max_at reached, in [0, 1]. It stays 0
// when progression is off.
func (d *DifficultyManager) Progress(score int) float64 {
	if !d.grows {
		return 0
	}
	return clampF(float64(score)/d.maxAt, 0.0, 1.0)
}

// Level returns the difficulty level in [initial_level, 1] for a score.
func (d *DifficultyManager) Level(score int) float64 {
	return d.initial + d.Progress(score)*(1.0-d.initial)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
