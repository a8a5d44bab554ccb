package config

import "github.com/vovakirdan/skyhop/internal/core"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// HazardChance returns the bomb probability for a new platform.
func (d *DifficultyManager) HazardChance(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return core.ClampF(base+level*d.cfg.Scaling.HazardIncrease, 0.0, 1.0)
}

// MovingChance returns the moving-platform probability once moving platforms are unlocked.
func (d *DifficultyManager) MovingChance(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return core.ClampF(base+level*d.cfg.Scaling.MovingIncrease, 0.0, 1.0)
}
