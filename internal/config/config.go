// Package config provides YAML-based game configuration loading and
// difficulty management for the skyhop platform.
package config

import (
	"errors"
	"fmt"
)

// JumperConfig contains all configuration for the endless platform jumper.
// Distances are in world units of a World.Width x World.Height playfield;
// speeds are per tick.
type JumperConfig struct {
	World      JumperWorld      `yaml:"world"`
	Physics    JumperPhysics    `yaml:"physics"`
	Player     JumperPlayer     `yaml:"player"`
	Platforms  JumperPlatforms  `yaml:"platforms"`
	Pickups    JumperPickups    `yaml:"pickups"`
	Animation  JumperAnimation  `yaml:"animation"`
	Session    JumperSession    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumperWorld defines the logical playfield.
type JumperWorld struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	ScrollThreshold int `yaml:"scroll_threshold"` // Distance from the top that triggers scrolling
	MaxPlatforms    int `yaml:"max_platforms"`    // Platforms kept alive at all times
	BackgroundWrap  int `yaml:"background_wrap"`  // Background scroll period
	GroundOffset    int `yaml:"ground_offset"`    // Ground platform distance from the bottom
}

// JumperPhysics defines frame-based movement parameters.
type JumperPhysics struct {
	Gravity          int `yaml:"gravity"`
	JumpVelocity     int `yaml:"jump_velocity"` // Negative = up
	MoveSpeed        int `yaml:"move_speed"`
	LandingTolerance int `yaml:"landing_tolerance"`
}

// JumperPlayer defines the player's hitbox and abilities.
type JumperPlayer struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	StartOffset int  `yaml:"start_offset"` // Spawn center distance from the bottom
	DoubleJump  bool `yaml:"double_jump"`
}

// JumperPlatforms defines procedural platform generation.
type JumperPlatforms struct {
	Height          int     `yaml:"height"`
	MinWidth        int     `yaml:"min_width"`
	MaxWidth        int     `yaml:"max_width"`
	MinGap          int     `yaml:"min_gap"`
	MaxGap          int     `yaml:"max_gap"`
	EdgeMargin      float64 `yaml:"edge_margin"`   // Fraction of width kept clear on each side
	SeedMargin      int     `yaml:"seed_margin"`   // Side margin for the initial platforms
	SeedCount       int     `yaml:"seed_count"`    // Platforms placed above the ground at start
	MinSpeed        int     `yaml:"min_speed"`
	MaxSpeed        int     `yaml:"max_speed"`
	ReverseAfter    int     `yaml:"reverse_after"` // Ticks before a moving platform turns
	MovingScoreGate int     `yaml:"moving_score_gate"`
	MovingChance    float64 `yaml:"moving_chance"`
	SeedMovingRate  float64 `yaml:"seed_moving_chance"`
}

// JumperPickups defines coins and bombs.
type JumperPickups struct {
	CoinChance     float64 `yaml:"coin_chance"`
	BombChance     float64 `yaml:"bomb_chance"`
	SeedBombChance float64 `yaml:"seed_bomb_chance"`
	CoinOffset     int     `yaml:"coin_offset"` // Coin center height above the platform top
	BombOffset     int     `yaml:"bomb_offset"`
	CoinValue      int     `yaml:"coin_value"`
	CoinSize       int     `yaml:"coin_size"`
	BombSize       int     `yaml:"bomb_size"`
	BombsPatrol    bool    `yaml:"bombs_patrol"`
	BombMinSpeed   int     `yaml:"bomb_min_speed"`
	BombMaxSpeed   int     `yaml:"bomb_max_speed"`
}

// JumperAnimation defines frame-set sizes and cursor steps.
type JumperAnimation struct {
	IdleFrames       int     `yaml:"idle_frames"`
	DoubleJumpFrames int     `yaml:"double_jump_frames"`
	HitFrames        int     `yaml:"hit_frames"`
	CoinFrames       int     `yaml:"coin_frames"`
	BombFrames       int     `yaml:"bomb_frames"`
	PlayerStep       float64 `yaml:"player_step"`
	PickupStep       float64 `yaml:"pickup_step"`
}

// JumperSession defines session timing.
type JumperSession struct {
	HitDuration float64 `yaml:"hit_duration"` // Seconds of hit animation before game over
}

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid jumper config")

// Validate checks that the configuration describes a playable world.
// Empty animation frame sets are content errors and are rejected here.
func (c JumperConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, msg))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	check(c.World.MaxPlatforms > 0, "max_platforms must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Width <= c.World.Width, "player wider than the world")
	check(c.Platforms.MinWidth > 0 && c.Platforms.MinWidth <= c.Platforms.MaxWidth, "platform width range")
	check(c.Platforms.MinGap > 0 && c.Platforms.MinGap <= c.Platforms.MaxGap, "platform gap range")
	check(c.Platforms.MinSpeed > 0 && c.Platforms.MinSpeed <= c.Platforms.MaxSpeed, "platform speed range")
	check(c.Platforms.EdgeMargin >= 0 && c.Platforms.EdgeMargin < 0.5, "edge_margin must be in [0, 0.5)")
	check(c.Animation.IdleFrames > 0, "idle_frames must be positive")
	check(c.Animation.HitFrames > 0, "hit_frames must be positive")
	check(c.Animation.DoubleJumpFrames > 0, "double_jump_frames must be positive")
	check(c.Animation.CoinFrames > 0, "coin_frames must be positive")
	check(c.Animation.BombFrames > 0, "bomb_frames must be positive")
	check(c.Session.HitDuration >= 0, "hit_duration must not be negative")

	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	HazardIncrease float64 `yaml:"hazard_increase"` // Bomb chance added at max difficulty
	MovingIncrease float64 `yaml:"moving_increase"` // Moving-platform chance added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
