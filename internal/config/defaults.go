package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default jumper configuration.
// It mirrors defaults/jumper.yaml and is used when the embedded YAML cannot be parsed.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: JumperWorld{
			Width:           600,
			Height:          800,
			ScrollThreshold: 10,
			MaxPlatforms:    20,
			BackgroundWrap:  600,
			GroundOffset:    40,
		},
		Physics: JumperPhysics{
			Gravity:          1,
			JumpVelocity:     -20,
			MoveSpeed:        10,
			LandingTolerance: 10,
		},
		Player: JumperPlayer{
			Width:       30,
			Height:      50,
			StartOffset: 150,
			DoubleJump:  true,
		},
		Platforms: JumperPlatforms{
			Height:          20,
			MinWidth:        30,
			MaxWidth:        50,
			MinGap:          60,
			MaxGap:          90,
			EdgeMargin:      0.1,
			SeedMargin:      50,
			SeedCount:       5,
			MinSpeed:        1,
			MaxSpeed:        2,
			ReverseAfter:    100,
			MovingScoreGate: 1000,
			MovingChance:    0.5,
			SeedMovingRate:  0.5,
		},
		Pickups: JumperPickups{
			CoinChance:     0.7,
			BombChance:     0.3,
			SeedBombChance: 0.1,
			CoinOffset:     30,
			BombOffset:     20,
			CoinValue:      100,
			CoinSize:       20,
			BombSize:       24,
			BombsPatrol:    true,
			BombMinSpeed:   1,
			BombMaxSpeed:   2,
		},
		Animation: JumperAnimation{
			IdleFrames:       1,
			DoubleJumpFrames: 5,
			HitFrames:        7,
			CoinFrames:       3,
			BombFrames:       1,
			PlayerStep:       0.2,
			PickupStep:       0.25,
		},
		Session: JumperSession{
			HitDuration: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "jumper", "jumper_classic":
		return defaultJumperYAML
	default:
		return nil
	}
}
