// Package jumper implements an endless vertical platformer.
// The player hops between procedurally generated platforms, collects coins
// and avoids bombs. Score grows with the distance the world scrolls.
package jumper

import (
	"fmt"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// Game adapts a World to the registry.Game interface.
type Game struct {
	id      string
	title   string
	classic bool // Single jump, static bombs

	cfg        config.JumperConfig
	difficulty *config.DifficultyManager
	world      *World
	runtime    core.RuntimeConfig

	paused     bool
	pauseLatch bool
	highScore  int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// ConfigPath returns the custom config path, or "" when none was set.
func ConfigPath() string {
	return configPath
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates the default variant with double jump and patrolling bombs.
func New() *Game {
	return &Game{id: "jumper", title: "Sky Hop"}
}

// NewClassic creates the variant with a single jump and static bombs.
func NewClassic() *Game {
	return &Game{id: "jumper_classic", title: "Sky Hop Classic", classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and seeds a new world.
// Panics if the configuration cannot produce a world, which only happens
// when frame sets are empty in the built-in defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		cfg = config.DefaultJumperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	if g.classic {
		cfg.Player.DoubleJump = false
		cfg.Pickups.BombsPatrol = false
	}

	g.ResetWith(runtime, cfg)
}

// ResetWith seeds a new world from an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.JumperConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	world, err := NewWorld(&g.cfg, g.difficulty, runtime.Seed, runtime.EffectiveTickRate())
	if err != nil {
		panic(fmt.Sprintf("jumper: cannot build world: %v", err))
	}
	world.SetHighScore(g.highScore)

	g.world = world
	g.paused = false
	g.pauseLatch = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// Pause toggles on the key's rising edge
	pauseHeld := in.Has(core.ActionPause)
	if pauseHeld && !g.pauseLatch {
		g.paused = !g.paused
	}
	g.pauseLatch = pauseHeld

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	sounds := g.world.Step(in)
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{HighScore: g.highScore}
	}
	return core.GameState{
		Score:     g.world.Score(),
		HighScore: g.world.HighScore(),
		GameOver:  g.world.GameOver(),
		Paused:    g.paused,
	}
}

// SetHighScore sets the persisted high score displayed in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
	if g.world != nil {
		g.world.SetHighScore(score)
	}
}

// Poses returns the renderable state of every entity.
func (g *Game) Poses() []core.Pose {
	return g.world.Poses()
}

// WorldSize returns the logical playfield size.
func (g *Game) WorldSize() (width, height int) {
	return g.world.Size()
}

// BackgroundScroll returns the cosmetic background offset.
func (g *Game) BackgroundScroll() int {
	return g.world.BackgroundScroll()
}

// Register both variants with the registry
func init() {
	registry.Register("jumper", func() registry.Game {
		return New()
	})
	registry.Register("jumper_classic", func() registry.Game {
		return NewClassic()
	})
}
