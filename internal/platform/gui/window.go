// Package gui is the desktop window frontend. It draws the entity poses a
// game exposes with ebiten and offers an ebitenui main menu.
package gui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// SoundPlayer plays game sound effects; audio.SoundManager satisfies it.
type SoundPlayer interface {
	PlayAll(sounds []core.Sound)
	Toggle() bool
	Enabled() bool
}

// Options configure the window. Zero values are usable.
type Options struct {
	Store      *storage.Store
	HighScores *storage.HighScoreFile
	Sound      SoundPlayer
	TickRate   int     // Simulation ticks per second
	Seed       int64   // Fixed world seed; 0 picks a new one per run
	Scale      float64 // Window size relative to the logical playfield
	GameID     string  // Start this game directly instead of the menu
}

type windowState int

const (
	stateMenu windowState = iota
	statePlaying
)

const toastDuration = 2 * time.Second

// Window is the ebiten.Game hosting the menu and one running game.
type Window struct {
	opts   Options
	logger *log.Logger
	width  int
	height int

	menu     *ebitenui.UI
	bestText *widget.Text
	soundBtn *widget.Button

	state     windowState
	game      registry.Game
	poses     registry.PoseSource
	runtime   core.RuntimeConfig
	gameState core.GameState
	best      int
	runTicks  int
	runSaved  bool

	toast      string
	toastTicks int
	quit       bool
}

// NewWindow builds the window and its menu.
func NewWindow(opts Options) *Window {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 0.75
	}
	world := config.DefaultJumperConfig().World

	w := &Window{
		opts: opts,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "skyhop-window",
		}),
		width:  world.Width,
		height: world.Height,
	}
	w.menu = w.buildMenu()
	return w
}

// start creates and resets the game with the given id.
func (w *Window) start(id string) {
	game, err := registry.Create(id)
	if err != nil {
		w.logger.Error("cannot start game", "game", id, "err", err)
		return
	}
	poses, ok := game.(registry.PoseSource)
	if !ok {
		w.logger.Error("game cannot be drawn in a window", "game", id)
		return
	}

	w.game = game
	w.poses = poses
	w.runtime = core.RuntimeConfig{
		ScreenW:  core.DefaultConfig().ScreenW,
		ScreenH:  core.DefaultConfig().ScreenH,
		TickRate: w.opts.TickRate,
		Seed:     w.opts.Seed,
	}
	w.best = 0
	if w.opts.HighScores != nil {
		w.best = w.opts.HighScores.Load(id)
	}
	w.restart()
	w.state = statePlaying
	w.logger.Info("game started", "game", id, "seed", w.runtime.Seed)
}

// restart begins a new run of the current game.
func (w *Window) restart() {
	if w.opts.Seed == 0 {
		w.runtime.Seed = time.Now().UnixNano()
	}
	if setter, ok := w.game.(registry.HighScoreSetter); ok {
		setter.SetHighScore(w.best)
	}
	w.game.Reset(w.runtime)
	if wsW, wsH := w.poses.WorldSize(); wsW > 0 && wsH > 0 {
		w.width, w.height = wsW, wsH
	}
	w.gameState = w.game.State()
	w.runTicks = 0
	w.runSaved = false
}

func (w *Window) toMenu() {
	w.state = stateMenu
	w.game = nil
	w.poses = nil
	w.refreshMenu()
}

func (w *Window) toggleSound() {
	if w.opts.Sound == nil {
		return
	}
	on := w.opts.Sound.Toggle()
	if w.opts.HighScores != nil {
		if err := w.opts.HighScores.SaveSettings(storage.Settings{SoundOn: on}); err != nil {
			w.logger.Warn("cannot save settings", "err", err)
		}
	}
	w.refreshMenu()
	w.showToast(soundLabel(on))
}

func (w *Window) showToast(text string) {
	w.toast = text
	w.toastTicks = int(toastDuration.Seconds() * float64(w.opts.TickRate))
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.quit {
		return ebiten.Termination
	}
	if w.toastTicks > 0 {
		w.toastTicks--
	}

	switch w.state {
	case stateMenu:
		w.menu.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			w.quit = true
		}
	case statePlaying:
		w.updateGame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	}
	return nil
}

// updateGame runs one tick. pressed reports held keys and justPressed
// reports keys that went down this tick.
func (w *Window) updateGame(pressed, justPressed func(ebiten.Key) bool) {
	if justPressed(ebiten.KeyM) {
		w.toggleSound()
	}

	if w.gameState.GameOver {
		switch {
		case justPressed(ebiten.KeyR), justPressed(ebiten.KeySpace):
			w.restart()
		case justPressed(ebiten.KeyEscape):
			w.toMenu()
		}
		return
	}
	if w.gameState.Paused && justPressed(ebiten.KeyEscape) {
		w.toMenu()
		return
	}

	result := w.game.Step(sampleInput(pressed))
	w.gameState = result.State
	if !w.gameState.Paused {
		w.runTicks++
	}
	if w.opts.Sound != nil && len(result.Sounds) > 0 {
		w.opts.Sound.PlayAll(result.Sounds)
	}
	w.best = max(w.best, w.gameState.HighScore)

	if w.gameState.GameOver && !w.runSaved {
		w.saveRun()
	}
}

// saveRun records the finished run.
func (w *Window) saveRun() {
	w.runSaved = true
	rec := storage.Recorder{Store: w.opts.Store, HighScores: w.opts.HighScores}
	newBest, err := rec.Record(storage.Run{
		GameID: w.game.ID(),
		Score:  w.gameState.Score,
		Ticks:  w.runTicks,
		Seed:   w.runtime.Seed,
	})
	if err != nil {
		w.logger.Warn("cannot record run", "err", err)
		return
	}
	if newBest {
		w.showToast("New high score!")
	}
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.state == stateMenu {
		drawBackground(screen, w.width, w.height, 0)
		w.menu.Draw(screen)
		return
	}

	drawBackground(screen, w.width, w.height, w.poses.BackgroundScroll())
	for _, p := range w.poses.Poses() {
		drawPose(screen, p)
	}
	drawHUD(screen, w.width, w.gameState)

	switch {
	case w.gameState.GameOver:
		drawCenteredLines(screen, w.width, w.height,
			"GAME OVER",
			fmt.Sprintf("Score: %d", w.gameState.Score),
			"",
			"R / Space: restart   Esc: menu",
		)
	case w.gameState.Paused:
		drawCenteredLines(screen, w.width, w.height, "PAUSED", "", "P: resume   Esc: menu")
	}

	if w.toastTicks > 0 {
		x := (w.width - len(w.toast)*debugGlyphW) / 2
		drawToast(screen, w.toast, x, w.height-2*debugGlyphH)
	}
}

// Layout implements ebiten.Game. The logical screen is the playfield;
// ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w := NewWindow(opts)
	if opts.GameID != "" {
		w.start(opts.GameID)
	}

	ebiten.SetWindowTitle("Sky Hop")
	ebiten.SetWindowSize(int(float64(w.width)*w.opts.Scale), int(float64(w.height)*w.opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
