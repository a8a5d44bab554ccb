package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// toastDuration is how long status messages stay on screen.
const toastDuration = 2 * time.Second

// SoundPlayer plays the effects a game requests. audio.SoundManager
// satisfies it; nil means silent.
type SoundPlayer interface {
	PlayAll(sounds []core.Sound)
	Toggle() bool
	Enabled() bool
}

// Deps are the optional services a terminal session uses. Any field may be
// nil; the game runs without it.
type Deps struct {
	Store      *storage.Store         // Run history
	HighScores *storage.HighScoreFile // Best score per game
	Sound      SoundPlayer            // Local speaker
	Reload     <-chan string          // Config file change notifications
}

// ConfigChangedMsg reports an edit to the watched config file.
type ConfigChangedMsg struct {
	Path string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	deps      Deps
	config    core.RuntimeConfig
	fixedSeed bool // Restarts reuse the seed given on the command line
	keyMapper *KeyMapper
	held      *HeldKeys
	gameState core.GameState
	best      int // Best score seen this session, persisted or not
	runTicks  int // Unpaused ticks in the current run
	runSaved  bool

	toast      string
	toastTicks int

	embedded   bool // Hosted by SessionModel: Back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	cfg.TickRate = cfg.EffectiveTickRate()
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:      deps,
		config:    cfg,
		fixedSeed: fixed,
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(cfg.TickRate),
	}
	if deps.HighScores != nil {
		m.best = deps.HighScores.Load(game.ID())
	}
	m.applyBest()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.deps.Reload != nil {
		cmds = append(cmds, waitForReload(m.deps.Reload))
	}
	return tea.Batch(cmds...)
}

// waitForReload blocks until the watcher reports a change.
func waitForReload(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigChangedMsg{Path: path}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has a fixed logical size, so only the view changes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case ConfigChangedMsg:
		m.restart()
		m.showToast("Config reloaded")
		if m.deps.Reload == nil {
			return m, nil
		}
		return m, waitForReload(m.deps.Reload)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.embedded && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, nil
		}
		m.held.Press(core.ActionPause)

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	case core.ActionJump:
		if m.gameState.GameOver {
			m.restart()
			return m, nil
		}
		m.held.Press(action)

	case core.ActionSound:
		m.toggleSound()

	default:
		m.held.Press(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.held.Frame())
	m.held.Advance()
	m.gameState = result.State

	if !wasOver && !m.gameState.Paused {
		m.runTicks++
	}
	if m.deps.Sound != nil && len(result.Sounds) > 0 {
		m.deps.Sound.PlayAll(result.Sounds)
	}
	m.best = max(m.best, m.gameState.HighScore)

	// Record the run once per game over
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
	}

	if m.toastTicks > 0 {
		m.toastTicks--
		if m.toastTicks == 0 {
			m.toast = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.applyBest()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.held.Reset()
	m.runTicks = 0
	m.runSaved = false
}

// applyBest hands the session best to games that display it.
func (m *Model) applyBest() {
	if setter, ok := m.game.(registry.HighScoreSetter); ok {
		setter.SetHighScore(m.best)
	}
}

// saveRun records the finished run. Failures are shown, never fatal.
func (m *Model) saveRun() {
	m.runSaved = true
	rec := storage.Recorder{Store: m.deps.Store, HighScores: m.deps.HighScores}
	newBest, err := rec.Record(storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Ticks:  m.runTicks,
		Seed:   m.config.Seed,
	})
	switch {
	case err != nil:
		m.showToast("Could not save score")
	case newBest:
		m.showToast("New high score!")
	}
}

// toggleSound flips sound and persists the choice.
func (m *Model) toggleSound() {
	if m.deps.Sound == nil {
		return
	}
	on := m.deps.Sound.Toggle()
	if m.deps.HighScores != nil {
		//nolint:errcheck // Best-effort preference save
		m.deps.HighScores.SaveSettings(storage.Settings{SoundOn: on})
	}
	if on {
		m.showToast("Sound on")
	} else {
		m.showToast("Sound off")
	}
}

func (m *Model) showToast(text string) {
	m.toast = text
	m.toastTicks = int(toastDuration.Seconds() * float64(m.config.TickRate))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skyhop", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err == nil {
		m.showToast("Screenshot saved")
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.toast != "" {
		drawToast(m.screen, m.toast)
	}
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, deps, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
