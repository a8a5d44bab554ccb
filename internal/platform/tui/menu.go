package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// MenuItemKind distinguishes what selecting an entry does.
type MenuItemKind int

const (
	MenuItemGame MenuItemKind = iota
	MenuItemScores
	MenuItemSound
	MenuItemExit
)

// MenuItem is one selectable menu line.
type MenuItem struct {
	Kind   MenuItemKind
	GameID string // Set for MenuItemGame
	Title  string
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	deps           Deps
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model. The sound entry only appears when
// deps has a sound player.
func NewMenuModel(deps Deps, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+3)

	for _, g := range games {
		items = append(items, MenuItem{Kind: MenuItemGame, GameID: g.ID, Title: g.Title})
	}
	items = append(items, MenuItem{Kind: MenuItemScores, Title: "High Scores"})
	if deps.Sound != nil {
		items = append(items, MenuItem{Kind: MenuItemSound, Title: "Sound"})
	}
	items = append(items, MenuItem{Kind: MenuItemExit, Title: "Exit"})

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		deps:      deps,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSound:
		m.toggleSound()

	case MenuActionSelect:
		return m.activate()
	}

	return m, nil
}

// menuFirstItemRow is the screen row of the first entry in View.
const menuFirstItemRow = 3

// itemRegion returns the clickable screen area of entry i.
func (m MenuModel) itemRegion(i int) core.Rect {
	return core.NewRect(0, menuFirstItemRow+i, m.width, 1)
}

// handleMouse moves the cursor to a hovered entry and runs a clicked one.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	for i := range m.items {
		if !m.itemRegion(i).Contains(msg.X, msg.Y) {
			continue
		}
		m.cursor = i
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.activate()
		}
		break
	}
	return m, nil
}

// activate runs the entry under the cursor.
func (m MenuModel) activate() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.items[m.cursor]

	switch item.Kind {
	case MenuItemGame:
		m.selected = &item
		return m, tea.Quit // Exit menu to start game
	case MenuItemScores:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuItemSound:
		m.toggleSound()
	case MenuItemExit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) toggleSound() {
	if m.deps.Sound == nil {
		return
	}
	on := m.deps.Sound.Toggle()
	if m.deps.HighScores != nil {
		//nolint:errcheck // Best-effort preference save
		m.deps.HighScores.SaveSettings(storage.Settings{SoundOn: on})
	}
}

// label returns the display text for an item.
func (m MenuModel) label(item MenuItem) string {
	switch item.Kind {
	case MenuItemGame:
		if m.deps.HighScores != nil {
			if best := m.deps.HighScores.Load(item.GameID); best > 0 {
				return fmt.Sprintf("%s  (best %d)", item.Title, best)
			}
		}
	case MenuItemSound:
		state := "Off"
		if m.deps.Sound != nil && m.deps.Sound.Enabled() {
			state = "On"
		}
		return fmt.Sprintf("%s: %s", item.Title, state)
	}
	return item.Title
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle.Render("S K Y   H O P"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + m.label(item)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + m.label(item))
		}
		b.WriteString(centerStyled(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  M: Sound  |  Q: Quit"
	b.WriteString(centerStyled(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerStyled centers text that may contain ANSI styling.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
