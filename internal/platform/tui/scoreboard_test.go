package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/storage"
)

func TestScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.Run{GameID: "jumper", Score: 700, Ticks: 420, Seed: 123456789}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 120, 30)
	if m.games[0].ID != "jumper" {
		t.Fatalf("first game = %q", m.games[0].ID)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Runs: 1", "700", "420", "123456789"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	narrow := NewScoreboardModel(store, 50, 30)
	if narrow.showSeed {
		t.Error("narrow board should drop the seed column")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.games[m.gameCursor].ID != "jumper_classic" || len(m.scores) != 0 {
		t.Errorf("tab should show the classic board, cursor %d", m.gameCursor)
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board should say so")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).gameCursor != 0 {
		t.Error("tab should wrap to the first game")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if next.(ScoreboardModel).gameCursor != 0 {
		t.Error("shift+tab should go back")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd != nil {
		t.Error("esc should go back without quitting")
	}
}
