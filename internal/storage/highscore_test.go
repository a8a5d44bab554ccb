package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// newTestHighScoreFile opens a throwaway data directory, or skips when the
// environment has no writable user data location.
func newTestHighScoreFile(t *testing.T) (*HighScoreFile, *gdata.Manager) {
	t.Helper()
	appName := fmt.Sprintf("skyhop_test_%d", time.Now().UnixNano())
	mgr, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}

	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return NewHighScoreFile(mgr), mgr
}

func TestHighScoreMissingIsZero(t *testing.T) {
	h, _ := newTestHighScoreFile(t)
	if got := h.Load("jumper"); got != 0 {
		t.Errorf("Load on empty store = %d, want 0", got)
	}
}

func TestHighScoreSubmitOnlyWhenBeaten(t *testing.T) {
	h, _ := newTestHighScoreFile(t)

	saved, err := h.Submit("jumper", 1200)
	if err != nil || !saved {
		t.Fatalf("first Submit = %v, %v", saved, err)
	}
	if saved, _ := h.Submit("jumper", 800); saved {
		t.Error("lower score should not replace the best")
	}
	if got := h.Load("jumper"); got != 1200 {
		t.Errorf("Load = %d, want 1200", got)
	}

	if saved, _ := h.Submit("jumper", 1500); !saved {
		t.Error("higher score should be saved")
	}
	if got := h.Load("jumper"); got != 1500 {
		t.Errorf("Load = %d, want 1500", got)
	}

	// Games are tracked separately
	if got := h.Load("jumper_classic"); got != 0 {
		t.Errorf("other game Load = %d, want 0", got)
	}
}

func TestHighScoreCorruptIsZero(t *testing.T) {
	h, mgr := newTestHighScoreFile(t)
	if err := mgr.SaveObjectProp(highScoreObject, "jumper", []byte("not a number")); err != nil {
		t.Fatal(err)
	}
	if got := h.Load("jumper"); got != 0 {
		t.Errorf("corrupt Load = %d, want 0", got)
	}

	// A corrupt value is replaced by the next real score
	if saved, err := h.Submit("jumper", 10); err != nil || !saved {
		t.Errorf("Submit over corrupt value = %v, %v", saved, err)
	}
}

func TestHighScoreMemoryOnly(t *testing.T) {
	h := NewHighScoreFile(nil)
	if h.Persistent() {
		t.Error("nil manager should not be persistent")
	}
	if saved, err := h.Submit("jumper", 100); !saved || err != nil {
		t.Errorf("memory-only Submit = %v, %v", saved, err)
	}
	if h.Load("jumper") != 100 {
		t.Errorf("memory-only Load = %d, want 100", h.Load("jumper"))
	}
	if !h.LoadSettings().SoundOn {
		t.Error("unsaved settings should be defaults")
	}
	if err := h.SaveSettings(Settings{SoundOn: false}); err != nil {
		t.Errorf("memory-only SaveSettings: %v", err)
	}
	if h.LoadSettings().SoundOn {
		t.Error("memory-only settings should keep the saved value")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	h, _ := newTestHighScoreFile(t)
	if !h.LoadSettings().SoundOn {
		t.Error("default settings should have sound on")
	}
	if err := h.SaveSettings(Settings{SoundOn: false}); err != nil {
		t.Fatal(err)
	}
	if h.LoadSettings().SoundOn {
		t.Error("saved sound_on=false should load back")
	}
}

func TestRecorder(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	rec := Recorder{Store: store, HighScores: NewHighScoreFile(nil)}

	best, err := rec.Record(Run{GameID: "jumper", Score: 700, Ticks: 120, Seed: 5})
	if err != nil || !best {
		t.Fatalf("first Record = %v, %v", best, err)
	}
	best, err = rec.Record(Run{GameID: "jumper", Score: 300, Ticks: 60, Seed: 6})
	if err != nil || best {
		t.Errorf("lower Record = %v, %v", best, err)
	}
	if best, _ := rec.Record(Run{GameID: "jumper", Score: 0}); best {
		t.Error("empty run cannot be a best")
	}

	runs, _ := store.AllScores("jumper")
	if len(runs) != 2 {
		t.Errorf("history has %d runs, want 2", len(runs))
	}

	// Nothing configured is fine
	if _, err := (Recorder{}).Record(Run{GameID: "jumper", Score: 10}); err != nil {
		t.Errorf("empty recorder: %v", err)
	}
}
