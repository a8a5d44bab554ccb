package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the per-user data directory name.
const AppName = "skyhop"

const (
	highScoreObject = "highscore"
	settingsObject  = "settings"
	settingsProp    = "global"
)

// HighScoreFile keeps the best score per game as a small text value in the
// user's data directory. A nil manager runs in memory only.
type HighScoreFile struct {
	mgr      *gdata.Manager
	mem      map[string]int
	settings *Settings
}

// Settings are user preferences persisted next to the high score.
type Settings struct {
	SoundOn bool `yaml:"sound_on"`
}

// DefaultSettings returns the preferences used before anything is saved.
func DefaultSettings() Settings {
	return Settings{SoundOn: true}
}

// OpenHighScoreFile opens the data directory for appName. Failure is not
// fatal: the returned file keeps scores in memory only.
func OpenHighScoreFile(appName string) *HighScoreFile {
	mgr, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn("high score storage unavailable", "err", err)
		return NewHighScoreFile(nil)
	}
	return NewHighScoreFile(mgr)
}

// NewHighScoreFile wraps an existing manager; mgr may be nil.
func NewHighScoreFile(mgr *gdata.Manager) *HighScoreFile {
	return &HighScoreFile{mgr: mgr, mem: make(map[string]int)}
}

// Persistent reports whether values survive a restart.
func (h *HighScoreFile) Persistent() bool {
	return h.mgr != nil
}

// Load returns the stored best score for gameID.
// Missing or corrupt data yields 0.
func (h *HighScoreFile) Load(gameID string) int {
	if !h.Persistent() {
		return h.mem[gameID]
	}
	if !h.mgr.ObjectPropExists(highScoreObject, gameID) {
		return 0
	}
	data, err := h.mgr.LoadObjectProp(highScoreObject, gameID)
	if err != nil {
		log.Warn("cannot read high score", "game", gameID, "err", err)
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// Submit stores score if it beats the stored best. Reports whether it did.
func (h *HighScoreFile) Submit(gameID string, score int) (bool, error) {
	if score <= h.Load(gameID) {
		return false, nil
	}
	if !h.Persistent() {
		h.mem[gameID] = score
		return true, nil
	}
	if err := h.mgr.SaveObjectProp(highScoreObject, gameID, []byte(strconv.Itoa(score))); err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return true, nil
}

// LoadSettings returns saved preferences, or defaults if none are readable.
func (h *HighScoreFile) LoadSettings() Settings {
	s := DefaultSettings()
	if !h.Persistent() {
		if h.settings != nil {
			return *h.settings
		}
		return s
	}
	if !h.mgr.ObjectPropExists(settingsObject, settingsProp) {
		return s
	}
	data, err := h.mgr.LoadObjectProp(settingsObject, settingsProp)
	if err != nil {
		return s
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		log.Warn("ignoring corrupt settings", "err", err)
		return DefaultSettings()
	}
	return s
}

// SaveSettings persists preferences.
func (h *HighScoreFile) SaveSettings(s Settings) error {
	if !h.Persistent() {
		h.settings = &s
		return nil
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("storage: cannot encode settings: %w", err)
	}
	if err := h.mgr.SaveObjectProp(settingsObject, settingsProp, data); err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}
