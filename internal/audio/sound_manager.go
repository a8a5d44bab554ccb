// Package audio synthesizes the game's sound effects and background music
// and plays them through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyhop/internal/core"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.8
)

// speakerOnce guards speaker.Init, which may only run once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// SoundManager plays fire-and-forget effects and a looping tune.
// All methods are safe to call before Initialize; they do nothing until
// the speaker is up.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	enabled     bool
	initialized bool
}

// NewSoundManager creates a manager with sound enabled.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  defaultVolume,
		enabled: true,
	}
}

// Initialize opens the speaker and starts the music loop.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		return speakerErr
	}

	sm.music = &beep.Ctrl{Streamer: NewMusic(sampleRate, sm.volume), Paused: !sm.enabled}
	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
	speaker.Play(sm.mixer)

	sm.initialized = true
	log.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Play queues the effect for s.
func (sm *SoundManager) Play(s core.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}
	streamer := CreateSound(s, sampleRate, sm.volume)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayAll queues every sound from one simulation tick.
func (sm *SoundManager) PlayAll(sounds []core.Sound) {
	for _, s := range sounds {
		sm.Play(s)
	}
}

// SetEnabled switches effects and music on or off.
func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.enabled = on
	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = !on
		speaker.Unlock()
	}
}

// Toggle flips the enabled state and returns the new value.
func (sm *SoundManager) Toggle() bool {
	on := !sm.Enabled()
	sm.SetEnabled(on)
	return on
}

// Enabled reports whether sound is switched on.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Cleanup silences everything. The speaker itself stays open since beep
// cannot reinitialise it.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.initialized = false
}
