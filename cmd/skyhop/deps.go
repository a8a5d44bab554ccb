package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/platform/gui"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// services holds everything a local frontend needs besides the game.
// Each part is optional; a failure leaves it nil and the game still runs.
type services struct {
	store      *storage.Store
	highScores *storage.HighScoreFile
	sound      *audio.SoundManager
	watcher    *config.Watcher
}

// openServices opens storage, audio and the config watcher.
func openServices(withAudio bool) *services {
	s := &services{highScores: storage.OpenHighScoreFile(storage.AppName)}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
	} else {
		s.store = store
	}

	if withAudio {
		sound := audio.NewSoundManager()
		sound.SetEnabled(!flagMute && s.highScores.LoadSettings().SoundOn)
		if err := sound.Initialize(); err != nil {
			log.Warn("audio unavailable", "err", err)
		} else {
			s.sound = sound
		}
	}

	if flagWatch {
		path := flagConfig
		if path == "" {
			path = config.UserConfigPath()
		}
		if path != "" {
			w, err := config.NewWatcher(path)
			if err != nil {
				log.Warn("cannot watch config", "path", path, "err", err)
			} else {
				s.watcher = w
			}
		}
	}
	return s
}

// tuiDeps wires the services into the terminal frontend.
func (s *services) tuiDeps() tui.Deps {
	deps := tui.Deps{Store: s.store, HighScores: s.highScores}
	if s.sound != nil {
		deps.Sound = s.sound
	}
	if s.watcher != nil {
		deps.Reload = s.watcher.Events
	}
	return deps
}

// windowOptions wires the services into the desktop frontend.
func (s *services) windowOptions() gui.Options {
	opts := gui.Options{
		Store:      s.store,
		HighScores: s.highScores,
		TickRate:   flagFPS,
		Seed:       flagSeed,
	}
	if s.sound != nil {
		opts.Sound = s.sound
	}
	return opts
}

func (s *services) close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if s.store != nil {
		_ = s.store.Close()
	}
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
