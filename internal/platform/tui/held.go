package tui

import (
	"math"
	"time"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Hold windows. Terminals report key presses and auto-repeats but never
// releases, so an action counts as held until its window runs out without
// another event. Movement windows bridge the gap between repeats; jump is
// kept short so a second tap makes a fresh press.
const (
	moveHold = 150 * time.Millisecond
	jumpHold = 100 * time.Millisecond
)

// HeldKeys turns key events into a per-tick held snapshot.
type HeldKeys struct {
	windows map[core.Action]int
	hold    map[core.Action]int
}

// NewHeldKeys creates a sampler for the given simulation rate.
func NewHeldKeys(tickRate int) *HeldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &HeldKeys{
		windows: map[core.Action]int{
			core.ActionLeft:  ticksFor(moveHold, tickRate),
			core.ActionRight: ticksFor(moveHold, tickRate),
			core.ActionJump:  ticksFor(jumpHold, tickRate),
		},
		hold: make(map[core.Action]int),
	}
}

// ticksFor converts d to whole ticks, at least one.
func ticksFor(d time.Duration, tickRate int) int {
	return max(1, int(math.Round(d.Seconds()*float64(tickRate))))
}

// Window returns how many ticks one key event holds action a.
// Actions without a window are held for a single tick.
func (h *HeldKeys) Window(a core.Action) int {
	if w, ok := h.windows[a]; ok {
		return w
	}
	return 1
}

// Press records a key event for a.
func (h *HeldKeys) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	// Opposite directions cancel so a quick turn doesn't stall
	switch a {
	case core.ActionLeft:
		delete(h.hold, core.ActionRight)
	case core.ActionRight:
		delete(h.hold, core.ActionLeft)
	}
	h.hold[a] = h.Window(a)
}

// Frame returns the actions held this tick.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, left := range h.hold {
		if left > 0 {
			frame.Set(a)
		}
	}
	return frame
}

// Advance ages every hold by one tick.
func (h *HeldKeys) Advance() {
	for a := range h.hold {
		h.hold[a]--
		if h.hold[a] <= 0 {
			delete(h.hold, a)
		}
	}
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.hold[a] > 0
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.hold)
}
