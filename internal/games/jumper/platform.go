package jumper

import "github.com/vovakirdan/skyhop/internal/core"

// Platform is a floating ledge the player can land on.
// Moving platforms sweep horizontally and turn around after a fixed
// number of ticks or when they leave the screen.
type Platform struct {
	rect        core.Rect
	moving      bool
	direction   int // -1 or +1
	speed       int
	moveCounter int
}

// NewPlatform creates a platform with its top-left corner at (x, y).
func NewPlatform(x, y, width, height int, moving bool, direction, speed int) *Platform {
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}
	return &Platform{
		rect:      core.NewRect(x, y, width, height),
		moving:    moving,
		direction: direction,
		speed:     speed,
	}
}

// Update moves the platform one tick and applies the world scroll.
func (p *Platform) Update(scroll, screenW, reverseAfter int) {
	if p.moving {
		p.moveCounter++
		p.rect = p.rect.Translate(p.direction*p.speed, 0)
	}

	if p.moveCounter >= reverseAfter || p.rect.Left() < 0 || p.rect.Right() > screenW {
		p.direction = -p.direction
		p.moveCounter = 0
	}

	p.rect = p.rect.Translate(0, scroll)
}

// OffScreen reports whether the platform scrolled past the bottom.
func (p *Platform) OffScreen(screenH int) bool {
	return p.rect.Top() > screenH
}

// Rect returns the platform bounds.
func (p *Platform) Rect() core.Rect { return p.rect }

// Moving reports whether the platform sweeps horizontally.
func (p *Platform) Moving() bool { return p.moving }

// Direction returns the horizontal direction, -1 or +1.
func (p *Platform) Direction() int { return p.direction }

// Speed returns the horizontal speed per tick.
func (p *Platform) Speed() int { return p.speed }

// Pose returns the platform's renderable state.
func (p *Platform) Pose() core.Pose {
	return core.Pose{
		Kind:   core.EntityPlatform,
		Rect:   p.rect,
		Frames: core.FramesPlatform,
		Moving: p.moving,
	}
}
