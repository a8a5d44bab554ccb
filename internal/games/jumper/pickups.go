package jumper

import "github.com/vovakirdan/skyhop/internal/core"

// Coin is a collectible floating above a platform.
type Coin struct {
	x, y int // Center
	rect core.Rect
	anim Cursor
}

// NewCoin creates a coin centered on (x, y).
func NewCoin(x, y, size int, anim Cursor) *Coin {
	return &Coin{
		x:    x,
		y:    y,
		rect: core.RectAround(x, y, size, size),
		anim: anim,
	}
}

// Update animates the coin and applies the world scroll.
func (c *Coin) Update(scroll int) {
	c.anim.Advance()
	c.y += scroll
	c.rect.Y = c.y - c.rect.H/2
}

// Collide reports whether the coin overlaps r.
func (c *Coin) Collide(r core.Rect) bool { return c.rect.Intersects(r) }

// OffScreen reports whether the coin scrolled past the bottom.
func (c *Coin) OffScreen(screenH int) bool { return c.rect.Top() > screenH }

// Rect returns the coin bounds.
func (c *Coin) Rect() core.Rect { return c.rect }

// Pose returns the coin's renderable state.
func (c *Coin) Pose() core.Pose {
	return core.Pose{
		Kind:   core.EntityCoin,
		Rect:   c.rect,
		Frames: core.FramesCoin,
		Frame:  c.anim.Frame(),
	}
}

// Bomb is a hazard. Touching it puts the player into the hit state.
// Bombs are not consumed on contact.
type Bomb struct {
	rect      core.Rect
	anim      Cursor
	patrol    bool
	direction int
	speed     int
}

// NewBomb creates a bomb centered on (x, y). A patrolling bomb sweeps
// horizontally and turns at the screen edges.
func NewBomb(x, y, size int, anim Cursor, patrol bool, direction, speed int) *Bomb {
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}
	return &Bomb{
		rect:      core.RectAround(x, y, size, size),
		anim:      anim,
		patrol:    patrol,
		direction: direction,
		speed:     speed,
	}
}

// Update animates the bomb, patrols if enabled and applies the world scroll.
func (b *Bomb) Update(scroll, screenW int) {
	b.anim.Advance()
	if b.patrol {
		b.rect = b.rect.Translate(b.direction*b.speed, 0)
		if b.rect.Left() < 0 || b.rect.Right() > screenW {
			b.direction = -b.direction
		}
	}
	b.rect = b.rect.Translate(0, scroll)
}

// Collide reports whether the bomb overlaps r.
func (b *Bomb) Collide(r core.Rect) bool { return b.rect.Intersects(r) }

// OffScreen reports whether the bomb scrolled past the bottom.
func (b *Bomb) OffScreen(screenH int) bool { return b.rect.Top() > screenH }

// Rect returns the bomb bounds.
func (b *Bomb) Rect() core.Rect { return b.rect }

// Pose returns the bomb's renderable state.
func (b *Bomb) Pose() core.Pose {
	return core.Pose{
		Kind:   core.EntityBomb,
		Rect:   b.rect,
		Frames: core.FramesBomb,
		Frame:  b.anim.Frame(),
	}
}
