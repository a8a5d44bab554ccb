package jumper

import "errors"

// ErrEmptyFrames is returned when an animation is built over zero frames.
var ErrEmptyFrames = errors.New("jumper: animation has no frames")

// Cursor is a position over a fixed-length frame sequence.
// Frame is always within [0, length).
type Cursor struct {
	pos    float64
	step   float64
	length int
}

// NewCursor creates a cursor over length frames advancing by step per update.
func NewCursor(length int, step float64) (Cursor, error) {
	if length <= 0 {
		return Cursor{}, ErrEmptyFrames
	}
	return Cursor{step: step, length: length}, nil
}

// Advance moves the cursor forward, wrapping to the first frame.
func (c *Cursor) Advance() {
	c.pos += c.step
	if c.pos >= float64(c.length) {
		c.pos = 0
	}
}

// AdvanceClamp moves the cursor forward, holding on the last frame.
func (c *Cursor) AdvanceClamp() {
	c.pos += c.step
	if c.pos >= float64(c.length) {
		c.pos = float64(c.length - 1)
	}
}

// Reset rewinds to the first frame.
func (c *Cursor) Reset() {
	c.pos = 0
}

// Frame returns the current frame index.
func (c Cursor) Frame() int {
	f := int(c.pos)
	if f < 0 {
		return 0
	}
	if f >= c.length {
		return c.length - 1
	}
	return f
}

// Len returns the number of frames in the sequence.
func (c Cursor) Len() int {
	return c.length
}
