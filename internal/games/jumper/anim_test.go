package jumper

import (
	"errors"
	"testing"
)

func TestNewCursorRejectsEmpty(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewCursor(n, 0.2); !errors.Is(err, ErrEmptyFrames) {
			t.Errorf("NewCursor(%d) err = %v, want ErrEmptyFrames", n, err)
		}
	}
}

func TestCursorAdvanceWraps(t *testing.T) {
	c, err := NewCursor(3, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{0, 1, 1, 2, 2, 0, 0, 1}
	for i, w := range want {
		c.Advance()
		if got := c.Frame(); got != w {
			t.Errorf("step %d: Frame() = %d, want %d", i, got, w)
		}
	}
}

func TestCursorAdvanceClampHoldsLastFrame(t *testing.T) {
	c, err := NewCursor(7, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		c.AdvanceClamp()
		if f := c.Frame(); f < 0 || f >= 7 {
			t.Fatalf("frame %d out of range", f)
		}
	}
	if c.Frame() != 6 {
		t.Errorf("Frame() = %d, want 6", c.Frame())
	}

	c.Reset()
	if c.Frame() != 0 {
		t.Errorf("Reset should rewind, got %d", c.Frame())
	}
}

func TestCursorSingleFrame(t *testing.T) {
	c, err := NewCursor(1, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		c.Advance()
		if c.Frame() != 0 {
			t.Fatalf("single-frame cursor moved to %d", c.Frame())
		}
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d", c.Len())
	}
}
