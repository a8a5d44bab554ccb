package jumper

import (
	"testing"

	"github.com/vovakirdan/skyhop/internal/core"
)

func mustCursor(t *testing.T, n int) Cursor {
	t.Helper()
	c, err := NewCursor(n, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestPlatformReversesAfterCounter(t *testing.T) {
	p := NewPlatform(200, 100, 50, 20, true, 1, 1)
	for i := 0; i < 100; i++ {
		p.Update(0, 600, 100)
	}
	if p.Rect().X != 300 {
		t.Errorf("x = %d, want 300", p.Rect().X)
	}
	if p.Direction() != -1 {
		t.Errorf("direction = %d, want -1 after 100 ticks", p.Direction())
	}

	p.Update(0, 600, 100)
	if p.Rect().X != 299 {
		t.Errorf("x = %d, want 299 after turning", p.Rect().X)
	}
}

func TestPlatformReversesAtEdges(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		dir   int
		wantX int
	}{
		{"right edge", 560, 1, 560},
		{"left edge", 0, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlatform(tt.x, 100, 40, 20, true, tt.dir, 2)
			p.Update(0, 600, 100)
			if p.Direction() != -tt.dir {
				t.Fatalf("direction = %d, want %d", p.Direction(), -tt.dir)
			}
			p.Update(0, 600, 100)
			if p.Rect().X != tt.wantX {
				t.Errorf("x = %d, want %d", p.Rect().X, tt.wantX)
			}
		})
	}
}

func TestStaticPlatformOnlyScrolls(t *testing.T) {
	p := NewPlatform(100, 790, 40, 20, false, 1, 2)
	p.Update(5, 600, 100)
	if p.Rect().X != 100 || p.Rect().Y != 795 {
		t.Errorf("rect = %+v, want (100, 795)", p.Rect())
	}
	if p.OffScreen(800) {
		t.Error("top 795 is still on screen")
	}
	p.Update(10, 600, 100)
	if !p.OffScreen(800) {
		t.Error("top 805 should be off screen")
	}
}

func TestCoinScrollsAndCollides(t *testing.T) {
	c := NewCoin(100, 100, 20, mustCursor(t, 3))
	if c.Rect() != core.NewRect(90, 90, 20, 20) {
		t.Fatalf("rect = %+v", c.Rect())
	}

	c.Update(7)
	if c.Rect().Y != 97 {
		t.Errorf("y = %d, want 97", c.Rect().Y)
	}
	if !c.Collide(core.NewRect(95, 100, 10, 10)) {
		t.Error("expected overlap")
	}
	if c.Collide(core.NewRect(110, 97, 10, 10)) {
		t.Error("touching edges should not overlap")
	}
}

func TestCoinAnimationCycles(t *testing.T) {
	c := NewCoin(100, 100, 20, mustCursor(t, 3))
	seen := make(map[int]bool)
	for i := 0; i < 40; i++ {
		c.Update(0)
		f := c.Pose().Frame
		if f < 0 || f >= 3 {
			t.Fatalf("frame %d out of range", f)
		}
		seen[f] = true
	}
	if len(seen) != 3 {
		t.Errorf("saw frames %v, want all 3", seen)
	}
}

func TestBombPatrol(t *testing.T) {
	b := NewBomb(300, 100, 24, mustCursor(t, 1), true, 1, 2)
	x := b.Rect().X
	b.Update(3, 600)
	if b.Rect().X != x+2 || b.Rect().Y != 88+3 {
		t.Errorf("rect = %+v, want x=%d y=91", b.Rect(), x+2)
	}

	edge := NewBomb(590, 100, 24, mustCursor(t, 1), true, 1, 2)
	edge.Update(0, 600)
	ex := edge.Rect().X
	edge.Update(0, 600)
	if edge.Rect().X != ex-2 {
		t.Errorf("bomb should turn at the right edge, x = %d", edge.Rect().X)
	}
}

func TestStaticBombOnlyScrolls(t *testing.T) {
	b := NewBomb(300, 100, 24, mustCursor(t, 1), false, 1, 2)
	b.Update(4, 600)
	if b.Rect() != core.NewRect(288, 92, 24, 24) {
		t.Errorf("rect = %+v", b.Rect())
	}
	if b.OffScreen(800) {
		t.Error("bomb should be on screen")
	}
}
