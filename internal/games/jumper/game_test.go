package jumper

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	g.ResetWith(testRuntime(seed), config.DefaultJumperConfig())
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must produce identical simulations
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%40 < 3 {
			inputs[i].Set(core.ActionJump)
		}
		if (i/90)%2 == 0 {
			inputs[i].Set(core.ActionRight)
		} else {
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, New(), 12345)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("determinism failed:\n run1=%+v\n run2=%+v", s1, s2)
	}
}

func TestGameDifferentSeedsDiffer(t *testing.T) {
	a := newTestGame(t, New(), 1).Snapshot()
	b := newTestGame(t, New(), 2).Snapshot()
	if reflect.DeepEqual(a.PlatformData, b.PlatformData) {
		t.Error("different seeds should produce different layouts")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, New(), 42)
	g.world.score = 1234
	g.paused = true

	g.ResetWith(testRuntime(42), config.DefaultJumperConfig())

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("Reset should clear state, got %+v", st)
	}
	if g.Snapshot().Tick != 0 {
		t.Error("Reset should clear the tick counter")
	}
}

func TestGamePauseTogglesOnPress(t *testing.T) {
	g := newTestGame(t, New(), 1)
	pause := input(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("first press should pause")
	}
	tick := g.Snapshot().Tick

	g.Step(pause) // still held
	if !g.State().Paused {
		t.Fatal("holding pause must not toggle again")
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != tick {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second press should resume")
	}
}

func TestGameJumpSound(t *testing.T) {
	g := newTestGame(t, New(), 1)
	res := g.Step(input(core.ActionJump))
	found := false
	for _, s := range res.Sounds {
		if s == core.SoundJump {
			found = true
		}
	}
	if !found {
		t.Errorf("first jump should request the jump sound, got %v", res.Sounds)
	}
}

func TestGameVariants(t *testing.T) {
	for _, id := range []string{"jumper", "jumper_classic"} {
		if !registry.Exists(id) {
			t.Errorf("%s should be registered", id)
		}
	}

	g, err := registry.Create("jumper_classic")
	if err != nil {
		t.Fatal(err)
	}
	classic := g.(*Game)
	classic.Reset(testRuntime(1))
	if classic.cfg.Player.DoubleJump || classic.cfg.Pickups.BombsPatrol {
		t.Error("classic variant should disable double jump and bomb patrol")
	}

	if _, ok := g.(registry.HighScoreSetter); !ok {
		t.Error("game should accept a persisted high score")
	}
	if _, ok := g.(registry.PoseSource); !ok {
		t.Error("game should expose poses")
	}
}

func TestGameHighScore(t *testing.T) {
	g := New()
	g.SetHighScore(5000)
	if g.State().HighScore != 5000 {
		t.Errorf("HighScore before reset = %d", g.State().HighScore)
	}

	newTestGame(t, g, 1)
	if g.State().HighScore != 5000 {
		t.Errorf("HighScore should survive reset, got %d", g.State().HighScore)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.SetHighScore(777)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "Hi: 777") {
		t.Error("HUD should show the high score")
	}
	if !strings.ContainsRune(out, PlatformChar) {
		t.Error("platforms should be drawn")
	}

	g.world.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box should be drawn")
	}
}

func TestGameRenderTinyScreens(t *testing.T) {
	g := newTestGame(t, New(), 1)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}, {200, 60}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen) // must not panic
	}
}

func TestGamePoses(t *testing.T) {
	g := newTestGame(t, New(), 1)
	w, h := g.WorldSize()
	if w != 600 || h != 800 {
		t.Errorf("WorldSize = %dx%d", w, h)
	}

	poses := g.Poses()
	if poses[len(poses)-1].Kind != core.EntityPlayer {
		t.Error("player should be drawn last")
	}
	platforms := 0
	for _, p := range poses {
		if p.Kind == core.EntityPlatform {
			platforms++
		}
	}
	if platforms != 20 {
		t.Errorf("platform poses = %d, want 20", platforms)
	}
}
