package jumper

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// World owns one play session: the player, every live platform, coin and
// bomb, the scroll state and the score. It is not safe for concurrent use.
type World struct {
	cfg *config.JumperConfig
	gen *Generator

	player    *Player
	platforms []*Platform
	coins     []*Coin
	bombs     []*Bomb

	scroll    int // This frame's scroll, recomputed every tick
	bgScroll  int // Cosmetic, wraps at World.BackgroundWrap
	score     int
	highScore int
	gameOver  bool

	hitTicks    int
	hitDuration int // Ticks of hit animation before game over
	ticks       int
}

// NewWorld builds a freshly seeded world. tickRate converts the hit
// duration from seconds into ticks.
func NewWorld(cfg *config.JumperConfig, diff *config.DifficultyManager, seed int64, tickRate int) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	gen, err := NewGenerator(seed, cfg, diff)
	if err != nil {
		return nil, err
	}
	player, err := NewPlayer(cfg.World.Width/2, cfg.World.Height-cfg.Player.StartOffset, cfg)
	if err != nil {
		return nil, err
	}

	w := &World{
		cfg:         cfg,
		gen:         gen,
		player:      player,
		hitDuration: int(math.Round(cfg.Session.HitDuration * float64(tickRate))),
	}
	for _, pl := range gen.Seed() {
		w.add(pl)
	}
	w.refill()
	return w, nil
}

// Step advances the session by one tick and returns the sounds it triggered.
// A finished session is frozen.
func (w *World) Step(in core.InputFrame) []core.Sound {
	if w.gameOver {
		return nil
	}
	w.ticks++

	var sounds []core.Sound
	width, height := w.cfg.World.Width, w.cfg.World.Height

	if w.player.Hit() {
		w.player.UpdateHitAnimation()
		w.scroll = 0
	} else {
		res := w.player.Move(in, w.platforms, width)
		w.scroll = res.Scroll
		if res.Jumped {
			sounds = append(sounds, core.SoundJump)
		}
	}
	pr := w.player.Rect()

	coins := w.coins[:0]
	for _, c := range w.coins {
		c.Update(w.scroll)
		if c.Collide(pr) {
			w.score += w.cfg.Pickups.CoinValue
			sounds = append(sounds, core.SoundCoin)
			continue
		}
		coins = append(coins, c)
	}
	clear(w.coins[len(coins):])
	w.coins = coins

	for _, b := range w.bombs {
		b.Update(w.scroll, width)
		if b.Collide(pr) && !w.player.Hit() {
			w.player.MarkHit()
			w.hitTicks = 0
			sounds = append(sounds, core.SoundHit)
		}
	}

	if w.player.Hit() {
		w.hitTicks++
		if w.hitTicks >= w.hitDuration {
			w.gameOver = true
		}
	}

	w.bgScroll += w.scroll
	if w.bgScroll >= w.cfg.World.BackgroundWrap {
		w.bgScroll = 0
	}

	for _, p := range w.platforms {
		p.Update(w.scroll, width, w.cfg.Platforms.ReverseAfter)
	}
	w.cull(height)
	w.refill()

	if w.scroll > 0 {
		w.score += w.scroll
	}

	if w.player.Rect().Top() > height {
		w.gameOver = true
		sounds = append(sounds, core.SoundHit)
	}

	return sounds
}

// refill tops the platform supply back up to MaxPlatforms, stacking each
// new platform above the current highest one.
func (w *World) refill() {
	for len(w.platforms) < w.cfg.World.MaxPlatforms {
		w.add(w.gen.Next(w.minPlatformY(), w.score, w.ticks))
	}
}

func (w *World) add(pl Placement) {
	w.platforms = append(w.platforms, pl.Platform)
	if pl.Coin != nil {
		w.coins = append(w.coins, pl.Coin)
	}
	if pl.Bomb != nil {
		w.bombs = append(w.bombs, pl.Bomb)
	}
}

// minPlatformY returns the top of the highest platform.
func (w *World) minPlatformY() int {
	if len(w.platforms) == 0 {
		return w.cfg.World.Height - w.cfg.World.GroundOffset
	}
	minY := w.platforms[0].rect.Top()
	for _, p := range w.platforms[1:] {
		minY = min(minY, p.rect.Top())
	}
	return minY
}

// cull drops everything that scrolled past the bottom of the screen.
func (w *World) cull(screenH int) {
	platforms := w.platforms[:0]
	for _, p := range w.platforms {
		if !p.OffScreen(screenH) {
			platforms = append(platforms, p)
		}
	}
	clear(w.platforms[len(platforms):])
	w.platforms = platforms

	coins := w.coins[:0]
	for _, c := range w.coins {
		if !c.OffScreen(screenH) {
			coins = append(coins, c)
		}
	}
	clear(w.coins[len(coins):])
	w.coins = coins

	bombs := w.bombs[:0]
	for _, b := range w.bombs {
		if !b.OffScreen(screenH) {
			bombs = append(bombs, b)
		}
	}
	clear(w.bombs[len(bombs):])
	w.bombs = bombs
}

// Poses returns every entity's renderable state, back to front.
func (w *World) Poses() []core.Pose {
	poses := make([]core.Pose, 0, len(w.platforms)+len(w.coins)+len(w.bombs)+1)
	for _, p := range w.platforms {
		poses = append(poses, p.Pose())
	}
	for _, c := range w.coins {
		poses = append(poses, c.Pose())
	}
	for _, b := range w.bombs {
		poses = append(poses, b.Pose())
	}
	return append(poses, w.player.Pose())
}

// SetHighScore sets the persisted best score shown alongside the score.
func (w *World) SetHighScore(score int) { w.highScore = score }

// HighScore returns the best of the persisted high score and this session.
func (w *World) HighScore() int { return max(w.highScore, w.score) }

func (w *World) Score() int                { return w.score }
func (w *World) GameOver() bool            { return w.gameOver }
func (w *World) Scroll() int               { return w.scroll }
func (w *World) BackgroundScroll() int     { return w.bgScroll }
func (w *World) Ticks() int                { return w.ticks }
func (w *World) Player() *Player           { return w.player }
func (w *World) Platforms() []*Platform    { return w.platforms }
func (w *World) Coins() []*Coin            { return w.coins }
func (w *World) Bombs() []*Bomb            { return w.bombs }
func (w *World) Size() (width, height int) { return w.cfg.World.Width, w.cfg.World.Height }
