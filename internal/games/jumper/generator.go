package jumper

import (
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
)

// Placement is one generated platform with its optional pickups.
type Placement struct {
	Platform *Platform
	Coin     *Coin // nil if none
	Bomb     *Bomb // nil if none
}

// Generator places platforms, coins and bombs above the visible window.
// All randomness flows through one seeded source, so a seed fully
// determines the world.
type Generator struct {
	rng        *rand.Rand
	cfg        *config.JumperConfig
	difficulty *config.DifficultyManager
	coinAnim   Cursor
	bombAnim   Cursor
}

// NewGenerator creates a generator. Returns ErrEmptyFrames if the coin or
// bomb frame sets are empty.
func NewGenerator(seed int64, cfg *config.JumperConfig, diff *config.DifficultyManager) (*Generator, error) {
	coinAnim, err := NewCursor(cfg.Animation.CoinFrames, cfg.Animation.PickupStep)
	if err != nil {
		return nil, err
	}
	bombAnim, err := NewCursor(cfg.Animation.BombFrames, cfg.Animation.PickupStep)
	if err != nil {
		return nil, err
	}
	if diff == nil {
		diff = config.NewDifficultyManager(cfg.Difficulty)
	}
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg,
		difficulty: diff,
		coinAnim:   coinAnim,
		bombAnim:   bombAnim,
	}, nil
}

// Seed returns the starting layout: a full-width ground platform and a
// short column of platforms above it.
func (g *Generator) Seed() []Placement {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	pc := g.cfg.Platforms
	groundY := h - g.cfg.World.GroundOffset

	out := make([]Placement, 0, pc.SeedCount+1)
	out = append(out, Placement{
		Platform: NewPlatform(0, groundY, w, pc.Height, false, g.direction(), g.platformSpeed()),
	})

	for i := 1; i <= pc.SeedCount; i++ {
		width := g.between(pc.MinWidth, pc.MaxWidth)
		x := g.between(pc.SeedMargin, w-pc.SeedMargin-width)
		y := groundY - i*g.between(pc.MinGap, pc.MaxGap)
		moving := g.rng.Float64() < pc.SeedMovingRate
		p := NewPlatform(x, y, width, pc.Height, moving, g.direction(), g.platformSpeed())
		out = append(out, g.decorate(p, g.cfg.Pickups.SeedBombChance))
	}
	return out
}

// Next places one platform strictly above minY. Moving platforms only
// appear once score passes the configured gate.
func (g *Generator) Next(minY, score, ticks int) Placement {
	w := g.cfg.World.Width
	pc := g.cfg.Platforms

	width := g.between(pc.MinWidth, pc.MaxWidth)
	minX := int(float64(w) * pc.EdgeMargin)
	usable := int(float64(w) * (1 - 2*pc.EdgeMargin))
	x := g.between(minX, minX+usable-width)
	y := minY - g.between(pc.MinGap, pc.MaxGap)

	moving := false
	if score > pc.MovingScoreGate {
		moving = g.rng.Float64() < g.difficulty.MovingChance(pc.MovingChance, score, ticks)
	}

	p := NewPlatform(x, y, width, pc.Height, moving, g.direction(), g.platformSpeed())
	return g.decorate(p, g.difficulty.HazardChance(g.cfg.Pickups.BombChance, score, ticks))
}

// decorate rolls a coin and a bomb above p.
func (g *Generator) decorate(p *Platform, bombChance float64) Placement {
	pk := g.cfg.Pickups
	pl := Placement{Platform: p}
	cx, top := p.rect.CenterX(), p.rect.Top()

	if g.rng.Float64() < pk.CoinChance {
		pl.Coin = NewCoin(cx, top-pk.CoinOffset, pk.CoinSize, g.coinAnim)
	}
	if g.rng.Float64() < bombChance {
		pl.Bomb = NewBomb(cx, top-pk.BombOffset, pk.BombSize, g.bombAnim,
			pk.BombsPatrol, g.direction(), g.between(pk.BombMinSpeed, pk.BombMaxSpeed))
	}
	return pl
}

// between returns a uniform int in [lo, hi]. Degenerate ranges yield lo.
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) direction() int {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func (g *Generator) platformSpeed() int {
	return g.between(g.cfg.Platforms.MinSpeed, g.cfg.Platforms.MaxSpeed)
}
