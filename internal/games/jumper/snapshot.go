package jumper

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick     int
	Score    int
	GameOver bool
	Scroll   int
	BgScroll int
	HitTicks int

	PlayerX, PlayerY int
	PlayerVelY       int
	PlayerHit        bool

	// Each platform is 6 ints: X, Y, W, Moving, Direction, Speed
	PlatformData []int
	// Each coin is 2 ints: X, Y
	CoinData []int
	// Each bomb is 3 ints: X, Y, Direction
	BombData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	pr := w.player.Rect()

	s := Snapshot{
		Tick:       w.ticks,
		Score:      w.score,
		GameOver:   w.gameOver,
		Scroll:     w.scroll,
		BgScroll:   w.bgScroll,
		HitTicks:   w.hitTicks,
		PlayerX:    pr.X,
		PlayerY:    pr.Y,
		PlayerVelY: w.player.VelY(),
		PlayerHit:  w.player.Hit(),

		PlatformData: make([]int, 0, len(w.platforms)*6),
		CoinData:     make([]int, 0, len(w.coins)*2),
		BombData:     make([]int, 0, len(w.bombs)*3),
	}

	for _, p := range w.platforms {
		moving := 0
		if p.moving {
			moving = 1
		}
		s.PlatformData = append(s.PlatformData, p.rect.X, p.rect.Y, p.rect.W, moving, p.direction, p.speed)
	}
	for _, c := range w.coins {
		s.CoinData = append(s.CoinData, c.rect.X, c.rect.Y)
	}
	for _, b := range w.bombs {
		s.BombData = append(s.BombData, b.rect.X, b.rect.Y, b.direction)
	}
	return s
}
