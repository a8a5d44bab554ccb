package jumper

import (
	"fmt"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Player is the jumping character. Physics is integer and frame based.
type Player struct {
	rect       core.Rect
	velY       int
	facingLeft bool

	canJump         bool // Primary jump available
	hasDoubleJump   bool // Secondary jump available
	isDoubleJumping bool
	jumpLatched     bool // Jump input seen and not yet released
	hit             bool

	idle       Cursor
	doubleJump Cursor
	hitAnim    Cursor

	cfg *config.JumperConfig
}

// MoveResult reports what one Player.Move did.
type MoveResult struct {
	Scroll int  // World scroll for this frame, never negative
	Jumped bool // A primary or secondary jump fired
}

// NewPlayer creates a player whose hitbox is centered on (centerX, centerY).
// Returns ErrEmptyFrames if any of the player's frame sets is empty.
func NewPlayer(centerX, centerY int, cfg *config.JumperConfig) (*Player, error) {
	anim := cfg.Animation
	idle, err := NewCursor(anim.IdleFrames, anim.PlayerStep)
	if err != nil {
		return nil, fmt.Errorf("idle frames: %w", err)
	}
	hit, err := NewCursor(anim.HitFrames, anim.PlayerStep)
	if err != nil {
		return nil, fmt.Errorf("hit frames: %w", err)
	}
	dj, err := NewCursor(anim.DoubleJumpFrames, anim.PlayerStep)
	if err != nil {
		return nil, fmt.Errorf("double jump frames: %w", err)
	}

	return &Player{
		rect:          core.RectAround(centerX, centerY, cfg.Player.Width, cfg.Player.Height),
		canJump:       true,
		hasDoubleJump: true,
		idle:          idle,
		doubleJump:    dj,
		hitAnim:       hit,
		cfg:           cfg,
	}, nil
}

// Move advances the player by one frame and returns the frame's scroll.
// It is a no-op while the player is hit.
func (p *Player) Move(in core.InputFrame, platforms []*Platform, screenW int) MoveResult {
	var res MoveResult
	if p.hit {
		return res
	}

	phys := p.cfg.Physics
	dx, dy := 0, 0

	if in.Has(core.ActionLeft) {
		dx = -phys.MoveSpeed
		p.facingLeft = true
		p.canJump = true
	} else if in.Has(core.ActionRight) {
		dx = phys.MoveSpeed
		p.facingLeft = false
		p.canJump = true
	}

	jumpHeld := in.Has(core.ActionJump)
	if jumpHeld && !p.jumpLatched {
		p.jumpLatched = true
		switch {
		case p.canJump:
			p.velY = phys.JumpVelocity
			p.canJump = false
			res.Jumped = true
		case p.cfg.Player.DoubleJump && p.hasDoubleJump:
			p.velY = phys.JumpVelocity
			p.hasDoubleJump = false
			p.isDoubleJumping = true
			p.doubleJump.Reset()
			res.Jumped = true
		}
	}
	if !jumpHeld {
		p.jumpLatched = false
	}

	p.velY += phys.Gravity
	dy = p.velY

	// Landing checks the next-frame rect against every platform.
	future := p.rect.Translate(0, dy)
	for _, plat := range platforms {
		if !plat.rect.Intersects(future) {
			continue
		}
		if p.rect.Bottom() <= plat.rect.Top()+phys.LandingTolerance && p.velY > 0 {
			p.rect = p.rect.WithBottom(plat.rect.Top())
			dy = 0
			p.velY = 0
			p.canJump = true
			p.hasDoubleJump = true
			p.isDoubleJumping = false
			if plat.moving {
				dx += plat.direction * plat.speed
			}
		}
	}

	// Keep the hitbox inside [0, screenW].
	if p.rect.Left()+dx < 0 {
		dx = -p.rect.Left()
	}
	if p.rect.Right()+dx > screenW {
		dx = screenW - p.rect.Right()
	}

	if p.rect.Top() <= p.cfg.World.ScrollThreshold && p.velY < 0 {
		res.Scroll = -p.velY
	}

	p.rect = p.rect.Translate(dx, dy+res.Scroll)

	if p.isDoubleJumping {
		p.doubleJump.Advance()
	} else {
		p.idle.Advance()
	}
	return res
}

// UpdateHitAnimation plays the hit animation, holding its final frame.
func (p *Player) UpdateHitAnimation() {
	p.hitAnim.AdvanceClamp()
}

// MarkHit puts the player into the hit state.
func (p *Player) MarkHit() {
	if p.hit {
		return
	}
	p.hit = true
	p.hitAnim.Reset()
}

// Hit reports whether the player has been hit by a bomb.
func (p *Player) Hit() bool { return p.hit }

// Rect returns the player's hitbox.
func (p *Player) Rect() core.Rect { return p.rect }

// VelY returns the vertical velocity (negative = up).
func (p *Player) VelY() int { return p.velY }

// Pose returns the player's renderable state.
func (p *Player) Pose() core.Pose {
	pose := core.Pose{
		Kind:       core.EntityPlayer,
		Rect:       p.rect,
		FacingLeft: p.facingLeft,
	}
	switch {
	case p.hit:
		pose.Frames, pose.Frame = core.FramesHit, p.hitAnim.Frame()
	case p.isDoubleJumping:
		pose.Frames, pose.Frame = core.FramesDoubleJump, p.doubleJump.Frame()
	default:
		pose.Frames, pose.Frame = core.FramesIdle, p.idle.Frame()
	}
	return pose
}
