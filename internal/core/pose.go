package core

// EntityKind identifies what a Pose depicts.
type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityPlatform
	EntityCoin
	EntityBomb
)

// String returns a human-readable name for the entity kind.
func (k EntityKind) String() string {
	switch k {
	case EntityPlayer:
		return "player"
	case EntityPlatform:
		return "platform"
	case EntityCoin:
		return "coin"
	case EntityBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// FrameSet names the animation sequence a pose's Frame indexes into.
type FrameSet int

const (
	FramesIdle FrameSet = iota
	FramesDoubleJump
	FramesHit
	FramesCoin
	FramesBomb
	FramesPlatform
)

// Pose is the renderable state of one entity: where it is and which
// animation frame to show. Renderers never see simulation internals.
type Pose struct {
	Kind       EntityKind
	Rect       Rect     // World-space bounds
	Frames     FrameSet // Animation sequence
	Frame      int      // Index into the sequence, always in range
	FacingLeft bool     // Horizontal flip (player only)
	Moving     bool     // Platform moves horizontally
}
