package jumper

import (
	"fmt"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	BombChar     = '●'
	StarChar     = '·'
)

var (
	idleRunes       = []rune{'█'}
	doubleJumpRunes = []rune{'▲', '◆', '▼', '◆', '▲'}
	hitRunes        = []rune{'▓', '▒', '░', '▒', '▓', '▒', '╳'}
	coinRunes       = []rune{'o', 'O', '0'}
)

// starCount is the number of background stars drawn per screen.
const starCount = 24

// frameRune picks the glyph for a frame, cycling if the glyph list is shorter.
func frameRune(runes []rune, frame int) rune {
	return runes[frame%len(runes)]
}

// viewport maps world units onto screen cells below the HUD row.
type viewport struct {
	worldW, worldH int
	cols, rows     int
}

func (v viewport) rect(r core.Rect) core.Rect {
	x0 := floorDiv(r.Left()*v.cols, v.worldW)
	x1 := floorDiv(r.Right()*v.cols, v.worldW)
	y0 := floorDiv(r.Top()*v.rows, v.worldH)
	y1 := floorDiv(r.Bottom()*v.rows, v.worldH)
	// Every visible entity covers at least one cell
	return core.NewRect(x0, y0+1, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// floorDiv divides rounding toward negative infinity, so entities above
// the top edge stay off screen.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	worldW, worldH := g.world.Size()
	vp := viewport{worldW: worldW, worldH: worldH, cols: dst.Width(), rows: dst.Height() - 1}
	if vp.cols <= 0 || vp.rows <= 0 {
		return
	}

	g.drawStars(dst, vp)

	for _, pose := range g.world.Poses() {
		r := vp.rect(pose.Rect)
		switch pose.Kind {
		case core.EntityPlatform:
			c := core.ColorGreen
			if pose.Moving {
				c = core.ColorCyan
			}
			dst.DrawHLineColored(r.X, r.Y, r.W, PlatformChar, c)
		case core.EntityCoin:
			cx, cy := r.Center()
			dst.SetColored(cx, cy, frameRune(coinRunes, pose.Frame), core.ColorBrightYellow)
		case core.EntityBomb:
			cx, cy := r.Center()
			dst.SetColored(cx, cy, BombChar, core.ColorBrightRed)
		case core.EntityPlayer:
			g.drawPlayer(dst, r, pose)
		}
	}

	// HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", g.world.Score()), core.ColorBrightWhite)
	hi := fmt.Sprintf(" Hi: %d ", g.world.HighScore())
	dst.DrawTextColored(dst.Width()-len(hi)-1, 0, hi, core.ColorYellow)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.world.GameOver() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R or Space to restart", g.world.Score()))
	}
}

// drawStars scatters a fixed star pattern that drifts down with the background scroll.
func (g *Game) drawStars(dst *core.Screen, vp viewport) {
	offset := g.world.BackgroundScroll()
	for i := range starCount {
		x := (i*173 + 41) % vp.worldW
		y := (i*311 + offset) % vp.worldH
		dst.SetColored(x*vp.cols/vp.worldW, y*vp.rows/vp.worldH+1, StarChar, core.ColorGray)
	}
}

// drawPlayer fills the player's cells with the glyph for its current frame.
func (g *Game) drawPlayer(dst *core.Screen, r core.Rect, pose core.Pose) {
	var (
		ch    rune
		color core.Color
	)
	switch pose.Frames {
	case core.FramesHit:
		ch, color = frameRune(hitRunes, pose.Frame), core.ColorRed
	case core.FramesDoubleJump:
		ch, color = frameRune(doubleJumpRunes, pose.Frame), core.ColorBrightMagenta
	default:
		ch, color = frameRune(idleRunes, pose.Frame), core.ColorBrightWhite
	}
	dst.DrawRectColored(r, ch, color)

	// Facing marker on the leading edge
	eye := r.Right() - 1
	if pose.FacingLeft {
		eye = r.Left()
	}
	if r.W > 1 {
		dst.SetColored(eye, r.Y, '•', core.ColorBlue)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
