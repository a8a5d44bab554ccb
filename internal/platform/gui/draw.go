package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/skyhop/internal/core"
)

const (
	stripeGap     = 100 // Distance between background stripes
	stripeHeight  = 2
	debugGlyphW   = 6 // ebitenutil debug font cell
	debugGlyphH   = 16
	eyeSize       = 6
	platformInset = 2
)

var (
	skyColor    = colornames.Midnightblue
	stripeColor = color.RGBA{R: 0x30, G: 0x30, B: 0x70, A: 0xff}
	shadeColor  = color.RGBA{A: 0xa0}
)

// poseColor picks the fill for an entity and its current frame.
func poseColor(p core.Pose) color.Color {
	switch p.Kind {
	case core.EntityPlayer:
		switch p.Frames {
		case core.FramesHit:
			if p.Frame%2 == 1 {
				return colornames.White
			}
			return colornames.Crimson
		case core.FramesDoubleJump:
			return colornames.Orange
		}
		return colornames.Deepskyblue
	case core.EntityPlatform:
		if p.Moving {
			return colornames.Mediumseagreen
		}
		return colornames.Peru
	case core.EntityCoin:
		if p.Frame%2 == 0 {
			return colornames.Gold
		}
		return colornames.Goldenrod
	case core.EntityBomb:
		if p.Frame%2 == 0 {
			return colornames.Black
		}
		return colornames.Dimgray
	}
	return colornames.White
}

// drawBackground paints the sky with stripes drifting at half the
// background scroll speed.
func drawBackground(screen *ebiten.Image, width, height, bgScroll int) {
	screen.Fill(skyColor)
	offset := (bgScroll / 2) % stripeGap
	for y := offset - stripeGap; y < height; y += stripeGap {
		vector.FillRect(screen, 0, float32(y), float32(width), stripeHeight, stripeColor, false)
	}
}

// drawPose fills an entity's bounds.
func drawPose(screen *ebiten.Image, p core.Pose) {
	r := p.Rect
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	clr := poseColor(p)

	switch p.Kind {
	case core.EntityPlatform:
		vector.FillRect(screen, x, y, w, h, clr, false)
		vector.FillRect(screen, x+platformInset, y+h-platformInset, w-2*platformInset, platformInset, colornames.Saddlebrown, false)
	case core.EntityCoin, core.EntityBomb:
		cx, cy := r.Center()
		vector.FillCircle(screen, float32(cx), float32(cy), w/2, clr, true)
	case core.EntityPlayer:
		vector.FillRect(screen, x, y, w, h, clr, false)
		// Eye on the facing side
		ex := x + w - 2*eyeSize
		if p.FacingLeft {
			ex = x + eyeSize
		}
		vector.FillRect(screen, ex, y+eyeSize, eyeSize, eyeSize, colornames.White, false)
	default:
		vector.FillRect(screen, x, y, w, h, clr, false)
	}
}

// drawHUD prints score and best along the top edge.
func drawHUD(screen *ebiten.Image, width int, st core.GameState) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", st.Score), 8, 8)
	hi := fmt.Sprintf("Hi: %d", st.HighScore)
	ebitenutil.DebugPrintAt(screen, hi, width-8-len(hi)*debugGlyphW, 8)
}

// drawCenteredLines shades the playfield and prints lines in its middle.
func drawCenteredLines(screen *ebiten.Image, width, height int, lines ...string) {
	vector.FillRect(screen, 0, 0, float32(width), float32(height), shadeColor, false)
	top := (height - len(lines)*debugGlyphH) / 2
	for i, line := range lines {
		x := (width - len(line)*debugGlyphW) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*debugGlyphH)
	}
}

// drawToast prints a short notice on a dark strip.
func drawToast(screen *ebiten.Image, text string, x, y int) {
	vector.FillRect(screen, float32(x-4), float32(y-2), float32(len(text)*debugGlyphW+8), debugGlyphH+4, shadeColor, false)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
