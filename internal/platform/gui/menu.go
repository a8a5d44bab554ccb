package gui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/skyhop/internal/registry"
)

// soundLabel is the sound button caption for the given state.
func soundLabel(on bool) string {
	if on {
		return "Sound: On"
	}
	return "Sound: Off"
}

// buildMenu creates the main menu: one start button per game, the sound
// switch and exit.
func (w *Window) buildMenu() *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnIdle := imageui.NewNineSliceColor(colornames.Darkslateblue)
	btnHover := imageui.NewNineSliceColor(colornames.Slateblue)
	btnPressed := imageui.NewNineSliceColor(colornames.Mediumslateblue)

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: colornames.White}
	btnImage := &widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnPressed}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w.width/2, w.height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("S K Y   H O P", &face, colornames.Gold),
		widget.TextOpts.WidgetOpts(center),
	))

	w.bestText = widget.NewText(
		widget.TextOpts.Text(w.bestLabel(), &face, colornames.Lightgray),
		widget.TextOpts.WidgetOpts(center),
	)
	panel.AddChild(w.bestText)

	for _, info := range registry.List() {
		id := info.ID
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImage),
			widget.ButtonOpts.Text("Play "+info.Title, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				w.start(id)
			}),
		))
	}

	if w.opts.Sound != nil {
		w.soundBtn = widget.NewButton(
			widget.ButtonOpts.Image(btnImage),
			widget.ButtonOpts.Text(soundLabel(w.opts.Sound.Enabled()), &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				w.toggleSound()
			}),
		)
		panel.AddChild(w.soundBtn)
	}

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(btnImage),
		widget.ButtonOpts.Text("Exit", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			w.quit = true
		}),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// bestLabel summarises persisted best scores for the menu.
func (w *Window) bestLabel() string {
	if w.opts.HighScores == nil {
		return "Hop as high as you can"
	}
	best := 0
	for _, info := range registry.List() {
		best = max(best, w.opts.HighScores.Load(info.ID))
	}
	if best == 0 {
		return "Hop as high as you can"
	}
	return fmt.Sprintf("Best: %d", best)
}

// refreshMenu updates labels that change while the menu is hidden.
func (w *Window) refreshMenu() {
	if w.bestText != nil {
		w.bestText.Label = w.bestLabel()
	}
	if w.soundBtn != nil && w.opts.Sound != nil {
		if text := w.soundBtn.Text(); text != nil {
			text.Label = soundLabel(w.opts.Sound.Enabled())
		}
	}
}
