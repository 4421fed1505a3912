package render

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const controlsHint = "Arrows/A/D move  Space jump  Q quit"

type HUDOptions struct {
	Color      color.Color
	Background color.Color
}

// HUD shows the defeated counter and a controls hint in the top-left corner.
type HUD struct {
	ui       *ebitenui.UI
	counter  *widget.Text
	defeated int
	total    int
}

func NewHUD(opts HUDOptions) *HUD {
	fg := opts.Color
	if fg == nil {
		fg = color.White
	}
	bg := opts.Background
	if bg == nil {
		bg = color.NRGBA{A: 0x88}
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	counter := widget.NewText(
		widget.TextOpts.Text(counterLabel(0, 0), &face, fg),
	)
	hint := widget.NewText(
		widget.TextOpts.Text(controlsHint, &face, fg),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(counter)
	panel.AddChild(hint)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 10, Left: 10}),
		)),
	)
	root.AddChild(panel)

	return &HUD{
		ui:      &ebitenui.UI{Container: root},
		counter: counter,
	}
}

// Update refreshes the counter and runs the UI.
func (h *HUD) Update(defeated, total int) {
	if defeated != h.defeated || total != h.total {
		h.defeated, h.total = defeated, total
		h.counter.Label = counterLabel(defeated, total)
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func counterLabel(defeated, total int) string {
	return fmt.Sprintf("Enemies: %d/%d", defeated, total)
}
