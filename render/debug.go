package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/stomper/common"
	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/sim"
	"github.com/milk9111/stomper/view"
)

var (
	tileBoxColor   = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	playerBoxColor = color.RGBA{G: 255, A: 200}
	enemyBoxColor  = color.RGBA{R: 255, A: 200}
	platBoxColor   = color.RGBA{B: 255, A: 200}
)

func drawDebug(screen *ebiten.Image, w *sim.World, cam *view.Camera) {
	m := w.Tilemap()
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			if id, _ := m.TileAt(col, row); id == 0 {
				continue
			}
			strokeBox(screen, cam, m.Bounds(col, row), tileBoxColor)
		}
	}

	for _, p := range w.Platforms().Active() {
		strokeBox(screen, cam, p.Bounds(), platBoxColor)
	}
	for _, e := range w.Enemies().Active() {
		strokeBox(screen, cam, e.Bounds(), enemyBoxColor)
	}
	player := w.Player()
	strokeBox(screen, cam, player.Bounds(), playerBoxColor)

	pos, vel := player.Position(), player.Velocity()
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f  step: %d\npos: (%.2f, %.2f)  vel: (%.2f, %.2f)\ncontacts: %s  status: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), w.Steps(),
		pos.X, pos.Y, vel.X, vel.Y,
		contactString(player.Contacts()), w.Status())
	ebitenutil.DebugPrintAt(screen, msg, 10, screen.Bounds().Dy()-56)
}

func strokeBox(screen *ebiten.Image, cam *view.Camera, r common.Rect, clr color.Color) {
	if !cam.Visible(r) {
		return
	}
	s := cam.ScreenRect(r)
	vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), 1.0, clr, false)
}

func contactString(c entity.Contacts) string {
	out := []byte("----")
	if c.Top {
		out[0] = 'T'
	}
	if c.Bottom {
		out[1] = 'B'
	}
	if c.Left {
		out[2] = 'L'
	}
	if c.Right {
		out[3] = 'R'
	}
	return string(out)
}
