package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stomper/tilemap"
	"github.com/milk9111/stomper/view"
)

// DrawTilemap draws the visible quads of m from the tileset sheet.
func DrawTilemap(screen, sheet *ebiten.Image, m *tilemap.Tilemap, quads []tilemap.Quad, cam *view.Camera) {
	if sheet == nil || m == nil {
		return
	}
	sb := sheet.Bounds()
	for _, q := range quads {
		if !cam.Visible(q.World) {
			continue
		}
		src, ok := sheet.SubImage(uvRect(q.UV, sb.Dx(), sb.Dy()).Add(sb.Min)).(*ebiten.Image)
		if !ok {
			continue
		}
		w, h := src.Bounds().Dx(), src.Bounds().Dy()
		if w == 0 || h == 0 {
			continue
		}
		dst := cam.ScreenRect(q.World)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(dst.Width/float64(w), dst.Height/float64(h))
		op.GeoM.Translate(dst.X, dst.Y)
		screen.DrawImage(src, op)
	}
}
