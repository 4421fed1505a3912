package render

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/common"
	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/tilemap"
	"github.com/milk9111/stomper/view"
)

// spriteRect is the on-screen box of e's visual square. Platforms use their
// collision extents scaled by VisualScale instead of a square.
func spriteRect(e *entity.Entity, cam *view.Camera) common.Rect {
	w := e.VisualScale()
	h := e.VisualScale()
	if e.Kind() == entity.Platform {
		w *= e.Width()
		h *= e.Height()
	}
	return cam.ScreenRect(common.RectFromCenter(e.Position(), w, h))
}

// uvRect converts a normalised UV box into sheet pixels.
func uvRect(uv tilemap.UV, sheetW, sheetH int) image.Rectangle {
	x0 := int(math.Round(uv.U * float64(sheetW)))
	y0 := int(math.Round(uv.V * float64(sheetH)))
	x1 := int(math.Round((uv.U + uv.W) * float64(sheetW)))
	y1 := int(math.Round((uv.V + uv.H) * float64(sheetH)))
	return image.Rect(x0, y0, x1, y1)
}

func screenRect(screen *ebiten.Image) common.Rect {
	b := screen.Bounds()
	return common.Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// bannerOrigin is where the banner text starts on screen.
func bannerOrigin(cam *view.Camera, anchor, offset cp.Vector) cp.Vector {
	return cam.WorldToScreen(anchor.Add(offset))
}
