package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/sim"
	"github.com/milk9111/stomper/tilemap"
	"github.com/milk9111/stomper/view"
	"golang.org/x/image/colornames"
)

// Sheets holds the textures the renderer draws from. Any of them may be nil.
type Sheets struct {
	Background *ebiten.Image
	Tileset    *ebiten.Image
	Player     *ebiten.Image
	Enemy      *ebiten.Image
	Platform   *ebiten.Image
}

// Options configures a Renderer.
type Options struct {
	Background color.Color
	Banner     BannerOptions
	HUD        HUDOptions
	Debug      bool
}

// Renderer draws a sim.World through a view.Camera.
type Renderer struct {
	cam    *view.Camera
	sheets Sheets
	bg     color.Color
	banner *Banner
	hud    *HUD
	debug  bool

	quadsFor *tilemap.Tilemap
	quads    []tilemap.Quad
}

func New(cam *view.Camera, sheets Sheets, opts Options) *Renderer {
	bg := opts.Background
	if bg == nil {
		bg = colornames.Cornflowerblue
	}
	return &Renderer{
		cam:    cam,
		sheets: sheets,
		bg:     bg,
		banner: NewBanner(opts.Banner),
		hud:    NewHUD(opts.HUD),
		debug:  opts.Debug,
	}
}

func (r *Renderer) Camera() *view.Camera { return r.cam }

// Update advances UI state. dt is the frame time in seconds.
func (r *Renderer) Update(w *sim.World, dt float64) {
	if w.Status() == sim.Paused && !r.banner.Visible() {
		r.banner.Show(w.Outcome().Banner())
	}
	r.banner.Update(dt)
	r.hud.Update(w.Defeated(), w.Enemies().Len())
}

// Draw renders one frame: background, map, platforms, player, enemies, the
// end banner while paused, the HUD and the debug overlay.
func (r *Renderer) Draw(screen *ebiten.Image, w *sim.World) {
	screen.Fill(r.bg)
	r.drawBackground(screen)

	m := w.Tilemap()
	if r.quadsFor != m {
		r.quads = m.Quads()
		r.quadsFor = m
	}
	DrawTilemap(screen, r.sheets.Tileset, m, r.quads, r.cam)

	for _, p := range w.Platforms().Active() {
		DrawEntity(screen, r.sheets.Platform, p, r.cam)
	}
	DrawEntity(screen, r.sheets.Player, w.Player(), r.cam)
	for _, e := range w.Enemies().Active() {
		DrawEntity(screen, r.sheets.Enemy, e, r.cam)
	}

	if w.Status() == sim.Paused {
		r.banner.Draw(screen, r.cam, w.Player().Position())
	}
	r.hud.Draw(screen)

	if r.debug {
		drawDebug(screen, w, r.cam)
	}
}

func (r *Renderer) drawBackground(screen *ebiten.Image) {
	img := r.sheets.Background
	if img == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
	screen.DrawImage(img, op)
}

// DrawEntity draws e's current frame as a square of VisualScale world units
// centred on its position.
func DrawEntity(screen, sheet *ebiten.Image, e *entity.Entity, cam *view.Camera) {
	if sheet == nil || !e.IsActive() {
		return
	}
	src := sheet
	if !e.Sprite().Static() {
		b := sheet.Bounds()
		sub, ok := sheet.SubImage(e.Sprite().SourceRect(b.Dx(), b.Dy())).(*ebiten.Image)
		if !ok {
			return
		}
		src = sub
	}

	dst := spriteRect(e, cam)
	if !dst.Intersects(screenRect(screen)) {
		return
	}
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(sb.Dx()), dst.Height/float64(sb.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	screen.DrawImage(src, op)
}
