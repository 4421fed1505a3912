package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/view"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// BannerOptions places and styles the end-of-level message. Offset is in
// world units from the player's position.
type BannerOptions struct {
	Offset     cp.Vector
	Scale      float64
	PopSeconds float64
	Color      color.Color
}

// Banner is the "You Win!"/"You Lose!" text. It pops in with an overshooting
// scale tween.
type Banner struct {
	opts  BannerOptions
	face  ebtext.Face
	text  string
	tween *gween.Tween
	scale float64
}

func NewBanner(opts BannerOptions) *Banner {
	if opts.Scale <= 0 {
		opts.Scale = 4
	}
	if opts.PopSeconds <= 0 {
		opts.PopSeconds = 0.5
	}
	if opts.Color == nil {
		opts.Color = color.White
	}
	return &Banner{
		opts: opts,
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// Show starts the pop-in for s. An empty s hides the banner.
func (b *Banner) Show(s string) {
	b.text = s
	b.scale = 0
	if s == "" {
		b.tween = nil
		return
	}
	b.tween = gween.New(0, float32(b.opts.Scale), float32(b.opts.PopSeconds), ease.OutBack)
}

func (b *Banner) Visible() bool  { return b.text != "" }
func (b *Banner) Text() string   { return b.text }
func (b *Banner) Scale() float64 { return b.scale }

func (b *Banner) Update(dt float64) {
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(float32(dt))
	b.scale = float64(v)
	if done {
		b.scale = b.opts.Scale
		b.tween = nil
	}
}

// Draw places the banner relative to anchor, usually the player.
func (b *Banner) Draw(screen *ebiten.Image, cam *view.Camera, anchor cp.Vector) {
	if b.text == "" || b.scale <= 0 {
		return
	}
	at := bannerOrigin(cam, anchor, b.opts.Offset)

	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(b.scale, b.scale)
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(b.opts.Color)
	ebtext.Draw(screen, b.text, b.face, op)
}
