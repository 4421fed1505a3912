package view

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/common"
)

// Camera maps world units to screen pixels. It tracks a target's X exactly
// and keeps a fixed world Y at the centre of the screen.
type Camera struct {
	screenW float64
	screenH float64
	ppu     float64
	centerY float64
	x       float64
}

// New builds a camera for a screen of w by h pixels showing ppu pixels per
// world unit, with world y=centerY on the screen's horizontal midline.
func New(w, h int, ppu, centerY float64) *Camera {
	if ppu <= 0 {
		ppu = 1
	}
	return &Camera{
		screenW: float64(w),
		screenH: float64(h),
		ppu:     ppu,
		centerY: centerY,
	}
}

// Follow snaps the camera to x. There is no smoothing.
func (c *Camera) Follow(x float64) {
	c.x = x
}

// Resize updates the screen size in pixels.
func (c *Camera) Resize(w, h int) {
	c.screenW = float64(w)
	c.screenH = float64(h)
}

func (c *Camera) PixelsPerUnit() float64 { return c.ppu }

// Center is the world point at the middle of the screen.
func (c *Camera) Center() cp.Vector {
	return cp.Vector{X: c.x, Y: c.centerY}
}

func (c *Camera) WorldToScreen(p cp.Vector) cp.Vector {
	return cp.Vector{
		X: (p.X-c.x)*c.ppu + c.screenW/2,
		Y: (p.Y-c.centerY)*c.ppu + c.screenH/2,
	}
}

func (c *Camera) ScreenToWorld(p cp.Vector) cp.Vector {
	return cp.Vector{
		X: (p.X-c.screenW/2)/c.ppu + c.x,
		Y: (p.Y-c.screenH/2)/c.ppu + c.centerY,
	}
}

// ScreenRect converts a world rect into screen pixels.
func (c *Camera) ScreenRect(r common.Rect) common.Rect {
	tl := c.WorldToScreen(cp.Vector{X: r.X, Y: r.Y})
	return common.Rect{X: tl.X, Y: tl.Y, Width: r.Width * c.ppu, Height: r.Height * c.ppu}
}

// Visible reports whether any part of the world rect r is on screen.
func (c *Camera) Visible(r common.Rect) bool {
	screen := common.Rect{Width: c.screenW, Height: c.screenH}
	return c.ScreenRect(r).Intersects(screen)
}
