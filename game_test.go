package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/prefabs"
	"github.com/milk9111/stomper/view"
)

func TestLayoutFResizesCamera(t *testing.T) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	g := &Game{
		spec: spec,
		cam:  view.New(spec.Window.Width, spec.Window.Height, spec.PixelsPerUnit, spec.CameraY),
	}
	g.cam.Follow(4)

	tests := []struct {
		name         string
		outW, outH   float64
		wantW, wantH float64
	}{
		{"resized", 800, 600, 800, 600},
		{"minimised", 0, 0, float64(spec.Window.Width), float64(spec.Window.Height)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := g.LayoutF(tt.outW, tt.outH)
			if w != tt.wantW || h != tt.wantH {
				t.Fatalf("LayoutF = %vx%v, want %vx%v", w, h, tt.wantW, tt.wantH)
			}
			got := g.cam.WorldToScreen(g.cam.Center())
			if want := (cp.Vector{X: tt.wantW / 2, Y: tt.wantH / 2}); got != want {
				t.Fatalf("camera centre maps to %v, want %v", got, want)
			}
		})
	}
}
