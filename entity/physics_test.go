package entity

import (
	"fmt"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func platformRoster(t *testing.T, ps ...*Entity) *Roster {
	t.Helper()
	r, err := NewRoster(Platform, ps...)
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}
	return r
}

func TestWalkAcrossPlatform(t *testing.T) {
	const dt = 0.0166666
	for _, y := range []float64{0.7, 1.1, 2, 3.7, 4.3, 5.6} {
		for _, dir := range []struct {
			name   string
			startX float64
			move   func(e *Entity)
		}{
			{"right", 9.05, (*Entity).MoveRight},
			{"left", 9.95, (*Entity).MoveLeft},
		} {
			t.Run(fmt.Sprintf("%s y=%v", dir.name, y), func(t *testing.T) {
				p := mustEntity(t, Config{Kind: Platform, Position: cp.Vector{X: 9.5, Y: y}, Width: 1, Height: 0.4})
				platforms := platformRoster(t, p)
				e := mustEntity(t, Config{
					Kind:         Player,
					Position:     cp.Vector{X: dir.startX, Y: y - 1},
					Speed:        3,
					JumpPower:    5,
					Acceleration: cp.Vector{Y: 4.905},
					Width:        0.75,
					Height:       0.75,
					Animation:    walkAnimation(),
				})
				for i := 0; i < 600 && !e.CollidedBottom(); i++ {
					e.Update(dt, platforms, nil)
				}
				if !e.CollidedBottom() {
					t.Fatalf("y=%v: player never landed, at %v", y, e.Position())
				}

				startX := e.Position().X
				for i := 0; i < 10; i++ {
					e.SetMovement(cp.Vector{})
					dir.move(e)
					e.Update(dt, platforms, nil)
					c := e.Contacts()
					if c.Left || c.Right {
						t.Fatalf("y=%v step %d: false side contact %+v at %v", y, i, c, e.Position())
					}
					if !c.Bottom {
						t.Fatalf("y=%v step %d: player left the platform at %v", y, i, e.Position())
					}
				}
				if moved := math.Abs(e.Position().X - startX); math.Abs(moved-10*3*dt) > 1e-9 {
					t.Fatalf("y=%v: moved %v, want %v", y, moved, 10*3*dt)
				}
			})
		}
	}
}

func TestFirstContactPerSideWins(t *testing.T) {
	// The platform's top sits inside the solid row, so the map would snap the
	// entity a second time if the bottom flag could be set twice.
	m := mustMap(t, 3, 4, []int{
		0, 0, 0,
		0, 0, 0,
		1, 1, 1,
		0, 0, 0,
	})
	p := mustEntity(t, Config{Kind: Platform, Position: cp.Vector{X: 1.5, Y: 2.75}, Width: 1, Height: 0.5})
	e := mover(t, cp.Vector{X: 1.5, Y: 2}, cp.Vector{})
	e.SetVelocity(cp.Vector{Y: 1})

	e.Update(0.5, platformRoster(t, p), m)

	if !e.CollidedBottom() {
		t.Fatalf("expected bottom contact")
	}
	if got := e.Position().Y; got != 2.25 {
		t.Fatalf("y = %v, want 2.25 from the platform snap only", got)
	}
	if e.Velocity().Y != 0 {
		t.Fatalf("vertical velocity = %v, want 0", e.Velocity().Y)
	}
	if c := e.Contacts(); c.Top || c.Left || c.Right {
		t.Fatalf("unexpected contacts %+v", c)
	}
}
