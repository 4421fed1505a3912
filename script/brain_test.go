package script

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/tilemap"
)

const dt = 1.0 / 60.0

// ledgeMap is 5x2 with a three-tile ledge in the bottom row (columns 1-3).
func ledgeMap(t *testing.T) *tilemap.Tilemap {
	t.Helper()
	m, err := tilemap.New(5, 2, []int{
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
	}, 1, 3, 1)
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}
	return m
}

func groundedEnemy(t *testing.T, m *tilemap.Tilemap, x float64) *entity.Entity {
	t.Helper()
	e, err := entity.New(entity.Config{
		Kind:         entity.Enemy,
		Position:     cp.Vector{X: x, Y: 0.825},
		Speed:        2,
		Acceleration: cp.Vector{Y: 9.8},
		Width:        0.35,
		Height:       0.35,
	})
	if err != nil {
		t.Fatalf("entity.New: %v", err)
	}
	e.Update(dt, nil, m)
	if !e.CollidedBottom() {
		t.Fatalf("enemy at x=%v is not grounded", x)
	}
	return e
}

func player(t *testing.T, x float64) *entity.Entity {
	t.Helper()
	p, err := entity.New(entity.Config{Kind: entity.Player, Position: cp.Vector{X: x, Y: 0.5}, Width: 0.75, Height: 0.75})
	if err != nil {
		t.Fatalf("entity.New: %v", err)
	}
	return p
}

func TestIdleBrain(t *testing.T) {
	lib := NewLibrary(nil)
	b, err := lib.NewBrain("")
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	if b.Name() != DefaultBrain {
		t.Fatalf("name = %q", b.Name())
	}
	m := ledgeMap(t)
	if got := b.Think(groundedEnemy(t, m, 2.5), player(t, 1), m); got != (cp.Vector{}) {
		t.Fatalf("idle moved %v", got)
	}
}

func TestPatrolTurnsAtLedge(t *testing.T) {
	m := ledgeMap(t)
	lib := NewLibrary(nil)
	b, err := lib.NewBrain("patrol")
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	p := player(t, 4.5)

	if got := b.Think(groundedEnemy(t, m, 2.5), p, m); got.X != -1 {
		t.Fatalf("patrol starts with %v, want left", got)
	}
	if got := b.Think(groundedEnemy(t, m, 1.2), p, m); got.X != 1 {
		t.Fatalf("patrol at the left ledge = %v, want right", got)
	}
	if got := b.Think(groundedEnemy(t, m, 2.5), p, m); got.X != 1 {
		t.Fatalf("patrol forgot its direction: %v", got)
	}
	if got := b.Think(groundedEnemy(t, m, 3.8), p, m); got.X != -1 {
		t.Fatalf("patrol at the right ledge = %v, want left", got)
	}

	// Another brain from the same program starts fresh.
	other, err := lib.NewBrain("patrol.tengo")
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	if got := other.Think(groundedEnemy(t, m, 2.5), p, m); got.X != -1 {
		t.Fatalf("clone shares state: %v", got)
	}
}

func TestChaseBrain(t *testing.T) {
	m := ledgeMap(t)
	b, err := NewLibrary(nil).NewBrain("chase")
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	e := groundedEnemy(t, m, 2.5)

	cases := []struct {
		playerX float64
		want    float64
	}{
		{4, 1},
		{0.5, -1},
		{20, 0},
		{-20, 0},
	}
	for _, c := range cases {
		if got := b.Think(e, player(t, c.playerX), m); got.X != c.want {
			t.Fatalf("player at %v: move %v, want %v", c.playerX, got, c.want)
		}
	}
}

func TestScriptErrors(t *testing.T) {
	sources := map[string]string{
		"broken":   `think := func(self, player, state) {`,
		"explodes": `think := func(self, player, state) { return self.x / "nope" }`,
		"pair":     `think := func(self, player, state) { return [0.5, -1] }`,
	}
	lib := NewLibrary(func(name string) ([]byte, error) {
		src, ok := sources[name]
		if !ok {
			return nil, errors.New("not found")
		}
		return []byte(src), nil
	})

	if _, err := lib.NewBrain("missing"); err == nil {
		t.Fatalf("expected load error")
	}
	if err := lib.Compile("broken"); err == nil {
		t.Fatalf("expected compile error")
	}
	if lib.Has("broken") {
		t.Fatalf("failed compile was cached")
	}

	m := ledgeMap(t)
	e := groundedEnemy(t, m, 2.5)

	b, err := lib.NewBrain("explodes")
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	if got := b.Think(e, player(t, 1), m); got != (cp.Vector{}) {
		t.Fatalf("runtime error should yield zero intent, got %v", got)
	}

	b, err = lib.NewBrain("pair")
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	if got := b.Think(e, player(t, 1), m); got != (cp.Vector{X: 0.5, Y: -1}) {
		t.Fatalf("pair = %v", got)
	}
}
