package input

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/tilemap"
)

func TestMoveX(t *testing.T) {
	cases := []struct {
		name string
		in   Intent
		want float64
	}{
		{"none", Intent{}, 0},
		{"left", Intent{Left: true}, -1},
		{"right", Intent{Right: true}, 1},
		{"left wins", Intent{Left: true, Right: true}, -1},
		{"stick", Intent{StickX: 0.5}, 0.5},
		{"stick dead zone", Intent{StickX: -0.15}, 0},
		{"keys beat stick", Intent{Right: true, StickX: -0.9}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.in.MoveX(); got != c.want {
				t.Fatalf("MoveX = %v, want %v", got, c.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	m, err := tilemap.New(3, 2, []int{0, 0, 0, 1, 1, 1}, 1, 3, 1)
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}
	player, err := entity.New(entity.Config{
		Kind:         entity.Player,
		Position:     cp.Vector{X: 1.5, Y: 0.625},
		Speed:        3,
		JumpPower:    5,
		Acceleration: cp.Vector{Y: 4.905},
		Width:        0.75,
		Height:       0.75,
	})
	if err != nil {
		t.Fatalf("entity.New: %v", err)
	}

	player.SetMovement(cp.Vector{X: 1, Y: 1})
	if Apply(Intent{Jump: true}, player) {
		t.Fatalf("jumped while airborne")
	}
	if player.Movement() != (cp.Vector{}) {
		t.Fatalf("intent not reset: %v", player.Movement())
	}

	player.Update(1.0/60.0, nil, m)
	if !player.CollidedBottom() {
		t.Fatalf("expected the player to be grounded")
	}

	if !Apply(Intent{Left: true, Jump: true}, player) {
		t.Fatalf("grounded jump was ignored")
	}
	if player.Velocity().Y != -5 {
		t.Fatalf("vy = %v, want -5", player.Velocity().Y)
	}
	if player.Movement() != (cp.Vector{X: -1}) {
		t.Fatalf("movement = %v, want left", player.Movement())
	}
}
