package sim

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/tilemap"
)

const dt = 1.0 / 60.0

// floorMap is a 12x4 map whose bottom row is solid; the floor surface is y=3.
func floorMap(t *testing.T) *tilemap.Tilemap {
	t.Helper()
	data := make([]int, 12*4)
	for col := 0; col < 12; col++ {
		data[3*12+col] = 1
	}
	m, err := tilemap.New(12, 4, data, 1, 3, 1)
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}
	return m
}

func newPlayer(t *testing.T, pos cp.Vector) *entity.Entity {
	t.Helper()
	p, err := entity.New(entity.Config{
		Kind:         entity.Player,
		Position:     pos,
		Speed:        3,
		JumpPower:    5,
		Acceleration: cp.Vector{Y: 9.8},
		Width:        0.75,
		Height:       0.75,
	})
	if err != nil {
		t.Fatalf("entity.New: %v", err)
	}
	return p
}

func newEnemy(t *testing.T, x, height float64) *entity.Entity {
	t.Helper()
	e, err := entity.New(entity.Config{
		Kind:         entity.Enemy,
		Position:     cp.Vector{X: x, Y: 3 - height/2},
		Speed:        2,
		JumpPower:    1,
		Acceleration: cp.Vector{Y: 9.8},
		Width:        0.35,
		Height:       height,
	})
	if err != nil {
		t.Fatalf("entity.New: %v", err)
	}
	return e
}

func newWorld(t *testing.T, player *entity.Entity, enemies ...*entity.Entity) *World {
	t.Helper()
	roster, err := entity.NewRoster(entity.Enemy, enemies...)
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}
	w, err := NewWorld(player, roster, nil, floorMap(t))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestStompingEveryEnemyWins(t *testing.T) {
	player := newPlayer(t, cp.Vector{X: 1, Y: 2.625})
	enemies := []*entity.Entity{
		newEnemy(t, 2, 0.35),
		newEnemy(t, 5, 0.35),
		newEnemy(t, 8, 0.35),
	}
	w := newWorld(t, player, enemies...)

	for i, e := range enemies {
		// Drop the player onto the enemy from above.
		player.SetPosition(cp.Vector{X: e.Position().X, Y: 1.5})
		player.SetVelocity(cp.Vector{})
		for n := 0; n < 120 && e.IsActive(); n++ {
			w.Step(dt)
		}
		if e.IsActive() {
			t.Fatalf("enemy %d was not stomped", i)
		}
		if w.Defeated() != i+1 {
			t.Fatalf("defeated = %d, want %d", w.Defeated(), i+1)
		}
		if i < len(enemies)-1 && w.Status() != Running {
			t.Fatalf("world stopped early with %v", w.Outcome())
		}
	}

	if w.Status() != Paused || w.Outcome() != Win {
		t.Fatalf("status %v outcome %v, want paused/win", w.Status(), w.Outcome())
	}
	if got := w.Outcome().Banner(); got != "You Win!" {
		t.Fatalf("banner = %q", got)
	}
	if w.Enemies().ActiveCount() != 0 {
		t.Fatalf("%d enemies still active", w.Enemies().ActiveCount())
	}

	events := w.Events()
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4: %+v", len(events), events)
	}
	for i := 0; i < 3; i++ {
		if events[i].Kind != EventEnemyDefeated || events[i].Enemy != i {
			t.Fatalf("event %d = %+v", i, events[i])
		}
	}
	if events[3].Kind != EventWon {
		t.Fatalf("last event = %+v, want won", events[3])
	}

	// A paused world is frozen.
	before := player.Position()
	w.Step(dt)
	if player.Position() != before {
		t.Fatalf("player moved after the level ended")
	}
}

func TestSideContactLosesImmediately(t *testing.T) {
	player := newPlayer(t, cp.Vector{X: 1, Y: 2.625})
	// Taller than the player, so the player's centre is never above its top.
	first := newEnemy(t, 3, 1)
	second := newEnemy(t, 3.2, 0.35)
	w := newWorld(t, player, first, second)

	for n := 0; n < 120 && w.Running(); n++ {
		player.SetMovement(cp.Vector{})
		player.MoveRight()
		w.Step(dt)
	}

	if w.Status() != Paused || w.Outcome() != Lose {
		t.Fatalf("status %v outcome %v, want paused/lose", w.Status(), w.Outcome())
	}
	if got := w.Outcome().Banner(); got != "You Lose!" {
		t.Fatalf("banner = %q", got)
	}
	if w.Defeated() != 0 {
		t.Fatalf("defeated = %d, want 0", w.Defeated())
	}
	if !second.IsActive() {
		t.Fatalf("contacts after the first hit must not be processed")
	}
}

func TestFallingOutLoses(t *testing.T) {
	m, err := tilemap.New(4, 2, make([]int, 8), 1, 1, 1)
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}
	player := newPlayer(t, cp.Vector{X: 1, Y: 1})
	w, err := NewWorld(player, nil, nil, m)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	for n := 0; n < 600 && w.Running(); n++ {
		w.Step(dt)
	}
	if w.Outcome() != Lose {
		t.Fatalf("outcome = %v, want lose", w.Outcome())
	}
	if top := player.Bounds().Top(); top <= 2+w.FallMargin {
		t.Fatalf("lost before leaving the map: top %v", top)
	}
}

func TestBrainsDriveEnemies(t *testing.T) {
	player := newPlayer(t, cp.Vector{X: 10, Y: 2.625})
	enemy := newEnemy(t, 3, 0.35)
	w := newWorld(t, player, enemy)

	if err := w.SetBrain(1, nil); !errors.Is(err, entity.ErrIndexOutOfRange) {
		t.Fatalf("SetBrain(1) err = %v", err)
	}
	walkLeft := BrainFunc(func(self, _ *entity.Entity, _ *tilemap.Tilemap) cp.Vector {
		return cp.Vector{X: -1}
	})
	if err := w.SetBrain(0, walkLeft); err != nil {
		t.Fatalf("SetBrain: %v", err)
	}

	for n := 0; n < 30; n++ {
		w.Step(dt)
	}
	if x := enemy.Position().X; x >= 3 {
		t.Fatalf("enemy did not walk left: x = %v", x)
	}
	if enemy.Sprite().Direction() != entity.Left {
		t.Fatalf("enemy facing %v", enemy.Sprite().Direction())
	}
}

func TestQuit(t *testing.T) {
	w := newWorld(t, newPlayer(t, cp.Vector{X: 1, Y: 2.625}))
	if err := w.Quit(); err != nil {
		t.Fatalf("Quit: %v", err)
	}
	if w.Status() != Terminated {
		t.Fatalf("status = %v", w.Status())
	}
	if err := w.Quit(); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("second Quit err = %v", err)
	}
	w.Step(dt)
	if w.Steps() != 0 {
		t.Fatalf("terminated world stepped")
	}
}

func TestNewWorldValidates(t *testing.T) {
	enemy := newEnemy(t, 1, 0.35)
	if _, err := NewWorld(enemy, nil, nil, floorMap(t)); err == nil {
		t.Fatalf("expected error for non-player")
	}
	if _, err := NewWorld(newPlayer(t, cp.Vector{}), nil, nil, nil); err == nil {
		t.Fatalf("expected error for missing map")
	}
	platforms, _ := entity.NewRoster(entity.Platform)
	if _, err := NewWorld(newPlayer(t, cp.Vector{}), platforms, nil, floorMap(t)); err == nil {
		t.Fatalf("expected error for mismatched roster")
	}
}
