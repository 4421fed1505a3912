package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/entity"
	"github.com/milk9111/stomper/tilemap"
)

// DefaultFallMargin is how far below the map the player may fall before the
// level is lost.
const DefaultFallMargin = 2.0

// Brain picks an enemy's movement intent each step. X is the walk direction;
// a negative Y asks for a jump and is honoured only when grounded.
type Brain interface {
	Think(self, player *entity.Entity, m *tilemap.Tilemap) cp.Vector
}

// BrainFunc adapts a function to Brain.
type BrainFunc func(self, player *entity.Entity, m *tilemap.Tilemap) cp.Vector

func (f BrainFunc) Think(self, player *entity.Entity, m *tilemap.Tilemap) cp.Vector {
	return f(self, player, m)
}

// World is the simulation state of one level run. It is owned by the loop
// goroutine.
type World struct {
	player    *entity.Entity
	enemies   *entity.Roster
	platforms *entity.Roster
	tiles     *tilemap.Tilemap
	brains    []Brain

	status   Status
	outcome  Outcome
	defeated int
	steps    uint64
	events   EventQueue

	FallMargin float64
	Debug      bool
}

func NewWorld(player *entity.Entity, enemies, platforms *entity.Roster, m *tilemap.Tilemap) (*World, error) {
	if player == nil || player.Kind() != entity.Player {
		return nil, errors.New("sim: world needs a player entity")
	}
	if m == nil {
		return nil, errors.New("sim: world needs a tilemap")
	}
	if enemies == nil {
		enemies, _ = entity.NewRoster(entity.Enemy)
	}
	if platforms == nil {
		platforms, _ = entity.NewRoster(entity.Platform)
	}
	if enemies.Kind() != entity.Enemy {
		return nil, fmt.Errorf("sim: enemy roster holds %s", enemies.Kind())
	}
	if platforms.Kind() != entity.Platform {
		return nil, fmt.Errorf("sim: platform roster holds %s", platforms.Kind())
	}
	return &World{
		player:     player,
		enemies:    enemies,
		platforms:  platforms,
		tiles:      m,
		brains:     make([]Brain, enemies.Len()),
		status:     Running,
		FallMargin: DefaultFallMargin,
	}, nil
}

func (w *World) Player() *entity.Entity    { return w.player }
func (w *World) Enemies() *entity.Roster   { return w.enemies }
func (w *World) Platforms() *entity.Roster { return w.platforms }
func (w *World) Tilemap() *tilemap.Tilemap { return w.tiles }
func (w *World) Status() Status            { return w.status }
func (w *World) Outcome() Outcome          { return w.outcome }
func (w *World) Defeated() int             { return w.defeated }
func (w *World) Steps() uint64             { return w.steps }
func (w *World) Events() []Event           { return w.events.Drain() }
func (w *World) Running() bool             { return w.status == Running }

// SetBrain attaches b to the i-th enemy. A nil brain leaves the enemy idle.
func (w *World) SetBrain(i int, b Brain) error {
	if _, err := w.enemies.At(i); err != nil {
		return err
	}
	w.brains[i] = b
	return nil
}

// Quit terminates the run from any live status.
func (w *World) Quit() error {
	next, err := w.status.Transition(Terminated)
	if err != nil {
		return err
	}
	w.status = next
	return nil
}

// Step advances the world by dt. It does nothing unless the world is running.
func (w *World) Step(dt float64) {
	if w.status != Running {
		return
	}
	w.steps++

	for i, e := range w.enemies.Active() {
		b := w.brains[i]
		if b == nil {
			continue
		}
		want := b.Think(e, w.player, w.tiles)
		e.SetMovement(cp.Vector{X: want.X})
		if want.Y < 0 && e.CollidedBottom() {
			e.Jump()
		}
	}

	w.player.Update(dt, w.platforms, w.tiles)
	if w.Debug {
		p := w.player.Position()
		log.Printf("sim: step %d player at (%.3f, %.3f)", w.steps, p.X, p.Y)
	}

	for i, e := range w.enemies.Active() {
		e.Update(dt, w.platforms, w.tiles)

		switch ResolveContact(w.player, e) {
		case Stomp:
			e.Deactivate()
			w.defeated++
			w.events.Push(Event{Kind: EventEnemyDefeated, Enemy: i, Step: w.steps})
			if w.defeated == w.enemies.Len() {
				w.finish(Win)
				return
			}
		case Hit:
			w.finish(Lose)
			return
		}
	}

	_, mapHeight := w.tiles.Size()
	if w.player.Bounds().Top() > mapHeight+w.FallMargin {
		w.finish(Lose)
	}
}

func (w *World) finish(o Outcome) {
	next, err := w.status.Transition(Paused)
	if err != nil {
		log.Printf("sim: %v", err)
		return
	}
	w.status = next
	w.outcome = o

	kind := EventWon
	if o == Lose {
		kind = EventLost
	}
	w.events.Push(Event{Kind: kind, Enemy: -1, Step: w.steps})
	log.Printf("sim: level over after %d steps: %s (%d/%d enemies defeated)", w.steps, o, w.defeated, w.enemies.Len())
}
