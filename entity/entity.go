package entity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/common"
)

var ErrInvalidExtents = errors.New("entity: width and height must be positive")

// Kind tags what an entity is in the level.
type Kind int

const (
	Player Kind = iota
	Enemy
	Platform
)

func (k Kind) String() string {
	switch k {
	case Player:
		return "player"
	case Enemy:
		return "enemy"
	case Platform:
		return "platform"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Lifecycle is either Active or Defeated.
type Lifecycle interface {
	lifecycle()
}

type Active struct{}

// Defeated entities are skipped by Update and never yielded by Roster.Active.
type Defeated struct{}

func (Active) lifecycle()   {}
func (Defeated) lifecycle() {}

// Side names one of the four collision sides.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Contacts holds the per-step collision flags.
type Contacts struct {
	Top, Bottom, Left, Right bool
}

// Config seeds a new Entity.
type Config struct {
	Kind         Kind
	Position     cp.Vector
	Speed        float64
	JumpPower    float64
	Acceleration cp.Vector
	Width        float64
	Height       float64
	VisualScale  float64
	Animation    Animation
}

// Entity is a player, enemy or platform.
type Entity struct {
	kind      Kind
	lifecycle Lifecycle

	pos    cp.Vector
	vel    cp.Vector
	accel  cp.Vector
	intent cp.Vector

	speed     float64
	jumpPower float64

	width       float64
	height      float64
	visualScale float64

	contacts Contacts
	sprite   Sprite
}

func New(cfg Config) (*Entity, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %s %gx%g", ErrInvalidExtents, cfg.Kind, cfg.Width, cfg.Height)
	}
	scale := cfg.VisualScale
	if scale <= 0 {
		scale = 1
	}
	return &Entity{
		kind:        cfg.Kind,
		lifecycle:   Active{},
		pos:         cfg.Position,
		accel:       cfg.Acceleration,
		speed:       cfg.Speed,
		jumpPower:   cfg.JumpPower,
		width:       cfg.Width,
		height:      cfg.Height,
		visualScale: scale,
		sprite:      NewSprite(cfg.Animation),
	}, nil
}

func (e *Entity) Kind() Kind              { return e.kind }
func (e *Entity) Lifecycle() Lifecycle    { return e.lifecycle }
func (e *Entity) Position() cp.Vector     { return e.pos }
func (e *Entity) Velocity() cp.Vector     { return e.vel }
func (e *Entity) Acceleration() cp.Vector { return e.accel }
func (e *Entity) Movement() cp.Vector     { return e.intent }
func (e *Entity) Speed() float64          { return e.speed }
func (e *Entity) JumpPower() float64      { return e.jumpPower }
func (e *Entity) Width() float64          { return e.width }
func (e *Entity) Height() float64         { return e.height }
func (e *Entity) VisualScale() float64    { return e.visualScale }
func (e *Entity) Contacts() Contacts      { return e.contacts }
func (e *Entity) Sprite() *Sprite         { return &e.sprite }

func (e *Entity) CollidedTop() bool    { return e.contacts.Top }
func (e *Entity) CollidedBottom() bool { return e.contacts.Bottom }
func (e *Entity) CollidedLeft() bool   { return e.contacts.Left }
func (e *Entity) CollidedRight() bool  { return e.contacts.Right }

// IsActive reports whether the entity still takes part in the level.
func (e *Entity) IsActive() bool {
	if e == nil {
		return false
	}
	_, ok := e.lifecycle.(Active)
	return ok
}

// Deactivate marks the entity Defeated. Later updates are no-ops.
func (e *Entity) Deactivate() {
	e.lifecycle = Defeated{}
}

func (e *Entity) SetPosition(p cp.Vector) { e.pos = p }
func (e *Entity) SetVelocity(v cp.Vector) { e.vel = v }

// Tune replaces the movement parameters, used when prefabs are reloaded.
func (e *Entity) Tune(speed, jumpPower float64, accel cp.Vector) {
	e.speed = speed
	e.jumpPower = jumpPower
	e.accel = accel
}

// SetMovement overwrites the movement intent. Callers reset it to zero once per
// frame before accumulating new intent.
func (e *Entity) SetMovement(v cp.Vector) { e.intent = v }

func (e *Entity) MoveLeft()  { e.intent.X = -1 }
func (e *Entity) MoveRight() { e.intent.X = 1 }

// NormaliseMovement scales the intent to unit length. A zero intent stays zero.
func (e *Entity) NormaliseMovement() {
	if e.intent.X == 0 && e.intent.Y == 0 {
		return
	}
	e.intent = e.intent.Normalize()
}

// Jump launches the entity upward. It does not check for ground contact;
// callers gate on CollidedBottom.
func (e *Entity) Jump() {
	e.vel.Y = -e.jumpPower
}

// Bounds is the collision box around the entity's centre.
func (e *Entity) Bounds() common.Rect {
	return common.RectFromCenter(e.pos, e.width, e.height)
}

// CheckCollision reports strict AABB overlap with other. Defeated entities
// never collide.
func (e *Entity) CheckCollision(other *Entity) bool {
	if e == nil || other == nil || e == other || !e.IsActive() || !other.IsActive() {
		return false
	}
	return e.Bounds().Intersects(other.Bounds())
}

// touch sets a contact flag. It returns false when the side was already set
// this step, so the first contact on a side wins.
func (e *Entity) touch(side Side) bool {
	var flag *bool
	switch side {
	case SideTop:
		flag = &e.contacts.Top
	case SideBottom:
		flag = &e.contacts.Bottom
	case SideLeft:
		flag = &e.contacts.Left
	case SideRight:
		flag = &e.contacts.Right
	default:
		return false
	}
	if *flag {
		return false
	}
	*flag = true
	return true
}
