package entity

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/tilemap"
)

// Update advances the entity by one fixed step: integrate velocity, move and
// resolve along Y, then move and resolve along X. Resolving Y first keeps
// entities from tunnelling through floors at the cost of some corner catching.
// platforms and m may be nil.
func (e *Entity) Update(dt float64, platforms *Roster, m *tilemap.Tilemap) {
	if !e.IsActive() {
		return
	}

	e.contacts = Contacts{}
	if e.kind == Platform {
		return
	}

	if e.intent.Length() > 1 {
		e.intent = e.intent.Normalize()
	}
	e.vel.X = e.intent.X * e.speed
	e.vel = e.vel.Add(e.accel.Mult(dt))

	e.pos.Y += e.vel.Y * dt
	e.collidePlatformsY(platforms)
	e.collideMapY(m)

	e.pos.X += e.vel.X * dt
	e.collidePlatformsX(platforms)
	e.collideMapX(m)

	if e.intent.X != 0 || e.intent.Y != 0 {
		e.sprite.Face(e.intent)
		e.sprite.Advance(dt)
	}
}

// contactEpsilon is the smallest penetration that counts as a contact. Smaller
// overlaps are float residue from a snap on the other axis.
const contactEpsilon = 1e-9

func (e *Entity) overlapX(p *Entity) float64 {
	return (e.width+p.width)/2 - math.Abs(e.pos.X-p.pos.X)
}

func (e *Entity) overlapY(p *Entity) float64 {
	return (e.height+p.height)/2 - math.Abs(e.pos.Y-p.pos.Y)
}

func (e *Entity) collidePlatformsY(platforms *Roster) {
	for _, p := range platforms.Active() {
		if !e.CheckCollision(p) || e.overlapX(p) <= contactEpsilon {
			continue
		}
		switch {
		case e.vel.Y > 0 && e.pos.Y < p.pos.Y:
			if e.touch(SideBottom) {
				e.pos.Y = p.Bounds().Top() - e.height/2
				e.vel.Y = 0
			}
		case e.vel.Y < 0 && e.pos.Y > p.pos.Y:
			if e.touch(SideTop) {
				e.pos.Y = p.Bounds().Bottom() + e.height/2
				e.vel.Y = 0
			}
		}
	}
}

func (e *Entity) collidePlatformsX(platforms *Roster) {
	for _, p := range platforms.Active() {
		if !e.CheckCollision(p) || e.overlapY(p) <= contactEpsilon {
			continue
		}
		switch {
		case e.vel.X > 0 && e.pos.X < p.pos.X:
			if e.touch(SideRight) {
				e.pos.X = p.Bounds().Left() - e.width/2
				e.vel.X = 0
			}
		case e.vel.X < 0 && e.pos.X > p.pos.X:
			if e.touch(SideLeft) {
				e.pos.X = p.Bounds().Right() + e.width/2
				e.vel.X = 0
			}
		}
	}
}

// collideMapY samples the top and bottom probe points against the map.
func (e *Entity) collideMapY(m *tilemap.Tilemap) {
	if m == nil {
		return
	}
	bottom := cp.Vector{X: e.pos.X, Y: e.pos.Y + e.height/2}
	if e.vel.Y >= 0 && m.IsSolid(bottom) && e.touch(SideBottom) {
		_, row := m.Cell(bottom)
		e.pos.Y = m.Bounds(0, row).Top() - e.height/2
		e.vel.Y = 0
	}

	top := cp.Vector{X: e.pos.X, Y: e.pos.Y - e.height/2}
	if e.vel.Y < 0 && m.IsSolid(top) && e.touch(SideTop) {
		_, row := m.Cell(top)
		e.pos.Y = m.Bounds(0, row).Bottom() + e.height/2
		e.vel.Y = 0
	}
}

// collideMapX samples the left and right probe points against the map.
func (e *Entity) collideMapX(m *tilemap.Tilemap) {
	if m == nil {
		return
	}
	right := cp.Vector{X: e.pos.X + e.width/2, Y: e.pos.Y}
	if e.vel.X > 0 && m.IsSolid(right) && e.touch(SideRight) {
		col, _ := m.Cell(right)
		e.pos.X = m.Bounds(col, 0).Left() - e.width/2
		e.vel.X = 0
	}

	left := cp.Vector{X: e.pos.X - e.width/2, Y: e.pos.Y}
	if e.vel.X < 0 && m.IsSolid(left) && e.touch(SideLeft) {
		col, _ := m.Cell(left)
		e.pos.X = m.Bounds(col, 0).Right() + e.width/2
		e.vel.X = 0
	}
}
