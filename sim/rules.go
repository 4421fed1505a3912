package sim

import "github.com/milk9111/stomper/entity"

// Contact classifies a player/enemy touch.
type Contact int

const (
	NoContact Contact = iota
	Stomp
	Hit
)

func (c Contact) String() string {
	switch c {
	case Stomp:
		return "stomp"
	case Hit:
		return "hit"
	default:
		return "none"
	}
}

// ResolveContact reports a Stomp when the player's centre is above the enemy's
// top edge while overlapping it, and a Hit for any other overlap.
func ResolveContact(player, enemy *entity.Entity) Contact {
	if !player.CheckCollision(enemy) {
		return NoContact
	}
	if player.Position().Y < enemy.Position().Y-enemy.Height()/2 {
		return Stomp
	}
	return Hit
}
