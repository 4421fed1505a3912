package sim

// EventKind identifies world events.
type EventKind int

const (
	EventEnemyDefeated EventKind = iota
	EventWon
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is emitted by World.Step. Enemy is the roster index for
// EventEnemyDefeated and -1 otherwise.
type Event struct {
	Kind  EventKind
	Enemy int
	Step  uint64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
