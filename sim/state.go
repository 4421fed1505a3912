package sim

import (
	"errors"
	"fmt"
)

var ErrIllegalTransition = errors.New("sim: illegal status transition")

// Status is the run state of the game loop.
type Status int

const (
	Running Status = iota
	Paused
	Terminated
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// CanTransition reports whether the loop may move from s to next. A paused
// game never resumes.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case Running:
		return next == Paused || next == Terminated
	case Paused:
		return next == Terminated
	default:
		return false
	}
}

// Transition returns next, or ErrIllegalTransition.
func (s Status) Transition(next Status) (Status, error) {
	if !s.CanTransition(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, next)
	}
	return next, nil
}

// Outcome is how the level ended.
type Outcome int

const (
	None Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Banner is the end-of-level message for o.
func (o Outcome) Banner() string {
	switch o {
	case Win:
		return "You Win!"
	case Lose:
		return "You Lose!"
	default:
		return ""
	}
}
