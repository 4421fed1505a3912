package entity

import (
	"image"
	"math"

	"github.com/jakecoffman/cp"
)

// Direction selects a row of the animation table.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Animation describes a spritesheet laid out in Columns x Rows cells. Frames
// holds the cell indices of each direction's walk cycle.
type Animation struct {
	Frames        [4][]int
	Columns       int
	Rows          int
	FrameDuration float64
}

// UV is a normalized sub-rectangle of a spritesheet.
type UV struct {
	U, V float64
	W, H float64
}

// Sprite tracks the playback position of an Animation.
type Sprite struct {
	anim    Animation
	dir     Direction
	index   int
	elapsed float64
}

func NewSprite(anim Animation) Sprite {
	return Sprite{anim: anim, dir: Right}
}

func (s *Sprite) Direction() Direction { return s.dir }
func (s *Sprite) Index() int           { return s.index }
func (s *Sprite) Elapsed() float64     { return s.elapsed }

// FrameCount is the length of the current direction's cycle.
func (s *Sprite) FrameCount() int {
	if s.dir < Left || s.dir > Down {
		return 0
	}
	return len(s.anim.Frames[s.dir])
}

// Static reports whether the sprite has no frame table and draws the whole sheet.
func (s *Sprite) Static() bool {
	for _, frames := range s.anim.Frames {
		if len(frames) > 0 {
			return false
		}
	}
	return true
}

// Face picks a direction from the dominant axis of intent. A zero intent
// keeps the current direction.
func (s *Sprite) Face(intent cp.Vector) {
	if intent.X == 0 && intent.Y == 0 {
		return
	}
	switch {
	case math.Abs(intent.X) >= math.Abs(intent.Y) && intent.X < 0:
		s.dir = Left
	case math.Abs(intent.X) >= math.Abs(intent.Y):
		s.dir = Right
	case intent.Y < 0:
		s.dir = Up
	default:
		s.dir = Down
	}
	if count := s.FrameCount(); count > 0 {
		s.index %= count
	} else {
		s.index = 0
	}
}

// Advance accumulates dt and steps the frame once per FrameDuration, looping.
func (s *Sprite) Advance(dt float64) {
	count := s.FrameCount()
	if count <= 0 {
		s.index = 0
		return
	}
	if dt <= 0 || s.anim.FrameDuration <= 0 {
		return
	}

	s.elapsed += dt
	if s.elapsed < s.anim.FrameDuration {
		return
	}

	steps := math.Floor(s.elapsed / s.anim.FrameDuration)
	s.elapsed -= steps * s.anim.FrameDuration
	if s.elapsed < 0 {
		s.elapsed = 0
	}
	s.index = (s.index + int(math.Mod(steps, float64(count)))) % count
}

// Reset rewinds to the first frame.
func (s *Sprite) Reset() {
	s.index = 0
	s.elapsed = 0
}

// Cell is the spritesheet cell index of the current frame.
func (s *Sprite) Cell() int {
	count := s.FrameCount()
	if count <= 0 {
		return 0
	}
	return s.anim.Frames[s.dir][s.index]
}

// UV returns the current frame's sub-rectangle, or the whole sheet for static sprites.
func (s *Sprite) UV() UV {
	if s.Static() || s.anim.Columns <= 0 || s.anim.Rows <= 0 {
		return UV{W: 1, H: 1}
	}
	w := 1.0 / float64(s.anim.Columns)
	h := 1.0 / float64(s.anim.Rows)
	cell := s.Cell()
	return UV{
		U: float64(cell%s.anim.Columns) * w,
		V: float64(cell/s.anim.Columns) * h,
		W: w,
		H: h,
	}
}

// SourceRect converts the UV into pixel coordinates of a sheet of the given size.
func (s *Sprite) SourceRect(sheetW, sheetH int) image.Rectangle {
	uv := s.UV()
	x0 := int(math.Round(uv.U * float64(sheetW)))
	y0 := int(math.Round(uv.V * float64(sheetH)))
	x1 := int(math.Round((uv.U + uv.W) * float64(sheetW)))
	y1 := int(math.Round((uv.V + uv.H) * float64(sheetH)))
	return image.Rect(x0, y0, x1, y1)
}
