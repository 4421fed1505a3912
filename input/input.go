package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stomper/entity"
)

const stickDeadzone = 0.2

// Intent is one frame of player input.
type Intent struct {
	Left   bool
	Right  bool
	StickX float64
	Jump   bool
	Quit   bool
}

// Poll reads the keyboard and the first gamepad.
func Poll() Intent {
	in := Intent{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Quit: inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			in.StickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
			in.Quit = in.Quit || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		}
	}
	return in
}

// MoveX resolves the horizontal direction. Left wins when both keys are held;
// the stick is used only when no key is held and it is past the dead zone.
func (in Intent) MoveX() float64 {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	case math.Abs(in.StickX) > stickDeadzone:
		return in.StickX
	default:
		return 0
	}
}

// Apply resets the player's intent and applies in. It reports whether the
// player jumped; jumps only start from the ground.
func Apply(in Intent, player *entity.Entity) bool {
	if player == nil {
		return false
	}
	player.SetMovement(cp.Vector{})
	switch x := in.MoveX(); x {
	case -1:
		player.MoveLeft()
	case 1:
		player.MoveRight()
	default:
		player.SetMovement(cp.Vector{X: x})
	}
	if player.Movement().Length() > 1 {
		player.NormaliseMovement()
	}

	if in.Jump && player.CollidedBottom() {
		player.Jump()
		return true
	}
	return false
}
