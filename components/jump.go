package components

import "github.com/yohamta/donburi"

// JumpState is the vertical state of the player. The states are exclusive.
type JumpState int

const (
	JumpGrounded JumpState = iota
	JumpJumping
	JumpDoubleJumping
	JumpFalling
)

func (s JumpState) String() string {
	switch s {
	case JumpGrounded:
		return "grounded"
	case JumpJumping:
		return "jumping"
	case JumpDoubleJumping:
		return "double_jumping"
	case JumpFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Airborne reports whether the player is rising from a jump.
func (s JumpState) Airborne() bool {
	return s == JumpJumping || s == JumpDoubleJumping
}

type JumpData struct {
	State         JumpState
	CanDoubleJump bool    // set when jump is released mid-jump
	Momentum      float64 // vertical speed in world units per second
}

var Jump = donburi.NewComponentType[JumpData]()
