package components

import (
	cfg "github.com/automoto/skyrunner/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the latest pressed state for every action plus the pointer motion
// since the previous sample. Current is last-state-wins: a press and release inside one
// tick leave only the release.
type InputData struct {
	Current  [cfg.ActionCount]bool // Latest pressed state
	Previous [cfg.ActionCount]bool // Pressed state at the start of this tick

	PointerDX float64 // Horizontal pointer motion in pixels
	PointerDY float64 // Vertical pointer motion in pixels

	CursorX, CursorY int  // Reference point for the next pointer sample
	CursorValid      bool // False until the first sample after capture

	LastInputMethod InputMethod // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()
