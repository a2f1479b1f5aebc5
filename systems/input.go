package systems

import (
	"strings"

	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// SetKey records the latest pressed state of an action. Releasing jump while rising from
// the first jump arms the double jump.
func SetKey(input *components.InputData, jump *components.JumpData, action cfg.ActionID, pressed bool) {
	input.Current[action] = pressed

	if action == cfg.ActionJump && !pressed && jump != nil && jump.State == components.JumpJumping {
		jump.CanDoubleJump = true
	}
}

// IsDown reports the latest pressed state of an action.
func IsDown(input *components.InputData, action cfg.ActionID) bool {
	return input.Current[action]
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdateInput delivers movement key edges to every player and samples the pointer.
// Must run BEFORE the movement systems. It keeps running while paused so releases made
// in the menu are not lost.
func UpdateInput(e *ecs.ECS) {
	pressed, method, used := pollActions()
	paused := GetOrCreatePause(e).IsPaused
	captured := ebiten.CursorMode() == ebiten.CursorModeCaptured
	cx, cy := ebiten.CursorPosition()

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		input := components.Input.Get(entry)
		jump := components.Jump.Get(entry)

		deliverActions(input, jump, pressed)
		samplePointer(input, cx, cy, captured && !paused)
		if used {
			input.LastInputMethod = method
		}
	})
}

// UpdateMenuInput refreshes the singleton Input used for menu navigation.
func UpdateMenuInput(e *ecs.ECS) {
	PollMenuInput(getOrCreateInput(e))
}

// PollMenuInput swaps buffers and reads every binding into input.
func PollMenuInput(input *components.InputData) {
	pressed, method, used := pollActions()

	input.Previous = input.Current
	input.Current = pressed
	if used {
		input.LastInputMethod = method
	}
}

// deliverActions forwards movement actions whose state changed since the last tick.
func deliverActions(input *components.InputData, jump *components.JumpData, pressed [cfg.ActionCount]bool) {
	input.Previous = input.Current

	for _, action := range cfg.MovementActions {
		if pressed[action] == input.Current[action] {
			continue
		}
		SetKey(input, jump, action, pressed[action])
		log.Trace().Stringer("action", action).Bool("pressed", pressed[action]).Msg("key")
	}
}

// samplePointer stores the cursor motion since the previous sample. The first sample
// after the cursor is captured only sets the reference point.
func samplePointer(input *components.InputData, x, y int, active bool) {
	input.PointerDX, input.PointerDY = 0, 0

	if !active {
		input.CursorValid = false
		return
	}
	if input.CursorValid {
		input.PointerDX = float64(x - input.CursorX)
		input.PointerDY = float64(y - input.CursorY)
	}
	input.CursorX, input.CursorY = x, y
	input.CursorValid = true
}

// pollActions reads keyboard and gamepad state for every bound action.
func pollActions() (pressed [cfg.ActionCount]bool, method components.InputMethod, used bool) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right, up, down, analogGpID := getAnalogStickState(gamepadIDs)
	if left || right || up || down {
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if left {
		pressed[cfg.ActionStrafeLeft] = true
	}
	if right {
		pressed[cfg.ActionStrafeRight] = true
	}
	if up {
		pressed[cfg.ActionForward] = true
		pressed[cfg.ActionMenuUp] = true
	}
	if down {
		pressed[cfg.ActionBack] = true
		pressed[cfg.ActionMenuDown] = true
	}

	// Gamepad takes priority if both used
	switch {
	case gamepadUsed:
		return pressed, getControllerType(activeGamepadID), true
	case keyboardUsed:
		return pressed, components.InputKeyboard, true
	}
	return pressed, components.InputKeyboard, false
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
