package systems

import (
	"testing"

	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/stretchr/testify/assert"
)

func TestSetKeyArmsDoubleJumpOnlyWhileJumping(t *testing.T) {
	tests := []struct {
		name  string
		state components.JumpState
		want  bool
	}{
		{"jumping", components.JumpJumping, true},
		{"grounded", components.JumpGrounded, false},
		{"double jumping", components.JumpDoubleJumping, false},
		{"falling", components.JumpFalling, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := held(cfg.ActionJump)
			jump := &components.JumpData{State: tt.state}

			SetKey(input, jump, cfg.ActionJump, false)

			assert.False(t, IsDown(input, cfg.ActionJump))
			assert.Equal(t, tt.want, jump.CanDoubleJump)
		})
	}
}

func TestSetKeyOtherActionsHaveNoSideEffects(t *testing.T) {
	input := &components.InputData{}
	jump := &components.JumpData{State: components.JumpJumping}

	SetKey(input, jump, cfg.ActionForward, true)
	SetKey(input, jump, cfg.ActionJump, true)

	assert.True(t, IsDown(input, cfg.ActionForward))
	assert.True(t, IsDown(input, cfg.ActionJump))
	assert.False(t, jump.CanDoubleJump)
}

func TestDeliverActionsLastStateWins(t *testing.T) {
	input := &components.InputData{}
	jump := &components.JumpData{State: components.JumpJumping}

	var pressed [cfg.ActionCount]bool
	pressed[cfg.ActionJump] = true
	pressed[cfg.ActionForward] = true
	deliverActions(input, jump, pressed)

	assert.True(t, GetAction(input, cfg.ActionJump).JustPressed)
	assert.True(t, IsDown(input, cfg.ActionForward))

	pressed[cfg.ActionJump] = false
	deliverActions(input, jump, pressed)

	action := GetAction(input, cfg.ActionJump)
	assert.True(t, action.JustReleased)
	assert.False(t, action.Pressed)
	assert.True(t, jump.CanDoubleJump, "release is delivered through SetKey")
	assert.True(t, GetAction(input, cfg.ActionForward).Pressed)
}

func TestDeliverActionsIgnoresMenuActions(t *testing.T) {
	input := &components.InputData{}

	var pressed [cfg.ActionCount]bool
	pressed[cfg.ActionEscape] = true
	deliverActions(input, &components.JumpData{}, pressed)

	assert.False(t, IsDown(input, cfg.ActionEscape))
}

func TestSamplePointer(t *testing.T) {
	input := &components.InputData{}

	samplePointer(input, 100, 100, true)
	assert.Zero(t, input.PointerDX, "first sample only sets the reference")

	samplePointer(input, 110, 95, true)
	assert.Equal(t, 10.0, input.PointerDX)
	assert.Equal(t, -5.0, input.PointerDY)

	samplePointer(input, 110, 95, true)
	assert.Zero(t, input.PointerDX)
	assert.Zero(t, input.PointerDY)

	samplePointer(input, 300, 300, false)
	assert.Zero(t, input.PointerDX)
	assert.False(t, input.CursorValid)

	samplePointer(input, 10, 10, true)
	assert.Zero(t, input.PointerDX, "motion while released is not applied")
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "jump", cfg.ActionJump.String())
	assert.Equal(t, "strafe_left", cfg.ActionStrafeLeft.String())
	assert.Equal(t, "unknown", cfg.ActionCount.String())
}
