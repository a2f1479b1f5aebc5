package systems

import (
	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// JumpEvent is a transition reported by StepVertical.
type JumpEvent int

const (
	EventNone JumpEvent = iota
	EventJumped
	EventDoubleJumped
	EventLanded
	EventFell
)

func (e JumpEvent) String() string {
	switch e {
	case EventJumped:
		return "jumped"
	case EventDoubleJumped:
		return "double_jumped"
	case EventLanded:
		return "landed"
	case EventFell:
		return "fell"
	default:
		return "none"
	}
}

// UpdateJump runs the vertical state machine for every player and logs its transitions.
func UpdateJump(e *ecs.ECS) {
	dt := GetOrCreateClock(e).Dt

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		tr := components.Transform.Get(entry)
		jump := components.Jump.Get(entry)

		events := StepVertical(tr, jump,
			components.Movement.Get(entry),
			components.Input.Get(entry),
			components.Sensors.Get(entry).GroundHeight,
			components.Tuning.Get(entry),
			dt,
		)
		for _, ev := range events {
			log.Debug().
				Stringer("event", ev).
				Stringer("state", jump.State).
				Float64("z", tr.Position.Z).
				Msg("jump")
		}
	})
}

// StepVertical applies gravity, settles the player onto the ground and starts jumps.
// It returns the transitions that happened this tick in order.
func StepVertical(tr *components.TransformData, jump *components.JumpData, mv *components.MovementData,
	input *components.InputData, groundHeight float64, tuning *components.TuningData, dt float64) []JumpEvent {
	p := tuning.Player
	var events []JumpEvent

	tr.Position.Z += jump.Momentum * dt
	jump.Momentum -= p.JumpMultiplier * dt

	zdif := tr.Position.Z - groundHeight
	rising := jump.State.Airborne()

	switch {
	case zdif >= p.FallThreshold && !rising:
		if jump.State != components.JumpFalling {
			events = append(events, EventFell)
		}
		jump.State = components.JumpFalling
	case zdif < p.LandThreshold || (zdif < p.FallThreshold && !rising):
		if jump.State != components.JumpGrounded {
			events = append(events, EventLanded)
		}
		tr.Position.Z = groundHeight + p.StandHeight
		jump.Momentum = 0
		jump.State = components.JumpGrounded
		jump.CanDoubleJump = false
	}

	if !IsDown(input, cfg.ActionJump) || jump.State == components.JumpFalling {
		return events
	}

	switch {
	case jump.State == components.JumpGrounded:
		jump.State = components.JumpJumping
		jump.Momentum = p.MaxJumpMomentum
		applyDirectionalJump(jump, mv, input, p)
		events = append(events, EventJumped)
	case jump.State == components.JumpJumping && jump.CanDoubleJump:
		jump.State = components.JumpDoubleJumping
		jump.Momentum = p.MaxJumpMomentum
		jump.CanDoubleJump = false
		events = append(events, EventDoubleJumped)
	}

	return events
}

// applyDirectionalJump trades vertical momentum for horizontal speed when the jump is
// not forward. The first held direction wins: back, then right, then left.
func applyDirectionalJump(jump *components.JumpData, mv *components.MovementData, input *components.InputData, p cfg.PlayerConfig) {
	if IsDown(input, cfg.ActionForward) {
		return
	}

	switch {
	case IsDown(input, cfg.ActionBack):
		jump.Momentum *= p.DirectionalJumpMomentum
		mv.StrafeSpeed *= p.CrossAxisCarry
		if mv.Speed > 0 {
			mv.Speed = -p.MaxSpeed/2 + mv.Speed*p.BackJumpCarry
		} else {
			mv.Speed = -p.MaxSpeed / 2
		}
	case IsDown(input, cfg.ActionStrafeRight):
		jump.Momentum *= p.DirectionalJumpMomentum
		mv.Speed *= p.CrossAxisCarry
		mv.StrafeSpeed = p.MaxStrafeSpeed * p.StrafeJumpBoost
	case IsDown(input, cfg.ActionStrafeLeft):
		jump.Momentum *= p.DirectionalJumpMomentum
		mv.Speed *= p.CrossAxisCarry
		mv.StrafeSpeed = -p.MaxStrafeSpeed * p.StrafeJumpBoost
	}
}
