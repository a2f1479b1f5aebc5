package systems

import (
	"math"

	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/shared/gamemath"
	"github.com/automoto/skyrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement runs the horizontal integrator for every player.
func UpdateMovement(e *ecs.ECS) {
	dt := GetOrCreateClock(e).Dt

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		IntegrateHorizontal(
			components.Transform.Get(entry),
			components.Movement.Get(entry),
			components.Jump.Get(entry).State,
			components.Input.Get(entry),
			components.Sensors.Get(entry).ObstacleDistance,
			components.Tuning.Get(entry),
			dt,
		)
	})
}

// IntegrateHorizontal updates the speeds from input and moves the player along its
// heading. Speeds only change on the ground; in the air the player keeps its course.
func IntegrateHorizontal(tr *components.TransformData, mv *components.MovementData, state components.JumpState,
	input *components.InputData, obstacleDist float64, tuning *components.TuningData, dt float64) {
	p := tuning.Player

	if state == components.JumpGrounded {
		switch {
		case IsDown(input, cfg.ActionForward):
			// Can't accelerate into a wall
			if obstacleDist > tuning.Sensor.WallStopDistance {
				mv.Speed = math.Min(gamemath.Accelerate(mv.Speed, 1, p.Accel, p.ActiveDeaccel, dt), p.MaxSpeed)
			} else {
				mv.Speed = 0
			}
		case IsDown(input, cfg.ActionBack):
			mv.Speed = math.Max(gamemath.Accelerate(mv.Speed, -1, p.Accel, p.ActiveDeaccel, dt), -p.MaxSpeed/2)
		default:
			mv.Speed = gamemath.Decay(mv.Speed, p.PassiveDeaccel*dt)
		}

		switch {
		case IsDown(input, cfg.ActionStrafeRight):
			mv.StrafeSpeed = math.Min(gamemath.Accelerate(mv.StrafeSpeed, 1, p.Accel, p.ActiveDeaccel, dt), p.MaxStrafeSpeed)
		case IsDown(input, cfg.ActionStrafeLeft):
			mv.StrafeSpeed = math.Max(gamemath.Accelerate(mv.StrafeSpeed, -1, p.Accel, p.ActiveDeaccel, dt), -p.MaxStrafeSpeed)
		default:
			mv.StrafeSpeed = gamemath.Decay(mv.StrafeSpeed, p.PassiveDeaccel*dt)
		}
	}

	forward, right := gamemath.HeadingVectors(tr.Heading)
	step := right.Scale(mv.StrafeSpeed * dt * p.ModelScale).Add(forward.Scale(mv.Speed * dt * p.ModelScale))
	tr.Position.X += step.X
	tr.Position.Y += step.Y
}
