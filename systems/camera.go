package systems

import (
	"math"

	"github.com/automoto/skyrunner/components"
	"github.com/automoto/skyrunner/shared/gamemath"
	"github.com/automoto/skyrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera applies this tick's pointer motion and the head bob for every player.
func UpdateCamera(e *ecs.ECS) {
	dt := GetOrCreateClock(e).Dt

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		tuning := components.Tuning.Get(entry)
		look := components.Look.Get(entry)
		input := components.Input.Get(entry)

		ApplyMouseLook(components.Transform.Get(entry), look, input.PointerDX, input.PointerDY, tuning)
		UpdateShake(look, components.Movement.Get(entry), components.Jump.Get(entry).State, tuning, dt)
	})
}

// ApplyMouseLook turns the player by the pointer motion and tilts the camera, keeping
// pitch within PitchMax.
func ApplyMouseLook(tr *components.TransformData, look *components.LookData, dx, dy float64, tuning *components.TuningData) {
	c := tuning.Camera
	if c.InvertY {
		dy = -dy
	}

	tr.Heading -= dx * c.MouseSensitivity
	look.Pitch = gamemath.Clamp(look.Pitch-dy*c.MouseSensitivity, -c.PitchMax, c.PitchMax)
}

// UpdateShake bobs the camera while running on the ground. The bob grows with speed and
// reverses direction each time it reaches its bound. Standing still or leaving the
// ground resets it.
func UpdateShake(look *components.LookData, mv *components.MovementData, state components.JumpState,
	tuning *components.TuningData, dt float64) {
	if mv.Speed == 0 || state != components.JumpGrounded {
		look.Shake = 0
		look.OffsetX = 0
		look.Roll = 0
		return
	}

	rel := math.Abs(mv.Speed) / tuning.Player.MaxSpeed

	look.OffsetX += look.Shake
	look.Roll += look.Shake
	look.Shake += rel * look.ShakeRate * dt

	limit := tuning.Camera.MaxShake * rel
	if look.Shake > limit {
		look.Shake = limit
		look.ShakeRate = -look.ShakeRate
	} else if look.Shake < -limit {
		look.Shake = -limit
		look.ShakeRate = -look.ShakeRate
	}
}
