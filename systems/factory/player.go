package factory

import (
	"github.com/automoto/skyrunner/archetypes"
	"github.com/automoto/skyrunner/components"
	"github.com/automoto/skyrunner/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at pos facing heading. The player starts with no jump
// in progress and settles onto the ground (or starts falling) on the first tick.
func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec3, heading float64, tuning components.TuningData) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Heading:  heading,
	})
	components.Look.SetValue(player, components.LookData{
		ShakeRate: tuning.Camera.ShakeRate,
	})
	components.Jump.SetValue(player, components.JumpData{
		State: components.JumpGrounded,
	})
	components.Sensors.SetValue(player, components.SensorsData{
		GroundHeight:     tuning.Sensor.GroundSentinel,
		ObstacleDistance: tuning.Sensor.ObstacleSentinel,
	})
	components.Tuning.SetValue(player, tuning)

	return player
}
