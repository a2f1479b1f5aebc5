package systems

import (
	"math"

	"github.com/automoto/skyrunner/components"
	"github.com/automoto/skyrunner/shared/gamemath"
	"github.com/automoto/skyrunner/tags"
	"github.com/automoto/skyrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HighestGround returns the highest Z among hits on surface. The sentinel acts as the
// floor, so it is returned when there are no hits.
func HighestGround(hits []world.Hit, surface string, sentinel float64) float64 {
	highest := sentinel
	for _, h := range hits {
		if h.Surface == surface && h.Point.Z > highest {
			highest = h.Point.Z
		}
	}
	return highest
}

// NearestObstacle returns the smallest planar distance from (x, y) to a hit on surface,
// capped at sentinel.
func NearestObstacle(x, y float64, hits []world.Hit, surface string, sentinel float64) float64 {
	nearest := sentinel
	from := gamemath.Vec3{X: x, Y: y}
	for _, h := range hits {
		if h.Surface != surface {
			continue
		}
		nearest = math.Min(nearest, from.PlanarDistance(h.Point))
	}
	return nearest
}

// UpdateSensors casts the ground and forward rays for every player.
func UpdateSensors(e *ecs.ECS) {
	space := getSpace(e)
	if space == nil {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		Sense(space,
			components.Transform.Get(entry),
			components.Tuning.Get(entry),
			components.Sensors.Get(entry),
		)
	})
}

// Sense runs both rays from just below the player's center and stores the reductions.
func Sense(caster world.Caster, tr *components.TransformData, tuning *components.TuningData, sensors *components.SensorsData) {
	s := tuning.Sensor
	origin := tr.Position.Add(gamemath.Vec3{Z: -s.RayOriginDrop})
	forward, _ := gamemath.HeadingVectors(tr.Heading)

	groundHits := caster.CastRay(origin, gamemath.Down)
	forwardHits := caster.CastRay(origin, forward)

	sensors.GroundHeight = HighestGround(groundHits, s.Surface, s.GroundSentinel)
	sensors.ObstacleDistance = NearestObstacle(tr.Position.X, tr.Position.Y, forwardHits, s.Surface, s.ObstacleSentinel)
	sensors.GroundHits = len(groundHits)
	sensors.ForwardHits = len(forwardHits)
}

// getSpace returns the level's collision space, or nil before one is created.
func getSpace(e *ecs.ECS) *world.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
