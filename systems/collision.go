package systems

import (
	"github.com/automoto/skyrunner/components"
	"github.com/automoto/skyrunner/tags"
	"github.com/automoto/skyrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions pushes every player out of the level geometry. Must run AFTER
// UpdateMovement so no horizontal step ends inside a cube.
func UpdateCollisions(e *ecs.ECS) {
	space := getSpace(e)
	if space == nil {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		ResolveBody(space, components.Transform.Get(entry), components.Tuning.Get(entry))
	})
}

// ResolveBody moves the player's collision sphere out of any cube it overlaps.
func ResolveBody(space *world.Space, tr *components.TransformData, tuning *components.TuningData) {
	p := tuning.Player
	tr.Position = space.PushOut(tr.Position, p.BodyRadius*p.ModelScale)
}
