package factory

import (
	"github.com/automoto/skyrunner/archetypes"
	"github.com/automoto/skyrunner/components"
	"github.com/automoto/skyrunner/shared/leveldata"
	"github.com/automoto/skyrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision space holding every cube of the level.
func CreateSpace(ecs *ecs.ECS, level *leveldata.LevelData) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, world.FromLevel(level))
	return space
}
