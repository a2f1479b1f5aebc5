package factory

import (
	"github.com/automoto/skyrunner/archetypes"
	"github.com/automoto/skyrunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}
