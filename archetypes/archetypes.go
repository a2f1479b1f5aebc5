package archetypes

import (
	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Look,
		components.Movement,
		components.Jump,
		components.Input,
		components.Sensors,
		components.Tuning,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
