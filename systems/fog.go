package systems

import (
	"github.com/automoto/skyrunner/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SetFogTarget starts easing the fog density to target over seconds.
// A non-positive duration applies the target immediately.
func SetFogTarget(e *ecs.ECS, target, seconds float64) {
	fog := GetOrCreateFog(e)
	fog.Target = target

	if seconds <= 0 || fog.Density == target {
		fog.Density = target
		fog.Tween = nil
		return
	}
	fog.Tween = gween.New(float32(fog.Density), float32(target), float32(seconds), ease.OutQuad)
}

// UpdateFog advances the fog tween. It runs while paused since pausing is what fades
// the fog in.
func UpdateFog(e *ecs.ECS) {
	fog := GetOrCreateFog(e)
	if fog.Tween == nil {
		return
	}

	current, finished := fog.Tween.Update(float32(GetOrCreateClock(e).Dt))
	fog.Density = float64(current)
	if finished {
		fog.Density = fog.Target
		fog.Tween = nil
	}
}

// GetOrCreateFog returns the singleton Fog component, creating if needed.
func GetOrCreateFog(e *ecs.ECS) *components.FogData {
	entry, ok := components.Fog.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Fog))
	}
	return components.Fog.Get(entry)
}
