package systems

import (
	"testing"

	"github.com/automoto/skyrunner/components"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestFogEasesToTarget(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	clock := GetOrCreateClock(e)
	clock.Fixed = true
	clock.Dt = 0.05

	SetFogTarget(e, 0.8, 0.25)
	fog := GetOrCreateFog(e)
	assert.Zero(t, fog.Density)
	assert.NotNil(t, fog.Tween)

	UpdateFog(e)
	assert.Greater(t, fog.Density, 0.0)
	assert.Less(t, fog.Density, 0.8)

	for i := 0; i < 10; i++ {
		UpdateFog(e)
	}
	assert.Equal(t, 0.8, fog.Density)
	assert.Nil(t, fog.Tween)
}

func TestFogImmediate(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	SetFogTarget(e, 0.5, 0)

	fog := GetOrCreateFog(e)
	assert.Equal(t, components.FogData{Density: 0.5, Target: 0.5}, *fog)
}
