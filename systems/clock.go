package systems

import (
	"math"
	"time"

	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the time since the previous tick. It runs while paused so that
// resuming does not produce one long step.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	clock.Frame++
	if clock.Fixed {
		return
	}

	now := time.Now()
	if clock.Last.IsZero() {
		clock.Dt = 1 / float64(ebiten.TPS())
	} else {
		clock.Dt = now.Sub(clock.Last).Seconds()
	}
	clock.Last = now
	clock.Dt = math.Min(clock.Dt, cfg.Game.MaxFrameDt)
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = factory.CreateClock(e)
	}
	return components.Clock.Get(entry)
}
