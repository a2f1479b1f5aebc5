package systems

import (
	"github.com/automoto/skyrunner/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// TogglePause freezes or resumes every system wrapped with WithPauseCheck.
func TogglePause(e *ecs.ECS) bool {
	pause := GetOrCreatePause(e)
	pause.IsPaused = !pause.IsPaused
	log.Debug().Bool("paused", pause.IsPaused).Msg("pause toggled")
	return pause.IsPaused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused: false,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
