package scenes

import (
	"sync"

	"github.com/automoto/skyrunner/assets"
	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/shared/gamemath"
	"github.com/automoto/skyrunner/shared/leveldata"
	"github.com/automoto/skyrunner/systems"
	"github.com/automoto/skyrunner/systems/factory"
	"github.com/automoto/skyrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TuningSource delivers configuration reloads. *config.Watcher satisfies it.
type TuningSource interface {
	Poll() (cfg.Tuning, bool)
}

// WorldScene runs the player simulation on one level.
type WorldScene struct {
	ecs    *ecs.ECS
	level  *leveldata.LevelData
	tuning TuningSource
	once   sync.Once
}

// NewWorldScene creates a scene for level. tuning may be nil.
func NewWorldScene(level *leveldata.LevelData, tuning TuningSource) *WorldScene {
	return &WorldScene{level: level, tuning: tuning}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.applyTuning()
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// PauseGame toggles the simulation.
func (ws *WorldScene) PauseGame() {
	ws.once.Do(ws.configure)
	systems.TogglePause(ws.ecs)
}

// ToggleMouseControls shows the cursor for menus or captures it for mouse look.
func (ws *WorldScene) ToggleMouseControls(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

// SetFogDensity eases the fog to density.
func (ws *WorldScene) SetFogDensity(density float64) {
	ws.once.Do(ws.configure)
	systems.SetFogTarget(ws.ecs, density, cfg.Game.FogFadeSeconds)
}

// ECS exposes the scene's world.
func (ws *WorldScene) ECS() *ecs.ECS {
	ws.once.Do(ws.configure)
	return ws.ecs
}

func (ws *WorldScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Warn().Err(err).Msg("fog shader unavailable, using flat fog")
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateFog)
	e.AddSystem(systems.UpdateInput)

	// Simulation, frozen while paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSensors))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateJump))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawFog)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = e

	factory.CreateClock(e)
	factory.CreateSpace(e, ws.level)

	pos := gamemath.Vec3{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY, Z: cfg.Player.SpawnZ}
	heading := 0.0
	if spawn := ws.level.Spawn; spawn != nil {
		pos = gamemath.Vec3{X: spawn.X, Y: spawn.Y, Z: spawn.Z}
		heading = spawn.Heading
	}
	factory.CreatePlayer(e, pos, heading, currentTuning())

	systems.SetFogTarget(e, cfg.Game.PlayFogDensity, 0)
	ws.ToggleMouseControls(false)

	log.Info().
		Str("level", ws.level.Name).
		Int("cubes", len(ws.level.Boxes)).
		Float64("x", pos.X).Float64("y", pos.Y).Float64("z", pos.Z).
		Msg("level started")
}

// applyTuning installs the latest reloaded configuration, if any.
func (ws *WorldScene) applyTuning() {
	if ws.tuning == nil {
		return
	}
	t, ok := ws.tuning.Poll()
	if !ok {
		return
	}

	cfg.Apply(t)
	next := currentTuning()
	tags.Player.Each(ws.ecs.World, func(entry *donburi.Entry) {
		components.Tuning.SetValue(entry, next)
	})
	log.Info().Msg("tuning reloaded")
}

func currentTuning() components.TuningData {
	return components.TuningData{
		Player: cfg.Player,
		Camera: cfg.Camera,
		Sensor: cfg.Sensor,
	}
}
