package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/skyrunner/assets"
	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/shared/gamemath"
	"github.com/automoto/skyrunner/tags"
	"github.com/automoto/skyrunner/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// pixelsPerUnit is the zoom of the top-down view.
const pixelsPerUnit = 48

// DrawWorld renders the level from above, centered on the player. Cubes are shaded by
// their top relative to the player's feet.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	tr := components.Transform.Get(playerEntry)
	tuning := components.Tuning.Get(playerEntry)
	feet := tr.Position.Z - tuning.Player.StandHeight

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	toScreen := func(x, y float64) (float32, float32) {
		sx := float64(width)/2 + (x-tr.Position.X)*pixelsPerUnit
		sy := float64(height)/2 - (y-tr.Position.Y)*pixelsPerUnit
		return float32(sx), float32(sy)
	}

	if space := getSpace(e); space != nil {
		for _, cube := range space.Cubes() {
			x, y := toScreen(cube.Min.X, cube.Max.Y)
			w := float32((cube.Max.X - cube.Min.X) * pixelsPerUnit)
			h := float32((cube.Max.Y - cube.Min.Y) * pixelsPerUnit)
			vector.FillRect(screen, x, y, w, h, cubeColor(cube, feet), false)
			vector.StrokeRect(screen, x, y, w, h, 1, cfg.DarkBlue, false)
		}
	}

	px, py := toScreen(tr.Position.X, tr.Position.Y)
	forward, _ := gamemath.HeadingVectors(tr.Heading)
	fx, fy := toScreen(tr.Position.X+forward.X*0.5, tr.Position.Y+forward.Y*0.5)
	vector.StrokeLine(screen, px, py, fx, fy, 2, cfg.Orange, false)
	vector.FillCircle(screen, px, py, 5, cfg.White, false)

	if cfg.Debug.Overlay {
		sensors := components.Sensors.Get(playerEntry)
		if sensors.ObstacleDistance < tuning.Sensor.ObstacleSentinel {
			ox, oy := toScreen(
				tr.Position.X+forward.X*sensors.ObstacleDistance,
				tr.Position.Y+forward.Y*sensors.ObstacleDistance,
			)
			vector.StrokeLine(screen, px, py, ox, oy, 1, color.RGBA{R: 255, A: 255}, false)
		}
	}
}

// cubeColor darkens cubes below the player's feet and lightens the ones above.
func cubeColor(cube *world.Cube, feet float64) color.RGBA {
	shade := gamemath.Clamp(0.6+(cube.Max.Z-feet)*0.2, 0.15, 1)
	return color.RGBA{
		R: uint8(float64(cfg.LightBlue.R) * shade),
		G: uint8(float64(cfg.LightBlue.G) * shade),
		B: uint8(math.Min(255, float64(cfg.LightBlue.B)*shade+40)),
		A: 255,
	}
}

// DrawFog covers the view with the current fog density.
func DrawFog(e *ecs.ECS, screen *ebiten.Image) {
	fog := GetOrCreateFog(e)
	if fog.Density <= 0 {
		return
	}

	density := gamemath.Clamp(fog.Density, 0, 1)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if assets.FogShader == nil {
		c := cfg.BlackOverlay
		c.A = uint8(density * 255)
		vector.FillRect(screen, 0, 0, float32(width), float32(height), c, false)
		return
	}

	tint := cfg.BlackOverlay
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Density": float32(density),
		"Tint":    []float32{float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255},
	}
	screen.DrawRectShader(width, height, assets.FogShader, op)
}

// DrawHUD prints the player's movement state.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	tr := components.Transform.Get(playerEntry)
	mv := components.Movement.Get(playerEntry)
	jump := components.Jump.Get(playerEntry)
	look := components.Look.Get(playerEntry)
	tuning := components.Tuning.Get(playerEntry)

	msg := fmt.Sprintf("pos %.2f %.2f %.2f  heading %.0f  pitch %.0f  fov %.0f\nspeed %.1f  strafe %.1f  %s",
		tr.Position.X, tr.Position.Y, tr.Position.Z, tr.Heading, look.Pitch, tuning.Camera.FOV,
		mv.Speed, mv.StrafeSpeed, jump.State)

	if cfg.Debug.Overlay {
		sensors := components.Sensors.Get(playerEntry)
		clock := GetOrCreateClock(e)
		msg += fmt.Sprintf("\nground %.2f (%d hits)  obstacle %.2f (%d hits)\nmomentum %.2f  double %t  shake %.4f\nframe %d  dt %.4f  tps %.0f",
			sensors.GroundHeight, sensors.GroundHits, sensors.ObstacleDistance, sensors.ForwardHits,
			jump.Momentum, jump.CanDoubleJump, look.Shake,
			clock.Frame, clock.Dt, ebiten.ActualTPS())
	}

	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
