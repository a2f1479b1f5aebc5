package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedStaysWithinBoundsOnGround(t *testing.T) {
	tuning := defaultTuning()
	p := tuning.Player
	rng := rand.New(rand.NewSource(7))

	tr := &components.TransformData{}
	mv := &components.MovementData{}

	for i := 0; i < 5000; i++ {
		input := &components.InputData{}
		for _, a := range cfg.MovementActions {
			input.Current[a] = rng.Intn(2) == 0
		}
		dt := rng.Float64() * 0.25
		obstacle := rng.Float64() * 2

		IntegrateHorizontal(tr, mv, components.JumpGrounded, input, obstacle, tuning, dt)

		require.LessOrEqual(t, mv.Speed, p.MaxSpeed)
		require.GreaterOrEqual(t, mv.Speed, -p.MaxSpeed/2)
		require.LessOrEqual(t, mv.StrafeSpeed, p.MaxStrafeSpeed)
		require.GreaterOrEqual(t, mv.StrafeSpeed, -p.MaxStrafeSpeed)
	}
}

func TestForwardBlockedByWall(t *testing.T) {
	tuning := defaultTuning()
	tr := &components.TransformData{}
	mv := &components.MovementData{Speed: 50}

	IntegrateHorizontal(tr, mv, components.JumpGrounded, held(cfg.ActionForward), 0.20, tuning, 1.0/60)

	assert.Zero(t, mv.Speed)
	assert.Zero(t, tr.Position.Y)
}

func TestForwardAcceleration(t *testing.T) {
	tuning := defaultTuning()
	tr := &components.TransformData{}

	mv := &components.MovementData{}
	IntegrateHorizontal(tr, mv, components.JumpGrounded, held(cfg.ActionForward), 1000, tuning, 0.1)
	assert.InDelta(t, 6.0, mv.Speed, 1e-9)

	mv = &components.MovementData{Speed: -10}
	IntegrateHorizontal(tr, mv, components.JumpGrounded, held(cfg.ActionForward), 1000, tuning, 0.1)
	assert.InDelta(t, 30.0, mv.Speed, 1e-9, "reversing uses the active deceleration")

	mv = &components.MovementData{Speed: 79}
	IntegrateHorizontal(tr, mv, components.JumpGrounded, held(cfg.ActionForward), 1000, tuning, 0.1)
	assert.Equal(t, 80.0, mv.Speed)
}

func TestBackAndStrafeAcceleration(t *testing.T) {
	tuning := defaultTuning()
	tr := &components.TransformData{}

	mv := &components.MovementData{Speed: 10, StrafeSpeed: -5}
	IntegrateHorizontal(tr, mv, components.JumpGrounded, held(cfg.ActionBack, cfg.ActionStrafeRight), 1000, tuning, 0.1)
	assert.InDelta(t, -30.0, mv.Speed, 1e-9)
	assert.InDelta(t, 35.0, mv.StrafeSpeed, 1e-9)

	mv = &components.MovementData{Speed: -39, StrafeSpeed: -39}
	IntegrateHorizontal(tr, mv, components.JumpGrounded, held(cfg.ActionBack, cfg.ActionStrafeLeft), 1000, tuning, 0.1)
	assert.Equal(t, -40.0, mv.Speed)
	assert.Equal(t, -40.0, mv.StrafeSpeed)
}

func TestStrafeIgnoresObstacle(t *testing.T) {
	tuning := defaultTuning()
	tr := &components.TransformData{}
	mv := &components.MovementData{}

	IntegrateHorizontal(tr, mv, components.JumpGrounded, held(cfg.ActionStrafeRight), 0.1, tuning, 0.1)

	assert.InDelta(t, 6.0, mv.StrafeSpeed, 1e-9)
}

func TestPassiveDecayReachesZeroWithoutFlipping(t *testing.T) {
	tuning := defaultTuning()
	tr := &components.TransformData{}

	for _, start := range []float64{80, -40, 0.5, -0.5} {
		mv := &components.MovementData{Speed: start, StrafeSpeed: start}
		prev := start

		for i := 0; i < 100; i++ {
			IntegrateHorizontal(tr, mv, components.JumpGrounded, &components.InputData{}, 1000, tuning, 1.0/60)

			if start > 0 {
				require.GreaterOrEqual(t, mv.Speed, 0.0)
				require.LessOrEqual(t, mv.Speed, prev)
			} else {
				require.LessOrEqual(t, mv.Speed, 0.0)
				require.GreaterOrEqual(t, mv.Speed, prev)
			}
			prev = mv.Speed
		}

		assert.Equal(t, 0.0, mv.Speed)
		assert.Equal(t, 0.0, mv.StrafeSpeed)
	}
}

func TestAirborneKeepsCourse(t *testing.T) {
	tuning := defaultTuning()

	for _, state := range []components.JumpState{components.JumpJumping, components.JumpDoubleJumping, components.JumpFalling} {
		tr := &components.TransformData{}
		mv := &components.MovementData{Speed: 20, StrafeSpeed: -10}

		IntegrateHorizontal(tr, mv, state, held(cfg.ActionBack, cfg.ActionStrafeRight), 1000, tuning, 0.5)

		assert.Equal(t, 20.0, mv.Speed, state.String())
		assert.Equal(t, -10.0, mv.StrafeSpeed, state.String())
		assert.InDelta(t, 20*0.5*0.05, tr.Position.Y, 1e-9, "still translates while %s", state)
		assert.InDelta(t, -10*0.5*0.05, tr.Position.X, 1e-9)
	}
}

func TestTranslationFollowsHeading(t *testing.T) {
	tuning := defaultTuning()
	tr := &components.TransformData{Heading: 90}
	mv := &components.MovementData{Speed: 40, StrafeSpeed: 20}

	IntegrateHorizontal(tr, mv, components.JumpFalling, &components.InputData{}, 1000, tuning, 1)

	// Facing -X, right is +Y.
	assert.InDelta(t, -2.0, tr.Position.X, 1e-9)
	assert.InDelta(t, 1.0, tr.Position.Y, 1e-9)
	assert.Zero(t, tr.Position.Z)
}
