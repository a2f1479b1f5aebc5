package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/skyrunner/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchStaysWithinLimit(t *testing.T) {
	tuning := defaultTuning()
	rng := rand.New(rand.NewSource(3))

	tr := &components.TransformData{}
	look := &components.LookData{}

	for i := 0; i < 5000; i++ {
		dx := rng.NormFloat64() * 200
		dy := rng.NormFloat64() * 200
		ApplyMouseLook(tr, look, dx, dy, tuning)

		require.LessOrEqual(t, math.Abs(look.Pitch), tuning.Camera.PitchMax)
	}
}

func TestMouseLookTurnsAndTilts(t *testing.T) {
	tuning := defaultTuning()
	tr := &components.TransformData{Heading: 10}
	look := &components.LookData{}

	ApplyMouseLook(tr, look, 50, -25, tuning)

	assert.InDelta(t, 0.0, tr.Heading, 1e-9, "moving right turns clockwise")
	assert.InDelta(t, 5.0, look.Pitch, 1e-9, "moving up looks up")

	tuning.Camera.InvertY = true
	ApplyMouseLook(tr, look, 0, -25, tuning)
	assert.InDelta(t, 0.0, look.Pitch, 1e-9)

	ApplyMouseLook(tr, look, 0, -10000, tuning)
	assert.Equal(t, -tuning.Camera.PitchMax, look.Pitch)
}

func TestShakeSuppressedWhenStillOrAirborne(t *testing.T) {
	tuning := defaultTuning()

	tests := []struct {
		name  string
		speed float64
		state components.JumpState
	}{
		{"standing", 0, components.JumpGrounded},
		{"jumping", 40, components.JumpJumping},
		{"double jumping", 40, components.JumpDoubleJumping},
		{"falling", 40, components.JumpFalling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			look := &components.LookData{Shake: 0.01, OffsetX: 0.2, Roll: 0.3, ShakeRate: 0.18}
			UpdateShake(look, &components.MovementData{Speed: tt.speed}, tt.state, tuning, 1.0/60)

			assert.Zero(t, look.Shake)
			assert.Zero(t, look.OffsetX)
			assert.Zero(t, look.Roll)
		})
	}
}

func TestShakeOscillatesWithinBound(t *testing.T) {
	tuning := defaultTuning()
	look := &components.LookData{ShakeRate: tuning.Camera.ShakeRate}
	mv := &components.MovementData{Speed: -40}
	limit := tuning.Camera.MaxShake * 0.5

	flips := 0
	lastRate := look.ShakeRate
	for i := 0; i < 600; i++ {
		UpdateShake(look, mv, components.JumpGrounded, tuning, 1.0/60)

		require.LessOrEqual(t, math.Abs(look.Shake), limit+1e-12)
		if look.ShakeRate != lastRate {
			flips++
			lastRate = look.ShakeRate
		}
	}

	assert.Greater(t, flips, 1, "the bob changes direction at each bound")
	assert.InDelta(t, tuning.Camera.ShakeRate, math.Abs(look.ShakeRate), 1e-12)
}

func TestShakeIgnoresDirectionOfTravel(t *testing.T) {
	tuning := defaultTuning()
	forward := &components.LookData{ShakeRate: tuning.Camera.ShakeRate}
	backward := &components.LookData{ShakeRate: tuning.Camera.ShakeRate}

	for i := 0; i < 120; i++ {
		UpdateShake(forward, &components.MovementData{Speed: 40}, components.JumpGrounded, tuning, 1.0/60)
		UpdateShake(backward, &components.MovementData{Speed: -40}, components.JumpGrounded, tuning, 1.0/60)
	}

	assert.Equal(t, *forward, *backward)
}
