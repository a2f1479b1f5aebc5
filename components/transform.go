package components

import (
	"github.com/automoto/skyrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the player's place in the world.
// X and Y change only through the horizontal integrator, Z only through the jump state
// machine and Heading only through mouse look.
type TransformData struct {
	Position gamemath.Vec3
	Heading  float64 // yaw in degrees
}

var Transform = donburi.NewComponentType[TransformData]()
