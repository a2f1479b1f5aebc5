package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
)

// Surface names carried by level cubes and matched by the ray sensors.
const (
	SurfaceCube = "Cube"
)
