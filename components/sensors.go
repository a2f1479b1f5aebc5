package components

import "github.com/yohamta/donburi"

// SensorsData is the result of the latest ground and forward ray casts.
type SensorsData struct {
	GroundHeight     float64
	ObstacleDistance float64
	GroundHits       int
	ForwardHits      int
}

var Sensors = donburi.NewComponentType[SensorsData]()
