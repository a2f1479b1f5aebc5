package components

import (
	cfg "github.com/automoto/skyrunner/config"
	"github.com/yohamta/donburi"
)

// TuningData is a per-player copy of the movement configuration.
type TuningData struct {
	Player cfg.PlayerConfig
	Camera cfg.CameraConfig
	Sensor cfg.SensorConfig
}

var Tuning = donburi.NewComponentType[TuningData]()
