package systems

import (
	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
)

func defaultTuning() *components.TuningData {
	return &components.TuningData{
		Player: cfg.DefaultPlayer(),
		Camera: cfg.DefaultCamera(),
		Sensor: cfg.DefaultSensor(),
	}
}

func held(actions ...cfg.ActionID) *components.InputData {
	input := &components.InputData{}
	for _, a := range actions {
		input.Current[a] = true
	}
	return input
}
