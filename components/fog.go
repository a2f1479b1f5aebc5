package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FogData is the scene fog. Density eases toward Target while Tween is running.
type FogData struct {
	Density float64
	Target  float64
	Tween   *gween.Tween
}

var Fog = donburi.NewComponentType[FogData]()
