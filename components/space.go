package components

import (
	"github.com/automoto/skyrunner/world"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[world.Space]()
