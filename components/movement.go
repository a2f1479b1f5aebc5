package components

import "github.com/yohamta/donburi"

// MovementData holds the horizontal speeds in the player's local units per second.
type MovementData struct {
	Speed       float64 // positive is forward
	StrafeSpeed float64 // positive is right
}

var Movement = donburi.NewComponentType[MovementData]()
