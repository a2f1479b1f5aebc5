package components

import "github.com/yohamta/donburi"

// LookData holds the camera rig state attached to the player.
type LookData struct {
	Pitch     float64 // degrees, positive looks up
	Shake     float64 // current head bob offset
	ShakeRate float64 // signed, flips each time Shake hits its bound
	OffsetX   float64 // camera lateral offset
	Roll      float64 // camera roll in degrees
}

var Look = donburi.NewComponentType[LookData]()
