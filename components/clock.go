package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type ClockData struct {
	Dt    float64 // seconds covered by the current tick
	Frame int
	Last  time.Time
	Fixed bool // when set, Dt is left as is instead of measured
}

var Clock = donburi.NewComponentType[ClockData]()
