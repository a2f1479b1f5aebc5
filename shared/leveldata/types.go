// Package leveldata provides TMX level parsing.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// LevelData holds the collidable geometry and spawn point parsed from a TMX level file.
type LevelData struct {
	Name   string
	Boxes  []Box
	Spawn  *SpawnPoint
	MinX   float64
	MinY   float64
	MaxX   float64
	MaxY   float64
	Height float64 // highest box top
}

// Box is an axis-aligned collidable box in world units.
type Box struct {
	Name             string // surface name, "Cube" for regular geometry
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// SpawnPoint represents the player spawn location in world units.
type SpawnPoint struct {
	X, Y, Z float64
	Heading float64
}
