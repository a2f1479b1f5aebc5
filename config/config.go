package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the scenes use.
const Default ecs.LayerID = 0

// PlayerConfig contains all player movement and jump tuning.
// Speeds are in the player's local units per second; ModelScale converts them to world units.
type PlayerConfig struct {
	// Horizontal movement
	Accel          float64 `yaml:"accel"`
	PassiveDeaccel float64 `yaml:"passiveDeaccel"` // coasting to a stop
	ActiveDeaccel  float64 `yaml:"activeDeaccel"`  // reversing direction
	MaxSpeed       float64 `yaml:"maxSpeed"`
	MaxStrafeSpeed float64 `yaml:"maxStrafeSpeed"`

	// Vertical movement
	MaxJumpMomentum float64 `yaml:"maxJumpMomentum"` // higher value results in higher jumps
	JumpMultiplier  float64 `yaml:"jumpMultiplier"`  // higher value makes the player rise and fall faster

	// Directional jumps trade vertical momentum for horizontal speed
	DirectionalJumpMomentum float64 `yaml:"directionalJumpMomentum"`
	CrossAxisCarry          float64 `yaml:"crossAxisCarry"`  // fraction of the other axis kept
	BackJumpCarry           float64 `yaml:"backJumpCarry"`   // fraction of forward speed kept on a back jump
	StrafeJumpBoost         float64 `yaml:"strafeJumpBoost"` // multiple of MaxStrafeSpeed

	// Ground contact
	FallThreshold float64 `yaml:"fallThreshold"` // height above ground that starts a fall
	LandThreshold float64 `yaml:"landThreshold"` // height above ground that ends a jump
	StandHeight   float64 `yaml:"standHeight"`   // resting height above ground

	// Dimensions
	ModelScale float64 `yaml:"modelScale"`
	BodyRadius float64 `yaml:"bodyRadius"` // collision sphere in local units, scaled like speeds
	SpawnX     float64 `yaml:"spawnX"`
	SpawnY     float64 `yaml:"spawnY"`
	SpawnZ     float64 `yaml:"spawnZ"`
}

// CameraConfig contains mouse look and head bob configuration.
type CameraConfig struct {
	MouseSensitivity float64 `yaml:"mouseSensitivity"` // degrees per pixel
	InvertY          bool    `yaml:"invertY"`
	FOV              float64 `yaml:"fov"`
	MaxShake         float64 `yaml:"maxShake"`  // higher value results in a wider shake
	ShakeRate        float64 `yaml:"shakeRate"` // higher value results in a faster shake
	PitchMax         float64 `yaml:"pitchMax"`  // degrees, both directions
}

// SensorConfig contains ground and obstacle ray configuration.
type SensorConfig struct {
	Surface          string  `yaml:"surface"`          // only hits on this surface count
	RayOriginDrop    float64 `yaml:"rayOriginDrop"`    // ray origin below the player center, world units
	WallStopDistance float64 `yaml:"wallStopDistance"` // forward acceleration is rejected at or below this
	GroundSentinel   float64 `yaml:"groundSentinel"`   // ground height when nothing is below
	ObstacleSentinel float64 `yaml:"obstacleSentinel"` // obstacle distance when nothing is ahead
}

// GameConfig contains session-level configuration.
type GameConfig struct {
	PausedFogDensity float64 `yaml:"pausedFogDensity"`
	PlayFogDensity   float64 `yaml:"playFogDensity"`
	FogFadeSeconds   float64 `yaml:"fogFadeSeconds"`
	MaxFrameDt       float64 `yaml:"maxFrameDt"` // longest tick the simulation will integrate
	LevelPath        string  `yaml:"levelPath"`
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	Title           string
	Credits         []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Draw rays and state text over the world view
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Sensor SensorConfig
var Game GameConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 170, B: 220, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every configuration group to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Player = DefaultPlayer()
	Camera = DefaultCamera()
	Sensor = DefaultSensor()

	Game = GameConfig{
		PausedFogDensity: 0.8,
		PlayFogDensity:   0.0,
		FogFadeSeconds:   0.25,
		MaxFrameDt:       0.25,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		Title:           "SKY RUNNER",
		Credits: []string{
			"Sky Runner",
			"",
			"Design, code and levels by the Sky Runner team",
			"",
			"Esc: back",
		},
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}

// DefaultPlayer returns the built-in movement tuning.
func DefaultPlayer() PlayerConfig {
	return PlayerConfig{
		Accel:          60,
		PassiveDeaccel: 200,
		ActiveDeaccel:  400,
		MaxSpeed:       80,
		MaxStrafeSpeed: 40,

		MaxJumpMomentum: 3,
		JumpMultiplier:  7,

		DirectionalJumpMomentum: 0.8,
		CrossAxisCarry:          0.1,
		BackJumpCarry:           0.25,
		StrafeJumpBoost:         1.5,

		FallThreshold: 0.35,
		LandThreshold: 0.3,
		StandHeight:   0.3,

		ModelScale: 0.05,
		BodyRadius: 3,
		SpawnX:     0,
		SpawnY:     0,
		SpawnZ:     2,
	}
}

// DefaultCamera returns the built-in camera tuning.
func DefaultCamera() CameraConfig {
	return CameraConfig{
		MouseSensitivity: 0.2,
		FOV:              80,
		MaxShake:         0.025,
		ShakeRate:        0.18,
		PitchMax:         60,
	}
}

// DefaultSensor returns the built-in ray sensor tuning.
func DefaultSensor() SensorConfig {
	return SensorConfig{
		Surface:          "Cube",
		RayOriginDrop:    0.2 * 0.05,
		WallStopDistance: 0.24,
		GroundSentinel:   -1000,
		ObstacleSentinel: 1000,
	}
}
