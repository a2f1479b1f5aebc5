package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the set of configuration groups that can be overridden from a YAML file.
type Tuning struct {
	Player PlayerConfig `yaml:"player"`
	Camera CameraConfig `yaml:"camera"`
	Sensor SensorConfig `yaml:"sensor"`
	Game   GameConfig   `yaml:"game"`
}

// Current returns a copy of the active configuration groups.
func Current() Tuning {
	return Tuning{
		Player: Player,
		Camera: Camera,
		Sensor: Sensor,
		Game:   Game,
	}
}

// Apply makes t the active configuration.
func Apply(t Tuning) {
	Player = t.Player
	Camera = t.Camera
	Sensor = t.Sensor
	Game = t.Game
}

// Parse decodes YAML overrides on top of base. Keys missing from data keep base's values.
func Parse(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadFile reads a YAML override file on top of the active configuration.
func LoadFile(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Current(), fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := Parse(data, Current())
	if err != nil {
		return t, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the movement code cannot work with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.MaxSpeed <= 0 {
		errs = append(errs, errors.New("player.maxSpeed must be positive"))
	}
	if t.Player.MaxStrafeSpeed <= 0 {
		errs = append(errs, errors.New("player.maxStrafeSpeed must be positive"))
	}
	if t.Player.Accel < 0 || t.Player.PassiveDeaccel < 0 || t.Player.ActiveDeaccel < 0 {
		errs = append(errs, errors.New("player acceleration rates must not be negative"))
	}
	if t.Player.LandThreshold > t.Player.FallThreshold {
		errs = append(errs, errors.New("player.landThreshold must not exceed player.fallThreshold"))
	}
	if t.Player.ModelScale <= 0 {
		errs = append(errs, errors.New("player.modelScale must be positive"))
	}
	if t.Player.BodyRadius < 0 {
		errs = append(errs, errors.New("player.bodyRadius must not be negative"))
	}
	if t.Camera.PitchMax <= 0 || t.Camera.PitchMax > 90 {
		errs = append(errs, errors.New("camera.pitchMax must be in (0, 90]"))
	}
	if t.Game.MaxFrameDt <= 0 {
		errs = append(errs, errors.New("game.maxFrameDt must be positive"))
	}
	return errors.Join(errs...)
}
