package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/skyrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MouseSensitivity float64 `json:"mouseSensitivity"`
	InvertY          bool    `json:"invertY"`
	Fullscreen       bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil settings when storage is
// unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings captures the settings that survive a restart.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		MouseSensitivity: cfg.Camera.MouseSensitivity,
		InvertY:          cfg.Camera.InvertY,
		Fullscreen:       ebiten.IsFullscreen(),
	}
}

// SaveCurrentSettings writes the current settings, logging instead of failing.
func SaveCurrentSettings() {
	if err := SaveSettings(CurrentSettings()); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
	}
}

// ApplySavedSettings copies saved settings into the camera config and window.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if saved.MouseSensitivity > 0 {
		cfg.Camera.MouseSensitivity = saved.MouseSensitivity
	}
	cfg.Camera.InvertY = saved.InvertY
	ebiten.SetFullscreen(saved.Fullscreen)
}
