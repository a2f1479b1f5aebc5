package main

import (
	"errors"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/skyrunner/assets"
	"github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/fonts"
	"github.com/automoto/skyrunner/scenes"
	"github.com/automoto/skyrunner/shared/leveldata"
	"github.com/automoto/skyrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug       bool    `help:"Whether to enable debug logging."`
	SkipMenu    bool    `help:"Skip the main menu and start playing."`
	Overlay     bool    `help:"Draw sensor rays and extra state in the HUD."`
	Level       string  `help:"TMX level to play instead of the built-in one." type:"path"`
	Config      string  `help:"YAML file overriding the movement tuning." type:"path"`
	Watch       bool    `help:"Reload the config file whenever it changes."`
	Sensitivity float64 `help:"Mouse sensitivity in degrees per pixel, saved for later runs."`
}

type Game struct {
	director *scenes.Director
}

func NewGame(level *leveldata.LevelData, tuning scenes.TuningSource) *Game {
	g := &Game{
		director: scenes.NewDirector(func() scenes.GameSession {
			return scenes.NewWorldScene(level, tuning)
		}),
	}

	if config.Debug.SkipMenu {
		g.director.StartGame()
	}

	return g
}

func (g *Game) Update() error {
	return g.director.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("skyrunner"),
		kong.Description("a first-person platformer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}
	config.Debug.SkipMenu = CLI.SkipMenu
	config.Debug.Overlay = CLI.Overlay

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("skyrunner"); err != nil {
		log.Warn().Err(err).Msg("settings will not be saved")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("using default settings")
	}
	systems.ApplySavedSettings(saved)

	if CLI.Sensitivity > 0 {
		config.Camera.MouseSensitivity = CLI.Sensitivity
	}

	var tuning scenes.TuningSource
	if CLI.Config != "" {
		if CLI.Watch {
			watcher, err := config.NewWatcher(CLI.Config)
			if err != nil {
				log.Error().Err(err).Str("path", CLI.Config).Msg("could not watch config")
			} else {
				defer watcher.Close()
				tuning = watcher
			}
		}

		t, err := config.LoadFile(CLI.Config)
		if err != nil {
			log.Error().Err(err).Msg("using default tuning")
		} else {
			config.Apply(t)
		}
	}

	levelPath := CLI.Level
	if levelPath == "" {
		levelPath = config.Game.LevelPath
	}
	level, err := assets.LoadLevel(levelPath)
	if err != nil {
		log.Error().Err(err).Str("path", levelPath).Msg("falling back to the built-in level")
		level = assets.MustLoadLevel()
	}

	fonts.MustLoad()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Sky Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	err = ebiten.RunGame(NewGame(level, tuning))
	systems.SaveCurrentSettings()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
