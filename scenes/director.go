package scenes

import (
	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// Scene is anything the director can update and draw.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Session is the running game as seen from the menus.
type Session interface {
	// PauseGame toggles the simulation between frozen and running.
	PauseGame()
	ToggleMouseControls(visible bool)
	SetFogDensity(density float64)
}

// GameSession is a Session that the director also drives as a scene.
type GameSession interface {
	Session
	Scene
}

// Director owns the game/menu state machine and decides which scene runs.
type Director struct {
	state      cfg.GameStateID
	newSession func() GameSession
	session    GameSession
	menu       Scene
	input      components.InputData
}

// NewDirector starts at the main menu. newSession is called the first time the game starts.
func NewDirector(newSession func() GameSession) *Director {
	d := &Director{
		state:      cfg.StateMainMenu,
		newSession: newSession,
	}
	d.menu = NewMenuScene(d)
	return d
}

// State returns the current game state.
func (d *Director) State() cfg.GameStateID {
	return d.state
}

// Done reports whether quitting was requested.
func (d *Director) Done() bool {
	return d.state == cfg.StateQuit
}

// Escape backs out of the current state.
func (d *Director) Escape() {
	switch d.state {
	case cfg.StateMainMenu:
		d.setState(cfg.StateQuit)
	case cfg.StateCreditsMenu:
		d.setState(cfg.StateMainMenu)
	case cfg.StateInGame:
		d.session.PauseGame()
		d.session.ToggleMouseControls(true)
		d.session.SetFogDensity(cfg.Game.PausedFogDensity)
		d.setState(cfg.StateInGameMenu)
	case cfg.StateInGameMenu:
		d.session.PauseGame()
		d.session.SetFogDensity(cfg.Game.PlayFogDensity)
		d.session.ToggleMouseControls(false)
		d.setState(cfg.StateInGame)
	case cfg.StateInGameCreditsMenu:
		d.setState(cfg.StateInGameMenu)
	}
}

// StartGame leaves the main menu for gameplay.
func (d *Director) StartGame() {
	if d.state != cfg.StateMainMenu {
		return
	}
	if d.session == nil {
		d.session = d.newSession()
	}
	d.setState(cfg.StateInGame)
}

// ShowCredits opens the credits from the main menu.
func (d *Director) ShowCredits() {
	if d.state != cfg.StateMainMenu {
		return
	}
	d.setState(cfg.StateCreditsMenu)
}

// ShowInGameCredits opens the credits from the in-game menu.
func (d *Director) ShowInGameCredits() {
	if d.state != cfg.StateInGameMenu {
		return
	}
	d.setState(cfg.StateInGameCreditsMenu)
}

// EndGame quits from the main menu.
func (d *Director) EndGame() {
	if d.state != cfg.StateMainMenu {
		return
	}
	d.setState(cfg.StateQuit)
}

// Update handles escape, then runs the session and the menu. It returns
// ebiten.Termination once quitting was requested.
func (d *Director) Update() error {
	if d.Done() {
		return ebiten.Termination
	}

	systems.PollMenuInput(&d.input)
	if systems.GetAction(&d.input, cfg.ActionEscape).JustPressed {
		d.Escape()
	}

	if d.session != nil && d.inSession() {
		d.session.Update()
	}
	// The menu keeps polling during play so its edges are fresh when it opens.
	d.menu.Update()

	if d.Done() {
		return ebiten.Termination
	}
	return nil
}

func (d *Director) Draw(screen *ebiten.Image) {
	if d.session != nil && d.inSession() {
		d.session.Draw(screen)
	}
	if d.state != cfg.StateInGame {
		d.menu.Draw(screen)
	}
}

func (d *Director) inSession() bool {
	switch d.state {
	case cfg.StateInGame, cfg.StateInGameMenu, cfg.StateInGameCreditsMenu:
		return true
	}
	return false
}

func (d *Director) setState(next cfg.GameStateID) {
	log.Debug().Stringer("from", d.state).Stringer("to", next).Msg("game state")
	d.state = next
}
