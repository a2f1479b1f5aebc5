package systems

import (
	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	lineHeight     = 20
	menuItemHeight = 28
)

// MenuNavigator is the game state machine as seen from the menus.
type MenuNavigator interface {
	State() cfg.GameStateID
	StartGame()
	ShowCredits()
	ShowInGameCredits()
	EndGame()
	Escape()
}

// NewUpdateMenu creates an UpdateMenu system that drives nav from menu selections.
// Escape is left to the navigator itself since it applies in every state.
func NewUpdateMenu(nav MenuNavigator) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		syncMenuOptions(menu, nav.State())

		// Navigate menu with wrap-around
		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		switch menu.Options[menu.SelectedIndex] {
		case components.MenuStart:
			nav.StartGame()
		case components.MenuCredits:
			nav.ShowCredits()
		case components.MenuQuit:
			nav.EndGame()
		case components.MenuResume:
			nav.Escape()
		case components.MenuInGameCredits:
			nav.ShowInGameCredits()
		}
	}
}

// MenuOptionsFor returns the selectable entries shown in a game state.
func MenuOptionsFor(state cfg.GameStateID) []components.MenuOption {
	switch state {
	case cfg.StateMainMenu:
		return []components.MenuOption{components.MenuStart, components.MenuCredits, components.MenuQuit}
	case cfg.StateInGameMenu:
		return []components.MenuOption{components.MenuResume, components.MenuInGameCredits}
	default:
		return nil
	}
}

func syncMenuOptions(menu *components.MenuData, state cfg.GameStateID) {
	if menu.ForState == state && menu.Options != nil {
		return
	}
	menu.ForState = state
	menu.Options = MenuOptionsFor(state)
	menu.SelectedIndex = 0
}

// NewDrawMenu creates a renderer for the menu that belongs to nav's state.
func NewDrawMenu(nav MenuNavigator) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := screen.Bounds().Dx()
		height := screen.Bounds().Dy()

		state := nav.State()
		switch state {
		case cfg.StateMainMenu, cfg.StateCreditsMenu:
			vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)
		}

		switch state {
		case cfg.StateMainMenu:
			drawCentered(screen, cfg.Menu.Title, fonts.Title, height/4)
			drawOptions(e, screen)
		case cfg.StateInGameMenu:
			drawCentered(screen, "PAUSED", fonts.Title, height/4)
			drawOptions(e, screen)
		case cfg.StateCreditsMenu, cfg.StateInGameCreditsMenu:
			for i, line := range cfg.Menu.Credits {
				drawCentered(screen, line, fonts.Normal, height/4+i*lineHeight)
			}
		}

		input := getOrCreateInput(e)
		hint := getMenuHint(input.LastInputMethod)
		drawCentered(screen, hint, fonts.Small, height-24)
	}
}

func drawOptions(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	startY := screen.Bounds().Dy() / 2

	for i, option := range menu.Options {
		label := getOptionLabel(option)
		if i == menu.SelectedIndex {
			label = "> " + label + " <"
		}
		drawCentered(screen, label, fonts.Normal, startY+i*menuItemHeight)
	}
}

func drawCentered(screen *ebiten.Image, msg string, font fonts.FontName, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2, float64(y))
	op.ColorScale.ScaleWithColor(cfg.White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, font.Get(), op)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Back"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Back"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Back"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MenuOption) string {
	switch option {
	case components.MenuStart:
		return "Start Game"
	case components.MenuCredits, components.MenuInGameCredits:
		return "Credits"
	case components.MenuQuit:
		return "Quit"
	case components.MenuResume:
		return "Resume"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
