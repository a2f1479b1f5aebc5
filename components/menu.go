package components

import (
	cfg "github.com/automoto/skyrunner/config"
	"github.com/yohamta/donburi"
)

// MenuOption represents a selectable menu entry
type MenuOption int

const (
	MenuStart MenuOption = iota
	MenuCredits
	MenuQuit
	MenuResume
	MenuInGameCredits
)

// MenuData stores the current state of whichever menu is showing
type MenuData struct {
	SelectedIndex int             // Current selection index in Options
	Options       []MenuOption    // Options for the current game state
	ForState      cfg.GameStateID // Game state the options were built for
}

// Menu is the component type for menu state
var Menu = donburi.NewComponentType[MenuData]()
