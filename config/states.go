package config

// GameStateID identifies the top-level menu/game state.
type GameStateID int

const (
	StateMainMenu GameStateID = iota
	StateCreditsMenu
	StateInGame
	StateInGameMenu
	StateInGameCreditsMenu
	StateQuit
)

var gameStateNames = map[GameStateID]string{
	StateMainMenu:          "main_menu",
	StateCreditsMenu:       "credits_menu",
	StateInGame:            "in_game",
	StateInGameMenu:        "in_game_menu",
	StateInGameCreditsMenu: "in_game_credits_menu",
	StateQuit:              "quit",
}

func (s GameStateID) String() string {
	if name, ok := gameStateNames[s]; ok {
		return name
	}
	return "unknown"
}
