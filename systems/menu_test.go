package systems

import (
	"testing"

	"github.com/automoto/skyrunner/components"
	cfg "github.com/automoto/skyrunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeNavigator struct {
	state cfg.GameStateID
	calls []string
}

func (f *fakeNavigator) State() cfg.GameStateID { return f.state }
func (f *fakeNavigator) StartGame()             { f.calls = append(f.calls, "start") }
func (f *fakeNavigator) ShowCredits()           { f.calls = append(f.calls, "credits") }
func (f *fakeNavigator) ShowInGameCredits()     { f.calls = append(f.calls, "ingame_credits") }
func (f *fakeNavigator) EndGame()               { f.calls = append(f.calls, "end") }
func (f *fakeNavigator) Escape()                { f.calls = append(f.calls, "escape") }

func press(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[action] = true
}

func release(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func TestMenuSelection(t *testing.T) {
	nav := &fakeNavigator{state: cfg.StateMainMenu}
	e := ecs.NewECS(donburi.NewWorld())
	update := NewUpdateMenu(nav)

	update(e)
	menu := GetOrCreateMenu(e)
	assert.Equal(t, MenuOptionsFor(cfg.StateMainMenu), menu.Options)

	press(e, cfg.ActionMenuDown)
	update(e)
	assert.Equal(t, 1, menu.SelectedIndex)

	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, []string{"credits"}, nav.calls)

	release(e)
	press(e, cfg.ActionMenuUp)
	update(e)
	release(e)
	press(e, cfg.ActionMenuUp)
	update(e)
	assert.Equal(t, 2, menu.SelectedIndex, "selection wraps around")

	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, []string{"credits", "end"}, nav.calls)
}

func TestMenuResetsOnStateChange(t *testing.T) {
	nav := &fakeNavigator{state: cfg.StateMainMenu}
	e := ecs.NewECS(donburi.NewWorld())
	update := NewUpdateMenu(nav)

	press(e, cfg.ActionMenuDown)
	update(e)
	menu := GetOrCreateMenu(e)
	assert.Equal(t, 1, menu.SelectedIndex)

	nav.state = cfg.StateInGameMenu
	release(e)
	update(e)
	assert.Equal(t, 0, menu.SelectedIndex)
	assert.Equal(t, []components.MenuOption{components.MenuResume, components.MenuInGameCredits}, menu.Options)

	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, []string{"escape"}, nav.calls)

	nav.state = cfg.StateInGame
	release(e)
	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, []string{"escape"}, nav.calls, "no options while playing")
}
