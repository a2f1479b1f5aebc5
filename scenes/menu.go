package scenes

import (
	"sync"

	cfg "github.com/automoto/skyrunner/config"
	"github.com/automoto/skyrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu, the in-game menu and both credits screens.
// Which one shows follows the navigator's state.
type MenuScene struct {
	ecs  *ecs.ECS
	nav  systems.MenuNavigator
	once sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(nav systems.MenuNavigator) *MenuScene {
	return &MenuScene{nav: nav}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateMenuInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.nav))

	ms.ecs.AddRenderer(cfg.Default, systems.NewDrawMenu(ms.nav))
}
