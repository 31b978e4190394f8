package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/systems"
	"github.com/automoto/dustbag/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lets the player pick a ruleset and the audio levels
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	menu         *components.MenuData
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// The overlay sets start and quit requests that the menu system acts on
	ms.menuUI.Update()
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createArenaScene := func(ruleset cfg.Ruleset) interface{} {
		return NewArenaScene(ms.sceneChanger, ruleset)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createArenaScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	ms.menu = systems.GetOrCreateMenu(ms.ecs)
	ms.menuUI = ui.NewMenuUI(
		ms.menu,
		func(index int) { systems.SelectRuleset(ms.ecs, index) },
		func() { ms.menu.StartRequested = true },
		func() { ms.menu.QuitRequested = true },
	)

	systems.PlayMusic(ms.ecs, cfg.Sound.BackgroundMusic)
}
