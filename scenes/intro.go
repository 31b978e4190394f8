package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IntroScene shows the title and how to play before the menu
type IntroScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewIntroScene creates a new intro scene
func NewIntroScene(sc SceneChanger) *IntroScene {
	return &IntroScene{sceneChanger: sc}
}

func (is *IntroScene) Update() {
	is.once.Do(is.configure)
	is.ecs.Update()
}

func (is *IntroScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if is.ecs == nil {
		return
	}
	is.ecs.Draw(screen)
}

func (is *IntroScene) configure() {
	is.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(is.sceneChanger)
	}

	is.ecs.AddSystem(systems.UpdateAudio)
	is.ecs.AddSystem(systems.UpdateInput)
	is.ecs.AddSystem(systems.NewUpdateIntro(is.sceneChanger, createMenuScene))

	is.ecs.AddRenderer(cfg.Default, systems.DrawIntro)
}
