package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateIntro creates the loading screen system. It moves on after the intro
// duration or on any click, tap or key.
func NewUpdateIntro(sceneChanger SceneChanger, createNextScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		intro := getOrCreateIntro(e)
		if intro.Dismissed {
			return
		}
		intro.Elapsed++

		input := getOrCreateInput(e)
		if intro.Elapsed >= cfg.Frames(cfg.Intro.Duration) || AnyInputJustPressed(input) {
			intro.Dismissed = true
			sceneChanger.ChangeScene(createNextScene())
		}
	}
}

// DrawIntro renders the title and instructions.
func DrawIntro(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	screen.Fill(cfg.Intro.BackgroundColor)

	titleFont := fonts.Title.Get()
	title := "DUST BAG"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/3), cfg.Intro.TitleColor)

	bodyFont := fonts.Body.Get()
	lineHeight := bodyFont.Metrics().Height.Ceil() + 8
	y := int(height/3) + 60
	for _, line := range cfg.Intro.Lines {
		text.Draw(screen, line, bodyFont, centerTextX(line, bodyFont, width), y, cfg.Intro.TextColor)
		y += lineHeight
	}
}

// getOrCreateIntro returns the singleton Intro component, creating if needed
func getOrCreateIntro(e *ecs.ECS) *components.IntroData {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Intro))
	}
	return components.Intro.Get(entry)
}
