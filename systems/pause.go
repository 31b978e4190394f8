package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on Esc or P.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// A finished round shows its result screen instead
	if game, ok := getGame(ecs); ok && !game.Live() {
		pause.IsPaused = false
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			PauseMusic(ecs)
		} else {
			ResumeMusic(ecs)
		}
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	title := "Paused"
	titleFont := fonts.Title.Get()
	titleX := int((width - float64(textWidth(titleFont, title))) / 2)
	text.Draw(screen, title, titleFont, titleX, int(height/2), cfg.Pause.TextColor)

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintX := int((width - float64(textWidth(hintFont, hint))) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColor)
}

// getPauseHint returns the resume hint for the last used device
func getPauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Start: Resume"
	}
	return "Esc or P: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithLiveCheck wraps a system to skip execution once the round has ended.
func WithLiveCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if game, ok := getGame(e); ok && !game.Live() {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or the round is over
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLiveCheck(system))
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused: false,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
