package systems

import (
	"os"

	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// The menu overlay sets the requests, the keyboard and gamepad can too.
func NewUpdateMenu(sceneChanger SceneChanger, createArenaScene func(cfg.Ruleset) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Q and E (or the top shoulder buttons) flip through the rulesets
		if GetAction(input, cfg.ActionUpLeft).JustPressed {
			SelectRuleset(e, menu.SelectedRuleset-1)
		}
		if GetAction(input, cfg.ActionUpRight).JustPressed {
			SelectRuleset(e, menu.SelectedRuleset+1)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			menu.StartRequested = true
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			menu.QuitRequested = true
		}

		switch {
		case menu.QuitRequested:
			os.Exit(0)
		case menu.StartRequested:
			menu.StartRequested = false
			PlaySFXOnSceneChange(cfg.SoundMenuSelect)
			ruleset := SelectedRuleset(e)
			SaveCurrentSettings(ruleset.Name)
			sceneChanger.ChangeScene(createArenaScene(ruleset))
		}
	}
}

// DrawMenu renders the menu backdrop and the navigation hint under the overlay.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	screen.DrawImage(assets.GetImage("background"), nil)
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Intro.TextColor)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputGamepad:
		return "LB/RB: Rules   Start: Play"
	case components.InputPointer:
		return "Pick the rules and press Play"
	}
	return "Q/E: Rules   Enter: Play   Backspace: Quit"
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed.
// A new menu starts on the last played ruleset.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			SelectedRuleset: cfg.RulesetIndex(lastRuleset),
			BestScores:      BestScores(),
		})
	}
	return components.Menu.Get(entry)
}

// lastRuleset is the ruleset the menu opens on.
var lastRuleset = cfg.DefaultRuleset

// SetLastRuleset records the ruleset restored from disk or chosen on the command line.
func SetLastRuleset(name string) {
	if _, err := cfg.RulesetByName(name); err == nil {
		lastRuleset = name
	}
}

// LastRuleset returns the ruleset the menu would open on.
func LastRuleset() cfg.Ruleset {
	ruleset, err := cfg.RulesetByName(lastRuleset)
	if err != nil {
		ruleset, _ = cfg.RulesetByName(cfg.DefaultRuleset)
	}
	return ruleset
}

// SelectRuleset moves the menu selection, wrapping around at either end.
func SelectRuleset(e *ecs.ECS, index int) {
	menu := GetOrCreateMenu(e)
	n := len(cfg.Rulesets)
	menu.SelectedRuleset = ((index % n) + n) % n
	lastRuleset = cfg.Rulesets[menu.SelectedRuleset].Name
}

// SelectedRuleset returns the ruleset highlighted in the menu.
func SelectedRuleset(e *ecs.ECS) cfg.Ruleset {
	return cfg.Rulesets[GetOrCreateMenu(e).SelectedRuleset]
}

// CycleMusicVolume steps the music volume and saves it.
func CycleMusicVolume() float64 {
	SetMusicVolume(cfg.NextVolumeStep(GetMusicVolume()))
	SaveCurrentSettings(lastRuleset)
	return GetMusicVolume()
}

// CycleSFXVolume steps the sound effect volume and saves it.
func CycleSFXVolume() float64 {
	SetSFXVolume(cfg.NextVolumeStep(GetSFXVolume()))
	SaveCurrentSettings(lastRuleset)
	return GetSFXVolume()
}

// ToggleMute flips the mute switch and saves it.
func ToggleMute() bool {
	SetMuted(!IsMuted())
	SaveCurrentSettings(lastRuleset)
	return IsMuted()
}
