package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateHUD copies the round's labels into the HUD when the state has changed.
func UpdateHUD(ecs *ecs.ECS) {
	entry, ok := components.Game.First(ecs.World)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	if !game.HUDDirty {
		return
	}
	game.HUDDirty = false

	hud := components.HUD.Get(entry)
	hud.Score, hud.Energy, hud.Bag = game.State.Labels()
}

// DrawHUD renders the score, energy and bag labels in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Game.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	face := fonts.HUD.Get()

	for i, label := range [...]string{hud.Score, hud.Energy, hud.Bag} {
		// text.Draw takes the baseline, the config gives the top of each line
		y := int(cfg.HUD.LineY[i]) + face.Metrics().Ascent.Ceil()
		text.Draw(screen, label, face, int(cfg.HUD.X), y, cfg.HUD.Color)
	}
}

func textWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	return int((screenWidth - float64(textWidth(face, s))) / 2)
}
