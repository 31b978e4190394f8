package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the hitbox overlay with F1.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Hitboxes = !cfg.Debug.Hitboxes
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	offsetX, offsetY := cameraOffset(ecs)

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			x := obj.X + offsetX
			y := obj.Y + offsetY

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvGhost) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			} else if obj.HasTags(tags.ResolvDust) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvHeart) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	if game, ok := getGame(ecs); ok {
		info := fmt.Sprintf("TPS %.0f  rules %s  dust speed %.0f  ghost speed %.0f  level %d  background %d",
			ebiten.ActualTPS(), game.Ruleset.Name, game.EnemySpeed, game.GhostSpeed, game.Curve.Applied(), game.Track.Current())
		ebitenutil.DebugPrintAt(screen, info, 4, cfg.C.Height-16)
	}
}
