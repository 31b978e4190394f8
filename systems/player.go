package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the held arrow or steering action into the round's direction,
// then sets the player's velocity and texture from it.
// Must run AFTER UpdateButtons.
func UpdatePlayer(ecs *ecs.ECS) {
	game, ok := getGame(ecs)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	game.State.SetDirection(steeringDirection(ecs))

	dir := game.State.Direction
	components.Velocity.Get(playerEntry).Vec2 = dir.Velocity(cfg.Player.Speed)

	player := components.Player.Get(playerEntry)
	if player.Texture != dir {
		player.Texture = dir
		components.Sprite.Get(playerEntry).Image = dir.Texture()
	}
}

// steeringDirection applies the input priority: a held on-screen arrow, then the
// first held diagonal action, then standing still.
func steeringDirection(ecs *ecs.ECS) rules.Direction {
	if dir, ok := heldButton(ecs); ok {
		return dir
	}
	input := getOrCreateInput(ecs)
	for i, action := range cfg.SteerActions {
		if GetAction(input, action).Pressed {
			return rules.Diagonals[i]
		}
	}
	return rules.Default
}
