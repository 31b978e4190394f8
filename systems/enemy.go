package systems

import (
	"github.com/automoto/dustbag/components"
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDust re-aims every dust at the player at the current enemy speed.
func UpdateDust(ecs *ecs.ECS) {
	game, ok := getGame(ecs)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	target := objectCenter(playerEntry)

	tags.Dust.Each(ecs.World, func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		vel.Vec2 = gamemath.VelocityToward(objectCenter(e), target, game.EnemySpeed)
	})
}
