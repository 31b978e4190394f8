package factory

import (
	"github.com/automoto/dustbag/archetypes"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.HitboxSize
	newCenteredObject(ecs, player, x, y, size, size, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Texture: rules.Default,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Image: rules.Default.Texture(),
		Scale: cfg.Player.Scale,
		Alpha: 1,
	})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(player, components.FlashData{
		Duration: 0,
		R:        1, G: 1, B: 1,
	})

	return player
}
