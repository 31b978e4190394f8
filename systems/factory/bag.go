package factory

import (
	"github.com/automoto/dustbag/archetypes"
	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBag(ecs *ecs.ECS, bounds gamemath.Rect) *donburi.Entry {
	bag := archetypes.Bag.Spawn(ecs)
	components.Bag.SetValue(bag, components.BagData{
		Bounds: bounds,
		Scale:  1,
	})
	components.Sprite.SetValue(bag, components.SpriteData{
		Image: "bag",
		Scale: cfg.Bag.Scale,
		Alpha: 1,
	})
	return bag
}

// CreateButton adds an on-screen steering arrow.
func CreateButton(ecs *ecs.ECS, spawn assets.ButtonSpawn) *donburi.Entry {
	button := archetypes.Button.Spawn(ecs)
	components.Button.SetValue(button, components.ButtonData{
		Bounds:    spawn.Bounds,
		Direction: spawn.Direction,
	})
	components.Sprite.SetValue(button, components.SpriteData{
		Image: spawn.Image,
		Scale: cfg.Buttons.Scale,
		Alpha: float64(cfg.Buttons.Alpha),
	})
	return button
}
