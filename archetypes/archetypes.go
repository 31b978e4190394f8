package archetypes

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Game = newArchetype(
		components.Game,
		components.HUD,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Velocity,
		components.Sprite,
		components.Flash,
	)
	Dust = newArchetype(
		tags.Dust,
		components.Dust,
		components.Object,
		components.Velocity,
		components.Sprite,
	)
	Heart = newArchetype(
		tags.Heart,
		components.Heart,
		components.Object,
		components.Velocity,
		components.Sprite,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Ghost,
		components.Object,
		components.Velocity,
		components.Sprite,
		components.AutoDestroy,
	)
	SpawnTimer = newArchetype(
		components.SpawnTimer,
	)
	Background = newArchetype(
		tags.Background,
		components.Background,
		components.Sprite,
	)
	Bag = newArchetype(
		tags.Bag,
		components.Bag,
		components.Sprite,
	)
	Button = newArchetype(
		tags.Button,
		components.Button,
		components.Sprite,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
