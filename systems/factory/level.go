package factory

import (
	"github.com/automoto/dustbag/archetypes"
	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena loads the arena layout from the embedded assets.
func CreateArena(ecs *ecs.ECS, path string) *donburi.Entry {
	layout := assets.NewArenaLoader().MustLoadArena(path)
	return CreateArenaFromLayout(ecs, layout)
}

// CreateArenaFromLayout stores an already parsed layout.
func CreateArenaFromLayout(ecs *ecs.ECS, layout assets.Arena) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.Set(arena, &components.ArenaData{Layout: &layout})
	return arena
}
