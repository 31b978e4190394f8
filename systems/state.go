package systems

import (
	"github.com/automoto/dustbag/components"
	"github.com/yohamta/donburi/ecs"
)

// getGame returns the round's GameData, if the arena has been built.
func getGame(e *ecs.ECS) (*components.GameData, bool) {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Game.Get(entry), true
}

// RoundResult returns how the round ended, once it has.
func RoundResult(e *ecs.ECS) (*components.ResultData, bool) {
	entry, ok := components.Result.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Result.Get(entry), true
}
