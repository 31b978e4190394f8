package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDifficulty raises enemy and ghost speed as the score climbs.
// At most one level is applied per frame.
func UpdateDifficulty(ecs *ecs.ECS) {
	game, ok := getGame(ecs)
	if !ok || !game.Live() {
		return
	}

	level, ok := game.Curve.Next(game.State.Score)
	if !ok {
		return
	}

	game.EnemySpeed = level.EnemySpeed
	game.GhostSpeed = level.GhostSpeed
	if game.Ruleset.Ghosts && level.GhostDelay > 0 {
		ResetSpawnTimer(ecs, components.SpawnGhost, cfg.Frames(level.GhostDelay))
	}
}
