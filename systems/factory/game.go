package factory

import (
	"math/rand"

	"github.com/automoto/dustbag/archetypes"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame starts a fresh round of the given ruleset.
func CreateGame(ecs *ecs.ECS, ruleset cfg.Ruleset, seed int64) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		State:      rules.NewState(),
		Ruleset:    ruleset,
		Curve:      rules.NewDifficultyCurve(ruleset.Difficulty),
		Track:      rules.NewBackgroundTrack(ruleset.Backgrounds),
		EnemySpeed: cfg.Dust.Speed,
		GhostSpeed: cfg.Ghost.Speed,
		Rand:       rand.New(rand.NewSource(seed)),
		HUDDirty:   true,
	})
	return game
}

// CreateSpawnTimers adds the dust and heart timers, plus the ghost timer when the ruleset has ghosts.
func CreateSpawnTimers(ecs *ecs.ECS, ruleset cfg.Ruleset) {
	CreateSpawnTimer(ecs, components.SpawnDust, cfg.Frames(cfg.Dust.Interval))
	CreateSpawnTimer(ecs, components.SpawnHeart, cfg.Frames(cfg.Heart.Interval))
	if ruleset.Ghosts {
		CreateSpawnTimer(ecs, components.SpawnGhost, cfg.Frames(cfg.Ghost.Delay))
	}
}

func CreateSpawnTimer(ecs *ecs.ECS, kind components.SpawnKind, interval int) *donburi.Entry {
	timer := archetypes.SpawnTimer.Spawn(ecs)
	components.SpawnTimer.SetValue(timer, components.SpawnTimerData{
		Kind:     kind,
		Interval: interval,
	})
	return timer
}
