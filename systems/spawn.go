package systems

import (
	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/automoto/dustbag/systems/factory"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateSpawners advances each spawn timer and spawns when it fires.
func UpdateSpawners(ecs *ecs.ECS) {
	var fired []components.SpawnKind

	components.SpawnTimer.Each(ecs.World, func(e *donburi.Entry) {
		timer := components.SpawnTimer.Get(e)
		if timer.Interval <= 0 {
			return
		}
		timer.Elapsed++
		if timer.Elapsed >= timer.Interval {
			timer.Elapsed = 0
			fired = append(fired, timer.Kind)
		}
	})

	// Spawn outside Each so the world is not changed mid-iteration
	for _, kind := range fired {
		switch kind {
		case components.SpawnDust:
			spawnDust(ecs)
		case components.SpawnHeart:
			spawnHeart(ecs)
		case components.SpawnGhost:
			spawnGhost(ecs)
		}
	}
}

// spawnDust creates a dust at a random corner, heading for the player.
func spawnDust(ecs *ecs.ECS) {
	game, ok := getGame(ecs)
	if !ok {
		return
	}
	layout := arenaLayout(ecs)
	if layout == nil || len(layout.Corners) == 0 {
		return
	}
	corner := layout.Corners[game.Rand.Intn(len(layout.Corners))]
	factory.CreateDust(ecs, corner, playerTarget(ecs), game.EnemySpeed)
}

// spawnHeart creates a heart of random size at a random point, drifting toward the player.
func spawnHeart(ecs *ecs.ECS) {
	game, ok := getGame(ecs)
	if !ok {
		return
	}
	width, height := arenaSize(ecs)

	kind := rules.HeartSmall
	if game.Rand.Intn(2) == 1 {
		kind = rules.HeartBig
	}
	pos := gamemath.RandomPoint(width, height, game.Rand)
	factory.CreateHeart(ecs, kind, pos, playerTarget(ecs))
}

// spawnGhost creates a ghost just outside a random edge, flying through the arena centre.
func spawnGhost(ecs *ecs.ECS) {
	game, ok := getGame(ecs)
	if !ok {
		return
	}
	width, height := arenaSize(ecs)

	side := gamemath.RandomSide(game.Rand)
	pos := gamemath.EntryPoint(side, width, height, cfg.Ghost.EntryMargin, game.Rand)
	center := math.NewVec2(width/2, height/2)
	factory.CreateGhost(ecs, side, pos, center, game.GhostSpeed)
}

// ResetSpawnTimer replaces the timer of the given kind with a fresh one firing every interval frames.
func ResetSpawnTimer(ecs *ecs.ECS, kind components.SpawnKind, interval int) {
	var existing []*donburi.Entry
	components.SpawnTimer.Each(ecs.World, func(e *donburi.Entry) {
		if components.SpawnTimer.Get(e).Kind == kind {
			existing = append(existing, e)
		}
	})
	for _, e := range existing {
		e.Remove()
	}
	factory.CreateSpawnTimer(ecs, kind, interval)
}

// playerTarget returns the player's centre, or the arena centre when there is no player.
func playerTarget(ecs *ecs.ECS) math.Vec2 {
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		return objectCenter(playerEntry)
	}
	width, height := arenaSize(ecs)
	return math.NewVec2(width/2, height/2)
}

func arenaLayout(ecs *ecs.ECS) *assets.Arena {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Arena.Get(entry).Layout
}
