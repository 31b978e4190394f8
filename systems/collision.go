package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCollisions reacts to the player touching dust, hearts and ghosts.
// resolv narrows the search to nearby cells, then each candidate is tested box to box.
// Must run AFTER UpdateMovement.
func UpdateCollisions(ecs *ecs.ECS) {
	game, ok := getGame(ecs)
	if !ok || !game.Live() {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvDust, tags.ResolvHeart, tags.ResolvGhost)
	if check == nil {
		return
	}
	playerRect := objectRect(playerEntry)

	for _, obj := range check.Objects {
		other, ok := obj.Data.(*donburi.Entry)
		if !ok || !other.Valid() {
			continue
		}
		if !gamemath.Overlaps(playerRect, objectRect(other)) {
			continue
		}

		switch {
		case other.HasComponent(tags.Dust):
			onDustOverlap(ecs, game, playerEntry, other)
		case other.HasComponent(tags.Heart):
			onHeartOverlap(ecs, game, playerEntry, other)
		case other.HasComponent(tags.Ghost):
			onGhostOverlap(ecs, game, playerEntry, other)
		}

		if !game.Live() {
			return
		}
	}
}

func onDustOverlap(ecs *ecs.ECS, game *components.GameData, playerEntry, dustEntry *donburi.Entry) {
	dust := components.Dust.Get(dustEntry)
	result := game.State.DustOverlap(dust.Direction)

	switch result {
	case rules.DustCollected:
		PlaySFX(ecs, cfg.SoundCollect)
		if game.Ruleset.Flourishes {
			TriggerScaleBump(playerEntry, cfg.Effects.CollectScale, cfg.Frames(cfg.Effects.CollectTime))
			TriggerFlash(playerEntry, cfg.Effects.CollectTint, cfg.Frames(cfg.Effects.CollectTime))
		}
	case rules.DustDamaged:
		PlaySFX(ecs, cfg.SoundDamage)
		if game.Ruleset.Flourishes {
			TriggerScreenShake(ecs, cfg.Effects.DamageShake, cfg.Frames(cfg.Effects.DamageShakeTime))
			TriggerFlash(playerEntry, cfg.Effects.DamageTint, cfg.Frames(cfg.Effects.DamageTime))
		}
	}

	// The dust is used up whatever happened
	destroyEntity(dustEntry)
	game.HUDDirty = true
	checkRoundOver(ecs, game)
}

func onHeartOverlap(ecs *ecs.ECS, game *components.GameData, playerEntry, heartEntry *donburi.Entry) {
	heart := components.Heart.Get(heartEntry)
	if heart.Collected {
		return
	}
	heart.Collected = true
	game.State.HeartPickup(heart.Kind)

	PlaySFX(ecs, cfg.SoundRestore)
	game.HUDDirty = true

	if !game.Ruleset.Flourishes {
		destroyEntity(heartEntry)
		return
	}
	TriggerFlash(playerEntry, cfg.Effects.RestoreTint, cfg.Frames(cfg.Effects.RestoreTime))

	// Stop it colliding and drifting, then let the pop play out
	detachObject(heartEntry)
	components.Velocity.Get(heartEntry).Vec2 = math.Vec2{}
	StartPop(heartEntry, cfg.Heart.PopScale, cfg.Frames(cfg.Heart.PopTime))
}

func onGhostOverlap(ecs *ecs.ECS, game *components.GameData, playerEntry, ghostEntry *donburi.Entry) {
	game.State.GhostHit()

	PlaySFX(ecs, cfg.SoundDamage)
	if game.Ruleset.Flourishes {
		TriggerScreenShake(ecs, cfg.Effects.GhostShake, cfg.Frames(cfg.Effects.GhostShakeTime))
		TriggerFlash(playerEntry, cfg.Effects.GhostTint, cfg.Frames(cfg.Effects.GhostTime))
	}

	destroyEntity(ghostEntry)
	game.HUDDirty = true
	checkRoundOver(ecs, game)
}

// checkRoundOver ends the round the first time the score or energy crosses a limit.
func checkRoundOver(ecs *ecs.ECS, game *components.GameData) {
	outcome := game.State.CheckGameOver(game.Ruleset.WinScore)
	if outcome == rules.OutcomeNone {
		return
	}
	endRound(ecs, game, outcome)
}
