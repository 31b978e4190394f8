package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/yohamta/donburi/ecs"
)

// endRound stops the music, plays the matching stinger and records the result.
func endRound(e *ecs.ECS, game *components.GameData, outcome rules.Outcome) {
	StopMusic(e)
	if outcome == rules.OutcomeWin {
		PlaySFX(e, cfg.SoundWin)
	} else {
		PlaySFX(e, cfg.SoundGameOver)
	}

	best, newBest := RecordScore(game.Ruleset.Name, game.State.Score)

	entry := e.World.Entry(e.World.Create(components.Result))
	components.Result.SetValue(entry, components.ResultData{
		Outcome: outcome,
		Score:   game.State.Score,
		Best:    best,
		NewBest: newBest,
	})
}

// NewUpdateResult creates the system that lets the keyboard or gamepad leave the result screen:
// MenuSelect plays again and MenuBack returns to the menu.
func NewUpdateResult(sceneChanger SceneChanger, createArenaScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if _, ok := RoundResult(e); !ok {
			return
		}
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			PlaySFXOnSceneChange(cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createArenaScene())
		case GetAction(input, cfg.ActionMenuBack).JustPressed, GetAction(input, cfg.ActionPause).JustPressed:
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}
