package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/systems/factory"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBackground crossfades to the next background when the score reaches its threshold.
// It keeps running after the round ends.
func UpdateBackground(ecs *ecs.ECS) {
	game, ok := getGame(ecs)
	if !ok {
		return
	}

	if level, ok := game.Track.Next(game.State.Score); ok {
		fade := float32(cfg.Effects.BackgroundFade.Seconds())
		tags.Background.Each(ecs.World, func(e *donburi.Entry) {
			if !components.Background.Get(e).Outgoing {
				factory.FadeOutBackground(e, fade)
			}
		})
		factory.CreateBackground(ecs, level.Key, fade)
	}

	updateBackgroundFades(ecs)
}

func updateBackgroundFades(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	dt := float32(cfg.TickSeconds())

	tags.Background.Each(ecs.World, func(e *donburi.Entry) {
		bg := components.Background.Get(e)
		if bg.Fade == nil {
			return
		}
		alpha, done := bg.Fade.Update(dt)
		components.Sprite.Get(e).Alpha = float64(alpha)
		if !done {
			return
		}
		bg.Fade = nil
		if bg.Outgoing {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
