package systems

import (
	"image/color"

	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, scale bump, pop, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateScaleBumps(ecs)
	updatePops(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateScaleBumps counts down scale bumps and removes them when done
func updateScaleBumps(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.ScaleBump.Each(ecs.World, func(e *donburi.Entry) {
		bump := components.ScaleBump.Get(e)
		bump.Duration--
		if bump.Duration <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.ScaleBump)
	}
}

// updatePops advances pop tweens and removes the entity when the pop finishes
func updatePops(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry
	dt := float32(cfg.TickSeconds())

	components.Pop.Each(ecs.World, func(e *donburi.Entry) {
		pop := components.Pop.Get(e)
		scale, scaleDone := pop.Scale.Update(dt)
		alpha, alphaDone := pop.Alpha.Update(dt)

		if e.HasComponent(components.Sprite) {
			sprite := components.Sprite.Get(e)
			sprite.Alpha = float64(alpha)
			if e.HasComponent(components.ScaleBump) {
				components.ScaleBump.Get(e).Scale = float64(scale)
			}
		}

		if scaleDone && alphaDone {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		destroyEntity(e)
	}
}

// updateAutoDestroy handles entities that should be destroyed after a duration
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	// A ghost may already be gone after hitting the player
	for _, e := range toDestroy {
		destroyEntity(e)
	}
}

// TriggerFlash tints an entity for the given number of frames.
// Brighter colour channels map to stronger multipliers, so white reads as a bright flash.
func TriggerFlash(entry *donburi.Entry, c color.RGBA, frames int) {
	r, g, b := flashMultipliers(c)
	data := components.FlashData{Duration: frames, R: r, G: g, B: b}

	if entry.HasComponent(components.Flash) {
		components.Flash.SetValue(entry, data)
		return
	}
	entry.AddComponent(components.Flash)
	components.Flash.SetValue(entry, data)
}

func flashMultipliers(c color.RGBA) (r, g, b float32) {
	return 1 + 2*float32(c.R)/255, 1 + 2*float32(c.G)/255, 1 + 2*float32(c.B)/255
}

// TriggerScaleBump holds an entity's sprite at scale for the given number of frames
func TriggerScaleBump(entry *donburi.Entry, scale float64, frames int) {
	data := components.ScaleBumpData{Scale: scale, Duration: frames}

	if entry.HasComponent(components.ScaleBump) {
		components.ScaleBump.SetValue(entry, data)
		return
	}
	entry.AddComponent(components.ScaleBump)
	components.ScaleBump.SetValue(entry, data)
}

// StartPop grows an entity's sprite to scale while fading it out, then removes the entity.
func StartPop(entry *donburi.Entry, scale float64, frames int) {
	seconds := float32(frames) * float32(cfg.TickSeconds())

	// The pop drives the scale bump directly, so keep one attached for its lifetime
	TriggerScaleBump(entry, 1, frames+2)

	pop := components.PopData{
		Scale: gween.New(1, float32(scale), seconds, ease.Linear),
		Alpha: gween.New(1, 0, seconds, ease.Linear),
	}
	if !entry.HasComponent(components.Pop) {
		entry.AddComponent(components.Pop)
	}
	components.Pop.SetValue(entry, pop)
}
