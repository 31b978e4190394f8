package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBag empties the bag on a click or tap on its icon (or the EmptyBag action)
// and keeps the full-bag tint and pulse in step with the bag level.
func UpdateBag(ecs *ecs.ECS) {
	game, ok := getGame(ecs)
	if !ok {
		return
	}
	bagEntry, ok := tags.Bag.First(ecs.World)
	if !ok {
		return
	}
	bag := components.Bag.Get(bagEntry)

	if game.Live() && bagClicked(ecs, bag) {
		game.State.EmptyBag()
		game.HUDDirty = true
		PlaySFX(ecs, cfg.SoundClearBag)
	}

	full := game.State.BagFull()
	switch {
	case full && !bag.Full:
		bag.Full = true
		if game.Ruleset.Flourishes {
			bag.Pulse = newBagPulse()
		}
	case !full && bag.Full:
		bag.Full = false
		bag.Pulse = nil
		bag.Scale = 1
	}

	if bag.Pulse != nil {
		scale, _, done := bag.Pulse.Update(float32(cfg.TickSeconds()))
		bag.Scale = float64(scale)
		if done {
			bag.Pulse.Reset()
		}
	}
}

func bagClicked(ecs *ecs.ECS, bag *components.BagData) bool {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionEmptyBag).JustPressed {
		return true
	}
	for _, p := range input.PointersPressed {
		if bag.Bounds.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

// newBagPulse grows the bag icon and shrinks it back; it is restarted each time it ends.
func newBagPulse() *gween.Sequence {
	half := float32(cfg.Bag.PulseTime.Seconds())
	return gween.NewSequence(
		gween.New(1, float32(cfg.Bag.PulseScale), half, ease.InOutSine),
		gween.New(float32(cfg.Bag.PulseScale), 1, half, ease.InOutSine),
	)
}
