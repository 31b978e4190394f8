package systems

import (
	"github.com/automoto/dustbag/components"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateButtons marks each on-screen arrow held by the mouse or a touch.
// Must run AFTER UpdateInput.
func UpdateButtons(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	components.Button.Each(ecs.World, func(e *donburi.Entry) {
		button := components.Button.Get(e)
		button.Pressed = false
		for _, p := range input.Pointers {
			if button.Bounds.Contains(p.X, p.Y) {
				button.Pressed = true
				break
			}
		}
	})
}

// heldButton returns the direction of the first pressed arrow, if any.
func heldButton(ecs *ecs.ECS) (rules.Direction, bool) {
	held := rules.Default
	found := false
	components.Button.Each(ecs.World, func(e *donburi.Entry) {
		if found {
			return
		}
		if button := components.Button.Get(e); button.Pressed {
			held = button.Direction
			found = true
		}
	})
	return held, found
}
