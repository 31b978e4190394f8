package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateMovement moves every object by its velocity for one tick and refreshes
// its collision cell. The player cannot leave the arena.
func UpdateMovement(ecs *ecs.ECS) {
	dt := cfg.TickSeconds()
	width, height := arenaSize(ecs)

	components.Velocity.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e)
		vel := components.Velocity.Get(e)
		if vel.X == 0 && vel.Y == 0 {
			return
		}

		pos := gamemath.Step(math.NewVec2(obj.X, obj.Y), vel.Vec2, dt)
		obj.X, obj.Y = pos.X, pos.Y

		if e.HasComponent(components.Player) {
			obj.X = gamemath.Clamp(obj.X, 0, width-obj.W)
			obj.Y = gamemath.Clamp(obj.Y, 0, height-obj.H)
		}

		obj.Update()
	})
}

// arenaSize returns the loaded arena's size, or the screen size before one is loaded.
func arenaSize(ecs *ecs.ECS) (float64, float64) {
	if entry, ok := components.Arena.First(ecs.World); ok {
		if layout := components.Arena.Get(entry).Layout; layout != nil {
			return float64(layout.Width), float64(layout.Height)
		}
	}
	return float64(cfg.C.Width), float64(cfg.C.Height)
}
