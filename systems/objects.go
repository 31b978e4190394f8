package systems

import (
	"github.com/automoto/dustbag/components"
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// objectCenter returns the midpoint of an entity's resolv object.
func objectCenter(e *donburi.Entry) math.Vec2 {
	obj := components.Object.Get(e)
	return math.NewVec2(obj.X+obj.W/2, obj.Y+obj.H/2)
}

// objectRect returns the hitbox of an entity's resolv object.
func objectRect(e *donburi.Entry) gamemath.Rect {
	obj := components.Object.Get(e)
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// detachObject takes an entity out of the collision space while leaving it in the world.
func detachObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

// destroyEntity removes an entity and its collision object. Already removed entries are ignored.
func destroyEntity(e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	detachObject(e)
	e.Remove()
}
