package factory

import (
	"github.com/automoto/dustbag/archetypes"
	"github.com/automoto/dustbag/components"
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision grid. The grid is grown to whole cells so the
// last partial row and column are still covered.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(roundUp(width, cellWidth), roundUp(height, cellHeight), cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func roundUp(n, step int) int {
	return (n + step - 1) / step * step
}

// newCenteredObject builds a w*h object centred on (cx, cy) and adds it to the arena space.
func newCenteredObject(ecs *ecs.ECS, entry *donburi.Entry, cx, cy, w, h float64, tags ...string) *resolv.Object {
	r := gamemath.RectAround(cx, cy, w, h)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
