package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// VelocityData is a movement in pixels per second.
type VelocityData struct {
	math.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()
