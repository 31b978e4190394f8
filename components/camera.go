package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the arena draw offset. It only moves while shaking.
type CameraData struct {
	Offset math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
