package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // fraction of the screen size
	Duration  int     // total frames
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks sprite flash effect (collect, damage and restore tints)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// ScaleBumpData holds a sprite at Scale until Duration runs out
type ScaleBumpData struct {
	Scale    float64
	Duration int
}

var ScaleBump = donburi.NewComponentType[ScaleBumpData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// PopData grows and fades a sprite out, after which the entity is removed
type PopData struct {
	Scale *gween.Tween
	Alpha *gween.Tween
}

var Pop = donburi.NewComponentType[PopData]()
