package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData draws an image centred on the entity's object.
type SpriteData struct {
	Image string  // key passed to assets.GetImage
	Scale float64 // base draw scale, effects multiply on top
	Alpha float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
