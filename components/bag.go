package components

import (
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BagData is the clickable dust bag icon.
type BagData struct {
	Bounds gamemath.Rect
	Full   bool            // tinted and, with flourishes, pulsing
	Pulse  *gween.Sequence // 1 -> PulseScale -> 1, restarted while full
	Scale  float64         // current pulse scale
}

var Bag = donburi.NewComponentType[BagData]()
