package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the arena's collision grid (singleton component).
var Space = donburi.NewComponentType[resolv.Space]()

// ObjectData is an entity's hitbox in Space. Its Data field points back at the entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
