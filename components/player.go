package components

import (
	"github.com/automoto/dustbag/shared/rules"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Texture is the direction whose sprite is currently shown.
	Texture rules.Direction
}

var Player = donburi.NewComponentType[PlayerData]()
