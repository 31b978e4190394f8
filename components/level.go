package components

import (
	"github.com/automoto/dustbag/assets"
	"github.com/yohamta/donburi"
)

// ArenaData is the loaded arena layout the round is played on.
type ArenaData struct {
	Layout *assets.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
