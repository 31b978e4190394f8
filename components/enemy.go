package components

import (
	"github.com/automoto/dustbag/shared/rules"
	"github.com/yohamta/donburi"
)

// DustData marks a roaming dust and the corner direction it entered from.
type DustData struct {
	Direction rules.Direction
}

var Dust = donburi.NewComponentType[DustData]()

type HeartData struct {
	Kind rules.HeartKind
	// Collected hearts stay on screen for their pop tween only.
	Collected bool
}

var Heart = donburi.NewComponentType[HeartData]()

type GhostData struct {
	Side string // edge the ghost entered from, for debugging
}

var Ghost = donburi.NewComponentType[GhostData]()
