package components

import (
	"github.com/automoto/dustbag/shared/gamemath"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/yohamta/donburi"
)

// ButtonData is an on-screen arrow that steers while held.
type ButtonData struct {
	Bounds    gamemath.Rect
	Direction rules.Direction
	Pressed   bool
}

var Button = donburi.NewComponentType[ButtonData]()
