package components

import (
	cfg "github.com/automoto/dustbag/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputPointer
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions,
// plus every mouse button or touch held this frame.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Pointers        []math.Vec2 // held mouse button and touches
	PointersPressed []math.Vec2 // pointers that went down this frame

	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
