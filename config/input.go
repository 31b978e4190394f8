package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionUpLeft
	ActionUpRight
	ActionDownLeft
	ActionDownRight
	ActionEmptyBag
	ActionPause
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// SteerActions lists the diagonal actions in priority order.
var SteerActions = [...]ActionID{ActionUpLeft, ActionUpRight, ActionDownLeft, ActionDownRight}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.35,
		Bindings: map[ActionID]InputBinding{
			ActionUpLeft: {
				Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyHome, ebiten.KeyNumpad7},
				// LB (stick diagonals handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionUpRight: {
				Keys: []ebiten.Key{ebiten.KeyE, ebiten.KeyPageUp, ebiten.KeyNumpad9},
				// RB
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionDownLeft: {
				Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyEnd, ebiten.KeyNumpad1},
				// LT
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomLeft,
				},
			},
			ActionDownRight: {
				Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyPageDown, ebiten.KeyNumpad3},
				// RT
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionEmptyBag: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyB},
				// Y / Triangle
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyKPEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}
