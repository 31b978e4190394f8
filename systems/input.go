package systems

import (
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slices to avoid allocations every frame
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateButtons and UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Stick and D-pad diagonals steer too
	if action := gamepadDiagonal(gamepadIDs); action != cfg.ActionNone {
		input.Current[action] = true
		gamepadUsed = true
	}

	pollPointers(input)

	switch {
	case len(input.Pointers) > 0:
		input.LastInputMethod = components.InputPointer
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollPointers records the held left mouse button and every touch.
func pollPointers(input *components.InputData) {
	input.Pointers = input.Pointers[:0]
	input.PointersPressed = input.PointersPressed[:0]

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p := math.NewVec2(float64(x), float64(y))
		input.Pointers = append(input.Pointers, p)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			input.PointersPressed = append(input.PointersPressed, p)
		}
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		p := math.NewVec2(float64(x), float64(y))
		input.Pointers = append(input.Pointers, p)
		if inpututil.TouchPressDuration(id) == 1 {
			input.PointersPressed = append(input.PointersPressed, p)
		}
	}
}

// gamepadDiagonal maps the left stick or a D-pad pair onto a steering action.
func gamepadDiagonal(gamepads []ebiten.GamepadID) cfg.ActionID {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left := horizontal < -deadzone || ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftLeft)
		right := horizontal > deadzone || ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftRight)
		up := vertical < -deadzone || ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftTop)
		down := vertical > deadzone || ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftBottom)

		if action := diagonalAction(left, right, up, down); action != cfg.ActionNone {
			return action
		}
	}
	return cfg.ActionNone
}

// diagonalAction returns the steering action for a held horizontal and vertical pair.
func diagonalAction(left, right, up, down bool) cfg.ActionID {
	switch {
	case up && left && !right:
		return cfg.ActionUpLeft
	case up && right && !left:
		return cfg.ActionUpRight
	case down && left && !right:
		return cfg.ActionDownLeft
	case down && right && !left:
		return cfg.ActionDownRight
	}
	return cfg.ActionNone
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// AnyInputJustPressed reports a click, tap, or any bound action going down this frame.
func AnyInputJustPressed(input *components.InputData) bool {
	if len(input.PointersPressed) > 0 {
		return true
	}
	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		if GetAction(input, id).JustPressed {
			return true
		}
	}
	return false
}
