// Package rules holds the game-state record and the pure functions that mutate it.
// It must have zero dependencies on ebiten so it can be unit tested headless.
package rules

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi/features/math"
)

// ErrUnknownDirection is returned by ParseDirection for names it does not know.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction is the player's steering state. Dust enemies carry the direction
// of the corner they entered from.
type Direction int

const (
	Default Direction = iota
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Diagonals lists the four steerable directions in corner order.
var Diagonals = [...]Direction{UpLeft, UpRight, DownLeft, DownRight}

var directionNames = map[Direction]string{
	Default:   "default",
	UpLeft:    "up_left",
	UpRight:   "up_right",
	DownLeft:  "down_left",
	DownRight: "down_right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps a name such as "up_left" back to its Direction.
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return d, nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// Velocity returns the velocity for this direction at the given speed.
// Diagonals move at full speed on both axes.
func (d Direction) Velocity(speed float64) math.Vec2 {
	switch d {
	case UpLeft:
		return math.NewVec2(-speed, -speed)
	case UpRight:
		return math.NewVec2(speed, -speed)
	case DownLeft:
		return math.NewVec2(-speed, speed)
	case DownRight:
		return math.NewVec2(speed, speed)
	}
	return math.Vec2{}
}

// Texture returns the player image key shown while steering in this direction.
func (d Direction) Texture() string {
	if d == Default {
		return "player"
	}
	return "player_" + d.String()
}
