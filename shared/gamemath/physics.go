package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AngleBetween returns the angle in radians of the line from (x1,y1) to (x2,y2).
func AngleBetween(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// VelocityFromAngle returns a velocity of the given speed pointing along angle.
func VelocityFromAngle(angle, speed float64) dmath.Vec2 {
	return dmath.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed)
}

// VelocityToward aims from one point at another. The zero vector is returned
// when both points coincide so nothing drifts off on a NaN heading.
func VelocityToward(from, to dmath.Vec2, speed float64) dmath.Vec2 {
	if from.X == to.X && from.Y == to.Y {
		return dmath.Vec2{}
	}
	return VelocityFromAngle(AngleBetween(from.X, from.Y, to.X, to.Y), speed)
}

// Step advances a position by velocity (pixels per second) over dt seconds.
func Step(pos, vel dmath.Vec2, dt float64) dmath.Vec2 {
	return dmath.NewVec2(pos.X+vel.X*dt, pos.Y+vel.Y*dt)
}
