package gamemath

import (
	"math/rand"

	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// RectAround builds a w*h box centred on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Center returns the midpoint of r.
func (r Rect) Center() dmath.Vec2 {
	return dmath.NewVec2(r.X+r.W/2, r.Y+r.H/2)
}

// Contains reports whether the point lies inside r (edges included).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Side is the screen edge a ghost enters from.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

var sideNames = [...]string{"top", "bottom", "left", "right"}

func (s Side) String() string {
	if s < SideTop || s > SideRight {
		return "unknown"
	}
	return sideNames[s]
}

// RandomSide picks one of the four edges.
func RandomSide(rnd *rand.Rand) Side {
	return Side(rnd.Intn(4))
}

// EntryPoint returns a point margin pixels outside the given edge of a w*h screen,
// at a random position along that edge.
func EntryPoint(side Side, w, h, margin float64, rnd *rand.Rand) dmath.Vec2 {
	switch side {
	case SideTop:
		return dmath.NewVec2(rnd.Float64()*w, -margin)
	case SideBottom:
		return dmath.NewVec2(rnd.Float64()*w, h+margin)
	case SideLeft:
		return dmath.NewVec2(-margin, rnd.Float64()*h)
	default:
		return dmath.NewVec2(w+margin, rnd.Float64()*h)
	}
}

// RandomPoint returns a uniformly random point inside a w*h area.
func RandomPoint(w, h float64, rnd *rand.Rand) dmath.Vec2 {
	return dmath.NewVec2(rnd.Float64()*w, rnd.Float64()*h)
}
