package gamemath

import (
	"math"
	"math/rand"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func TestVelocityToward(t *testing.T) {
	tests := []struct {
		name   string
		from   dmath.Vec2
		to     dmath.Vec2
		wantVX float64
		wantVY float64
	}{
		{"right", dmath.NewVec2(0, 0), dmath.NewVec2(10, 0), 150, 0},
		{"up", dmath.NewVec2(5, 5), dmath.NewVec2(5, -20), 0, -150},
		{"diagonal", dmath.NewVec2(0, 0), dmath.NewVec2(3, 4), 90, 120},
		{"same point", dmath.NewVec2(7, 7), dmath.NewVec2(7, 7), 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := VelocityToward(tc.from, tc.to, 150)
			if math.Abs(v.X-tc.wantVX) > eps || math.Abs(v.Y-tc.wantVY) > eps {
				t.Fatalf("VelocityToward = (%v,%v), want (%v,%v)", v.X, v.Y, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestVelocityFromAngleKeepsSpeed(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi / 2, 2.5, -1.1} {
		v := VelocityFromAngle(angle, 250)
		if got := math.Hypot(v.X, v.Y); math.Abs(got-250) > 1e-6 {
			t.Fatalf("speed at angle %v = %v, want 250", angle, got)
		}
	}
}

func TestStep(t *testing.T) {
	got := Step(dmath.NewVec2(10, 10), dmath.NewVec2(60, -120), 0.5)
	if got.X != 40 || got.Y != -50 {
		t.Fatalf("Step = (%v,%v), want (40,-50)", got.X, got.Y)
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(100, 50, 42, 30)
	if r.X != 79 || r.Y != 35 || r.W != 42 || r.H != 30 {
		t.Fatalf("RectAround = %+v, want {79 35 42 30}", r)
	}
	if c := r.Center(); c.X != 100 || c.Y != 50 {
		t.Fatalf("Center = (%v,%v), want (100,50)", c.X, c.Y)
	}
}

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 8, Y: 8, W: 5, H: 5}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(a, tc.b); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", a, tc.b, got, tc.want)
			}
			if got := Overlaps(tc.b, a); got != tc.want {
				t.Fatalf("Overlaps is not symmetric for %v", tc.b)
			}
		})
	}
}

func TestEntryPointIsOutsideScreen(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	const w, h, margin = 960.0, 540.0, 50.0
	for i := 0; i < 200; i++ {
		side := RandomSide(rnd)
		p := EntryPoint(side, w, h, margin, rnd)
		switch side {
		case SideTop:
			if p.Y != -margin || p.X < 0 || p.X > w {
				t.Fatalf("top entry %v", p)
			}
		case SideBottom:
			if p.Y != h+margin || p.X < 0 || p.X > w {
				t.Fatalf("bottom entry %v", p)
			}
		case SideLeft:
			if p.X != -margin || p.Y < 0 || p.Y > h {
				t.Fatalf("left entry %v", p)
			}
		case SideRight:
			if p.X != w+margin || p.Y < 0 || p.Y > h {
				t.Fatalf("right entry %v", p)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Fatalf("Clamp(-5) = %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Fatalf("Clamp(15) = %v", got)
	}
	if got := Clamp(4, 0, 10); got != 4 {
		t.Fatalf("Clamp(4) = %v", got)
	}
}
