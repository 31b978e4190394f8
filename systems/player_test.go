package systems

import (
	stdmath "math"
	"testing"

	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/automoto/dustbag/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// withButtons adds the arena's on-screen arrows to a test round.
func withButtons(e *ecs.ECS) {
	for _, spawn := range arenaLayout(e).Buttons {
		factory.CreateButton(e, spawn)
	}
}

// pointAt holds a pointer over the centre of the arrow for dir.
func pointAt(t *testing.T, e *ecs.ECS, dir rules.Direction) {
	t.Helper()
	for _, spawn := range arenaLayout(e).Buttons {
		if spawn.Direction == dir {
			input := getOrCreateInput(e)
			input.Pointers = append(input.Pointers, spawn.Bounds.Center())
			return
		}
	}
	t.Fatalf("no arrow for %v", dir)
}

func TestSteeringPriority(t *testing.T) {
	tests := []struct {
		name    string
		button  rules.Direction // Default means no arrow held
		actions []cfg.ActionID
		want    rules.Direction
	}{
		{"nothing held", rules.Default, nil, rules.Default},
		{"single action", rules.Default, []cfg.ActionID{cfg.ActionDownRight}, rules.DownRight},
		{"first action wins", rules.Default, []cfg.ActionID{cfg.ActionDownLeft, cfg.ActionUpRight}, rules.UpRight},
		{"arrow beats keys", rules.DownLeft, []cfg.ActionID{cfg.ActionUpLeft}, rules.DownLeft},
		{"arrow alone", rules.UpRight, nil, rules.UpRight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, game, player := newTestArena(t, "classic")
			withButtons(e)
			if tc.button != rules.Default {
				pointAt(t, e, tc.button)
			}
			input := getOrCreateInput(e)
			for _, action := range tc.actions {
				input.Current[action] = true
			}

			UpdateButtons(e)
			UpdatePlayer(e)

			if game.State.Direction != tc.want {
				t.Fatalf("Direction = %v, want %v", game.State.Direction, tc.want)
			}
			want := tc.want.Velocity(cfg.Player.Speed)
			if got := components.Velocity.Get(player).Vec2; got != want {
				t.Fatalf("velocity = %v, want %v", got, want)
			}
			if got := components.Sprite.Get(player).Image; got != tc.want.Texture() {
				t.Fatalf("texture = %q, want %q", got, tc.want.Texture())
			}
		})
	}
}

func TestReleasingSteeringStopsThePlayer(t *testing.T) {
	e, game, player := newTestArena(t, "classic")
	input := getOrCreateInput(e)

	input.Current[cfg.ActionUpLeft] = true
	UpdatePlayer(e)
	input.Current[cfg.ActionUpLeft] = false
	UpdatePlayer(e)

	if game.State.Direction != rules.Default {
		t.Fatalf("Direction = %v, want default", game.State.Direction)
	}
	if v := components.Velocity.Get(player); v.X != 0 || v.Y != 0 {
		t.Fatalf("velocity = %v, want zero", v.Vec2)
	}
}

func TestButtonsTrackPointers(t *testing.T) {
	e, _, _ := newTestArena(t, "classic")
	withButtons(e)
	pointAt(t, e, rules.UpLeft)
	UpdateButtons(e)

	if dir, ok := heldButton(e); !ok || dir != rules.UpLeft {
		t.Fatalf("heldButton = %v, %v; want up_left", dir, ok)
	}

	getOrCreateInput(e).Pointers = []math.Vec2{{X: -100, Y: -100}}
	UpdateButtons(e)
	if _, ok := heldButton(e); ok {
		t.Fatal("arrow still held after the pointer moved away")
	}
}

func TestSteeringIgnoredAfterGameOver(t *testing.T) {
	e, game, _ := newTestArena(t, "classic")
	game.State.Energy = 0
	game.State.CheckGameOver(game.Ruleset.WinScore)

	getOrCreateInput(e).Current[cfg.ActionDownRight] = true
	UpdatePlayer(e)

	if game.State.Direction != rules.Default {
		t.Fatalf("Direction = %v after game over, want default", game.State.Direction)
	}
}

func TestPlayerStaysInsideTheArena(t *testing.T) {
	e, _, player := newTestArena(t, "classic")
	width, height := arenaSize(e)
	obj := components.Object.Get(player)

	components.Velocity.Get(player).Vec2 = rules.UpLeft.Velocity(cfg.Player.Speed)
	for i := 0; i < 10*cfg.C.TPS; i++ {
		UpdateMovement(e)
	}
	if obj.X != 0 || obj.Y != 0 {
		t.Fatalf("player at (%v,%v), want pinned to (0,0)", obj.X, obj.Y)
	}

	components.Velocity.Get(player).Vec2 = rules.DownRight.Velocity(cfg.Player.Speed)
	for i := 0; i < 10*cfg.C.TPS; i++ {
		UpdateMovement(e)
	}
	if obj.X != width-obj.W || obj.Y != height-obj.H {
		t.Fatalf("player at (%v,%v), want pinned to the far corner", obj.X, obj.Y)
	}
}

func TestDustHomesOnThePlayer(t *testing.T) {
	e, _, _ := newTestArena(t, "classic")
	corner := arenaLayout(e).Corners[0]
	dust := factory.CreateDust(e, corner, math.NewVec2(corner.X, corner.Y+1), cfg.Dust.Speed)

	start := objectCenter(dust)
	target := playerCenter(e)
	before := distance(start, target)

	for i := 0; i < 30; i++ {
		UpdateDust(e)
		UpdateMovement(e)
	}

	after := distance(objectCenter(dust), target)
	if after >= before {
		t.Fatalf("dust distance grew from %v to %v", before, after)
	}
}

func distance(a, b math.Vec2) float64 {
	return stdmath.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestDiagonalAction(t *testing.T) {
	tests := []struct {
		name                  string
		left, right, up, down bool
		want                  cfg.ActionID
	}{
		{"up left", true, false, true, false, cfg.ActionUpLeft},
		{"up right", false, true, true, false, cfg.ActionUpRight},
		{"down left", true, false, false, true, cfg.ActionDownLeft},
		{"down right", false, true, false, true, cfg.ActionDownRight},
		{"horizontal only", true, false, false, false, cfg.ActionNone},
		{"vertical only", false, false, false, true, cfg.ActionNone},
		{"both horizontals", true, true, true, false, cfg.ActionNone},
		{"nothing", false, false, false, false, cfg.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := diagonalAction(tc.left, tc.right, tc.up, tc.down); got != tc.want {
				t.Fatalf("diagonalAction = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMovementStepsOneTick(t *testing.T) {
	e, _, _ := newTestArena(t, "classic")
	dust := factory.CreateDust(e, assets.Corner{X: 300, Y: 300, Direction: rules.UpLeft}, math.NewVec2(300, 300), 0)
	components.Velocity.Get(dust).Vec2 = math.NewVec2(60, -120)

	UpdateMovement(e)

	c := objectCenter(dust)
	wantX := 300 + 60*cfg.TickSeconds()
	wantY := 300 - 120*cfg.TickSeconds()
	if stdmath.Abs(c.X-wantX) > 1e-9 || stdmath.Abs(c.Y-wantY) > 1e-9 {
		t.Fatalf("dust centre = (%v,%v), want (%v,%v)", c.X, c.Y, wantX, wantY)
	}
}
