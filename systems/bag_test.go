package systems

import (
	"testing"

	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/automoto/dustbag/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func newTestBag(t *testing.T, ruleset string) (*ecs.ECS, *components.GameData, *components.BagData) {
	t.Helper()
	e, game, _ := newTestArena(t, ruleset)
	bag := factory.CreateBag(e, arenaLayout(e).Bag)
	return e, game, components.Bag.Get(bag)
}

func fillBag(game *components.GameData) {
	game.State.SetDirection(rules.UpLeft)
	for !game.State.BagFull() {
		game.State.DustOverlap(rules.UpLeft)
	}
}

func clickBag(e *ecs.ECS, bag *components.BagData) {
	input := getOrCreateInput(e)
	input.PointersPressed = append(input.PointersPressed[:0], bag.Bounds.Center())
}

func TestFullBagPulses(t *testing.T) {
	e, game, bag := newTestBag(t, "juicy")
	fillBag(game)

	UpdateBag(e)
	if !bag.Full || bag.Pulse == nil {
		t.Fatalf("bag Full=%v Pulse=%v, want a pulsing full bag", bag.Full, bag.Pulse != nil)
	}

	peak := bag.Scale
	for i := 0; i < cfg.Frames(cfg.Bag.PulseTime); i++ {
		UpdateBag(e)
		peak = max(peak, bag.Scale)
	}
	if peak <= 1 || peak > cfg.Bag.PulseScale+1e-6 {
		t.Fatalf("pulse peaked at %v, want within (1, %v]", peak, cfg.Bag.PulseScale)
	}

	// The pulse keeps going while the bag stays full
	for i := 0; i < 3*cfg.Frames(cfg.Bag.PulseTime); i++ {
		UpdateBag(e)
	}
	if bag.Pulse == nil {
		t.Fatal("pulse stopped while the bag is still full")
	}
}

func TestClassicBagTintsWithoutPulse(t *testing.T) {
	e, game, bag := newTestBag(t, "classic")
	fillBag(game)
	UpdateBag(e)

	if !bag.Full {
		t.Fatal("bag not marked full")
	}
	if bag.Pulse != nil || bag.Scale != 1 {
		t.Fatalf("classic bag pulsing: scale %v", bag.Scale)
	}
}

func TestClickingTheBagEmptiesIt(t *testing.T) {
	e, game, bag := newTestBag(t, "juicy")
	fillBag(game)
	UpdateBag(e)
	game.HUDDirty = false

	clickBag(e, bag)
	UpdateBag(e)

	if game.State.DustBag != 0 {
		t.Fatalf("DustBag = %d after click, want 0", game.State.DustBag)
	}
	if bag.Full || bag.Pulse != nil || bag.Scale != 1 {
		t.Fatalf("bag still full after click: %+v", bag)
	}
	if !game.HUDDirty {
		t.Fatal("HUD not refreshed after emptying the bag")
	}
	if !hasSFX(e, cfg.SoundClearBag) {
		t.Fatal("clear bag sound not queued")
	}
}

func TestEmptyBagAction(t *testing.T) {
	e, game, _ := newTestBag(t, "classic")
	game.State.SetDirection(rules.DownRight)
	game.State.DustOverlap(rules.DownRight)

	getOrCreateInput(e).Current[cfg.ActionEmptyBag] = true
	UpdateBag(e)

	if game.State.DustBag != 0 {
		t.Fatalf("DustBag = %d, want 0", game.State.DustBag)
	}
}

func TestClickOutsideTheBagDoesNothing(t *testing.T) {
	e, game, _ := newTestBag(t, "classic")
	game.State.SetDirection(rules.DownRight)
	game.State.DustOverlap(rules.DownRight)

	getOrCreateInput(e).PointersPressed = append(getOrCreateInput(e).PointersPressed, playerCenter(e))
	UpdateBag(e)

	if game.State.DustBag != rules.DustVolume {
		t.Fatalf("DustBag = %d, want %d", game.State.DustBag, rules.DustVolume)
	}
}

func TestBagClickAfterGameOverIsIgnored(t *testing.T) {
	e, game, bag := newTestBag(t, "classic")
	fillBag(game)
	game.State.Energy = 0
	game.State.CheckGameOver(game.Ruleset.WinScore)

	clickBag(e, bag)
	UpdateBag(e)

	if game.State.DustBag != rules.MaxDustBag {
		t.Fatalf("DustBag = %d after game over click, want %d", game.State.DustBag, rules.MaxDustBag)
	}
	if hasSFX(e, cfg.SoundClearBag) {
		t.Fatal("clear bag sound queued after game over")
	}
}
