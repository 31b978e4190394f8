package systems

import (
	"testing"

	cfg "github.com/automoto/dustbag/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// recordingChanger remembers every scene it was asked to switch to.
type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

// resetCarriedSFX empties the cross-scene sound queue for the length of a test.
func resetCarriedSFX(t *testing.T) {
	t.Helper()
	sound.carried = nil
	t.Cleanup(func() { sound.carried = nil })
}

func carriedSFX(id cfg.SoundID) bool {
	for _, carried := range sound.carried {
		if carried == id {
			return true
		}
	}
	return false
}

// keepLastRuleset restores the menu's starting ruleset after a test changes it.
func keepLastRuleset(t *testing.T) {
	t.Helper()
	saved := lastRuleset
	t.Cleanup(func() { lastRuleset = saved })
}

func TestMenuStartCarriesSelectSoundIntoTheRound(t *testing.T) {
	resetCarriedSFX(t)
	keepLastRuleset(t)

	e := ecs.NewECS(donburi.NewWorld())
	changer := &recordingChanger{}
	update := NewUpdateMenu(changer, func(r cfg.Ruleset) interface{} { return r.Name })

	SelectRuleset(e, cfg.RulesetIndex("haunted"))
	getOrCreateInput(e).Current[cfg.ActionMenuSelect] = true
	update(e)

	if len(changer.scenes) != 1 || changer.scenes[0] != "haunted" {
		t.Fatalf("scene changes = %v, want [haunted]", changer.scenes)
	}
	if !carriedSFX(cfg.SoundMenuSelect) {
		t.Fatalf("carried SFX %v, want menu select", sound.carried)
	}
	if hasSFX(e, cfg.SoundMenuSelect) {
		t.Fatal("menu select queued on the scene being left")
	}
}

func TestLastRuleset(t *testing.T) {
	keepLastRuleset(t)

	tests := []struct {
		set  string
		want string
	}{
		{"juicy", "juicy"},
		{"no-such-rules", "juicy"},
		{"classic", "classic"},
	}
	for _, tc := range tests {
		SetLastRuleset(tc.set)
		if got := LastRuleset().Name; got != tc.want {
			t.Fatalf("after SetLastRuleset(%q) LastRuleset = %q, want %q", tc.set, got, tc.want)
		}
	}

	lastRuleset = "stale"
	if got := LastRuleset().Name; got != cfg.DefaultRuleset {
		t.Fatalf("LastRuleset with an unknown name = %q, want %q", got, cfg.DefaultRuleset)
	}
}
