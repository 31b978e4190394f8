package systems

import (
	"testing"

	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/rules"
)

func TestResultShortcuts(t *testing.T) {
	tests := []struct {
		name      string
		action    cfg.ActionID
		wantScene string
		wantSound bool
	}{
		{"select plays again", cfg.ActionMenuSelect, "arena", true},
		{"back returns to menu", cfg.ActionMenuBack, "menu", false},
		{"pause returns to menu", cfg.ActionPause, "menu", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetCarriedSFX(t)
			e, game, _ := newTestArena(t, "classic")
			changer := &recordingChanger{}
			update := NewUpdateResult(changer,
				func() interface{} { return "arena" },
				func() interface{} { return "menu" })

			// No result yet: keys do nothing
			getOrCreateInput(e).Current[tc.action] = true
			update(e)
			if len(changer.scenes) != 0 {
				t.Fatalf("scene changed before the round ended: %v", changer.scenes)
			}

			game.State.Energy = 0
			checkRoundOver(e, game)
			if game.State.Outcome != rules.OutcomeLoss {
				t.Fatalf("outcome = %v, want loss", game.State.Outcome)
			}
			update(e)

			if len(changer.scenes) != 1 || changer.scenes[0] != tc.wantScene {
				t.Fatalf("scene changes = %v, want [%s]", changer.scenes, tc.wantScene)
			}
			if got := carriedSFX(cfg.SoundMenuSelect); got != tc.wantSound {
				t.Fatalf("menu select carried = %v, want %v", got, tc.wantSound)
			}
		})
	}
}
