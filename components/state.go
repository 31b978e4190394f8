package components

import (
	"math/rand"

	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/yohamta/donburi"
)

// GameData is the round's world state plus the tuning that the difficulty curve changes.
type GameData struct {
	State   rules.State
	Ruleset cfg.Ruleset
	Curve   *rules.DifficultyCurve
	Track   *rules.BackgroundTrack

	EnemySpeed float64 // current dust homing speed
	GhostSpeed float64

	Rand *rand.Rand

	// HUDDirty asks the HUD to re-read State.Labels.
	HUDDirty bool
}

var Game = donburi.NewComponentType[GameData]()

// Live reports whether the round is still being played.
func (g *GameData) Live() bool {
	return !g.State.GameOver
}
