package components

import (
	"github.com/automoto/dustbag/shared/rules"
	"github.com/yohamta/donburi"
)

// ResultData records how the round ended once the game-over check fires.
type ResultData struct {
	Outcome rules.Outcome
	Score   int
	Best    int
	NewBest bool
}

// Result is the component type for the win and game over screen
var Result = donburi.NewComponentType[ResultData]()
