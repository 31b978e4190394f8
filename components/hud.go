package components

import "github.com/yohamta/donburi"

// HUDData holds the three label strings last synced from the game state.
type HUDData struct {
	Score  string
	Energy string
	Bag    string
}

var HUD = donburi.NewComponentType[HUDData]()
