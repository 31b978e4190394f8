package components

import "github.com/yohamta/donburi"

// MenuData stores the current state of the rules menu
type MenuData struct {
	SelectedRuleset int
	BestScores      map[string]int
	StartRequested  bool
	QuitRequested   bool
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
