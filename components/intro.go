package components

import "github.com/yohamta/donburi"

// IntroData counts how long the loading screen has been shown
type IntroData struct {
	Elapsed   int
	Dismissed bool
}

var Intro = donburi.NewComponentType[IntroData]()
