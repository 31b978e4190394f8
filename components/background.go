package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BackgroundData is one full-screen arena background.
// During a crossfade the outgoing background fades to 0 and is removed.
type BackgroundData struct {
	Fade     *gween.Tween // nil once the fade is done
	Outgoing bool
}

var Background = donburi.NewComponentType[BackgroundData]()
