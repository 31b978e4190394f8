package factory

import (
	"github.com/automoto/dustbag/archetypes"
	"github.com/automoto/dustbag/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBackground adds a full-screen background. A positive fade (in seconds)
// fades it in from transparent, otherwise it is shown at once.
func CreateBackground(ecs *ecs.ECS, key string, fade float32) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)

	data := components.BackgroundData{}
	alpha := 1.0
	if fade > 0 {
		data.Fade = gween.New(0, 1, fade, ease.Linear)
		alpha = 0
	}
	components.Background.SetValue(bg, data)
	components.Sprite.SetValue(bg, components.SpriteData{
		Image: key,
		Scale: 1,
		Alpha: alpha,
	})

	return bg
}

// FadeOutBackground starts removing a background over fade seconds.
func FadeOutBackground(bg *donburi.Entry, fade float32) {
	data := components.Background.Get(bg)
	data.Outgoing = true
	from := float32(components.Sprite.Get(bg).Alpha)
	data.Fade = gween.New(from, 0, fade, ease.Linear)
}
