package systems

import (
	"testing"

	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/systems/factory"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func backgroundImages(e *ecs.ECS) []string {
	var images []string
	tags.Background.Each(e.World, func(entry *donburi.Entry) {
		images = append(images, components.Sprite.Get(entry).Image)
	})
	return images
}

func TestBackgroundCrossfades(t *testing.T) {
	e, game, _ := newTestArena(t, "escalation")
	first := factory.CreateBackground(e, "background", 0)

	game.State.Score = 100
	UpdateBackground(e)

	if n := countTagged(e, tags.Background); n != 2 {
		t.Fatalf("%d backgrounds during the fade, want 2", n)
	}
	if !components.Background.Get(first).Outgoing {
		t.Fatal("old background not fading out")
	}

	for i := 0; i < cfg.Frames(cfg.Effects.BackgroundFade)+2; i++ {
		UpdateBackground(e)
	}

	images := backgroundImages(e)
	if len(images) != 1 || images[0] != "background2" {
		t.Fatalf("backgrounds after the fade = %v, want [background2]", images)
	}
	bg, _ := tags.Background.First(e.World)
	if alpha := components.Sprite.Get(bg).Alpha; alpha != 1 {
		t.Fatalf("new background alpha = %v, want 1", alpha)
	}
}

func TestBackgroundSwitchesOncePerThreshold(t *testing.T) {
	e, game, _ := newTestArena(t, "escalation")
	factory.CreateBackground(e, "background", 0)

	game.State.Score = 150
	for i := 0; i < 60; i++ {
		UpdateBackground(e)
	}
	if images := backgroundImages(e); len(images) != 1 || images[0] != "background2" {
		t.Fatalf("backgrounds = %v, want [background2]", images)
	}
}

func TestBackgroundFixedWithoutTrack(t *testing.T) {
	e, game, _ := newTestArena(t, "juicy")
	factory.CreateBackground(e, "background", 0)

	game.State.Score = 250
	UpdateBackground(e)

	if images := backgroundImages(e); len(images) != 1 || images[0] != "background" {
		t.Fatalf("backgrounds = %v, want [background]", images)
	}
}
