package systems

import (
	"testing"

	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/systems/factory"
	"github.com/automoto/dustbag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// newTestArena builds a round on a bare world: arena, space, camera, game and player.
// Nothing here touches the GPU or the audio device.
func newTestArena(t *testing.T, rulesetName string) (*ecs.ECS, *components.GameData, *donburi.Entry) {
	t.Helper()

	ruleset, err := cfg.RulesetByName(rulesetName)
	if err != nil {
		t.Fatalf("RulesetByName(%q): %v", rulesetName, err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	arena := factory.CreateArena(e, assets.ArenaPath)
	layout := components.Arena.Get(arena).Layout
	factory.CreateSpace(e, layout.Width, layout.Height, 32, 32)
	factory.CreateCamera(e)
	factory.CreateGame(e, ruleset, 1)
	player := factory.CreatePlayer(e, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)

	game, ok := getGame(e)
	if !ok {
		t.Fatal("game entity missing")
	}
	return e, game, player
}

// countTagged returns how many live entities carry tag.
func countTagged(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func queuedSFX(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

func hasSFX(e *ecs.ECS, id cfg.SoundID) bool {
	for _, queued := range queuedSFX(e) {
		if queued == id {
			return true
		}
	}
	return false
}

func playerCenter(e *ecs.ECS) math.Vec2 {
	player, _ := tags.Player.First(e.World)
	return objectCenter(player)
}
