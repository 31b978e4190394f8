package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/systems"
	"github.com/automoto/dustbag/systems/factory"
	"github.com/automoto/dustbag/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision grid cell size in pixels, one arena tile
const spaceCellSize = 20

// ArenaScene plays one round of the chosen ruleset
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ruleset      cfg.Ruleset
	resultUI     *ui.ResultUI
	once         sync.Once
}

// NewArenaScene creates a new round
func NewArenaScene(sc SceneChanger, ruleset cfg.Ruleset) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, ruleset: ruleset}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if as.resultUI == nil {
		if result, ok := systems.RoundResult(as.ecs); ok {
			as.resultUI = ui.NewResultUI(result, as.playAgain, as.backToMenu)
		}
		return
	}
	as.resultUI.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)

	if as.resultUI != nil {
		as.resultUI.UI.Draw(screen)
	}
}

func (as *ArenaScene) newArenaScene() interface{} {
	return NewArenaScene(as.sceneChanger, as.ruleset)
}

func (as *ArenaScene) newMenuScene() interface{} {
	return NewMenuScene(as.sceneChanger)
}

func (as *ArenaScene) playAgain() {
	as.sceneChanger.ChangeScene(as.newArenaScene())
}

func (as *ArenaScene) backToMenu() {
	as.sceneChanger.ChangeScene(as.newMenuScene())
}

func (as *ArenaScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	assets.PreloadAllImages()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePause)

	// Steering and the simulation stop while paused or once the round is over
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateButtons))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDust))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawners))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBag))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDifficulty))

	// Presentation keeps going after the round ends
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBackground))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.NewUpdateResult(as.sceneChanger, as.newArenaScene, as.newMenuScene))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackgrounds)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawBag)
	ecs.AddRenderer(cfg.Default, systems.DrawButtons)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	as.ecs = ecs

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	BuildArena(as.ecs, assets.ArenaPath, as.ruleset, seed)

	systems.PlayMusic(as.ecs, cfg.Sound.BackgroundMusic)
}

// BuildArena creates every entity a round starts with.
func BuildArena(e *ecs.ECS, path string, ruleset cfg.Ruleset, seed int64) {
	// Create the arena entity and load the layout FIRST.
	arena := factory.CreateArena(e, path)
	layout := components.Arena.Get(arena).Layout

	// Now create the space for collision detection using the arena's dimensions.
	factory.CreateSpace(e, layout.Width, layout.Height, spaceCellSize, spaceCellSize)
	factory.CreateCamera(e)

	factory.CreateGame(e, ruleset, seed)
	factory.CreateSpawnTimers(e, ruleset)

	factory.CreateBackground(e, "background", 0)
	factory.CreateBag(e, layout.Bag)
	for _, button := range layout.Buttons {
		factory.CreateButton(e, button)
	}

	factory.CreatePlayer(e, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)
}
