package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/fonts"
	"github.com/automoto/dustbag/scenes"
	"github.com/automoto/dustbag/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(ruleset config.Ruleset) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipIntro {
		g.scene = scenes.NewArenaScene(g, ruleset)
	} else {
		g.scene = scenes.NewIntroScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	rulesName := flag.String("rules", "", "Ruleset to play: classic, juicy, haunted or escalation")
	skipIntro := flag.Bool("skipintro", false, "Skip the intro and menu and start a round")
	seed := flag.Int64("seed", 0, "Random seed for spawns (0 = time based)")
	configPath := flag.String("config", "", "TOML file overriding tuning values")
	mute := flag.Bool("mute", false, "Start with sound muted")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config overrides: %v", err)
		}
	}
	config.Debug.SkipIntro = *skipIntro
	config.Debug.Seed = *seed

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dust Bag")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.SetLastRuleset(systems.ApplySavedSettingsGlobal(saved))
	}
	if *mute {
		systems.SetMuted(true)
	}

	// The saved ruleset, unless -rules picks another
	ruleset := systems.LastRuleset()
	if *rulesName != "" {
		var err error
		ruleset, err = config.RulesetByName(*rulesName)
		if err != nil {
			log.Fatalf("Invalid -rules flag: %v", err)
		}
		systems.SetLastRuleset(ruleset.Name)
	}

	if err := ebiten.RunGame(NewGame(ruleset)); err != nil {
		log.Fatal(err)
	}
}
