package config

import (
	"image/color"
	"math"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity lives on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed      float64 // pixels per second on each axis while steering
	Scale      float64 // sprite draw scale
	HitboxSize float64 // square hitbox in world pixels
}

// DustConfig contains the roaming dust enemy configuration
type DustConfig struct {
	Speed      float64 // starting homing speed, raised by the difficulty curve
	Scale      float64
	HitboxSize float64
	Interval   time.Duration // time between spawns
}

// HeartConfig contains the energy pickup configuration
type HeartConfig struct {
	Speed      float64 // drift speed toward the player, fixed at spawn
	Scale      float64
	HitboxSize float64
	Interval   time.Duration
	PopScale   float64       // scale reached by the pickup tween
	PopTime    time.Duration // pickup tween length
}

// GhostConfig contains the ghost enemy configuration
type GhostConfig struct {
	Speed        float64 // starting speed toward the arena centre
	Scale        float64
	HitboxWidth  float64
	HitboxHeight float64
	Delay        time.Duration // starting spawn interval
	Lifetime     time.Duration
	EntryMargin  float64 // pixels outside the screen edge to spawn at
}

// EffectsConfig contains the overlap flourishes
type EffectsConfig struct {
	// Collecting a dust
	CollectScale float64
	CollectTime  time.Duration
	CollectTint  color.RGBA

	// Touching a dust with the wrong direction
	DamageTime      time.Duration
	DamageTint      color.RGBA
	DamageShakeTime time.Duration
	DamageShake     float64 // fraction of the screen size

	// Heart pickup
	RestoreTime time.Duration
	RestoreTint color.RGBA

	// Ghost hit
	GhostTime      time.Duration
	GhostTint      color.RGBA
	GhostShakeTime time.Duration
	GhostShake     float64

	BackgroundFade time.Duration
}

// BagConfig contains the dust bag icon configuration
type BagConfig struct {
	PulseScale float64
	PulseTime  time.Duration // one half of the yoyo
	FullTint   color.RGBA
	Scale      float64
}

// ButtonsConfig contains the on-screen arrow button configuration
type ButtonsConfig struct {
	Size  float64 // touch area edge in pixels
	Scale float64 // image draw scale
	Alpha float32
}

// HUDConfig contains the score, energy and bag labels
type HUDConfig struct {
	X        float64
	LineY    [3]float64
	FontSize float64
	Color    color.RGBA
}

// IntroConfig contains the loading screen configuration
type IntroConfig struct {
	Duration        time.Duration
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Lines           []string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// ResultConfig contains the win and game over overlay configuration
type ResultConfig struct {
	OverlayColor color.RGBA
	WinColor     color.RGBA
	LossColor    color.RGBA
	TextColor    color.RGBA
	WinTitle     string
	LossTitle    string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipIntro bool // Skip intro and menu and go directly to the arena
	Seed      int64
	Hitboxes  bool // Draw collision boxes (F1)
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Dust DustConfig
var Heart HeartConfig
var Ghost GhostConfig
var Effects EffectsConfig
var Bag BagConfig
var Buttons ButtonsConfig
var HUD HUDConfig
var Intro IntroConfig
var Pause PauseConfig
var Result ResultConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	GhostRed     = color.RGBA{R: 0xff, G: 0x47, B: 0x57, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkBlue     = color.RGBA{R: 20, G: 24, B: 40, A: 255}
)

// Frames converts a duration to game ticks, rounding up so short effects still show.
func Frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()*float64(C.TPS) - 1e-9))
}

// TickSeconds is the simulated time of one Update call.
func TickSeconds() float64 {
	return 1 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:      200,
		Scale:      0.6,
		HitboxSize: 42, // 70px body at 0.6 scale
	}

	Dust = DustConfig{
		Speed:      150,
		Scale:      0.5,
		HitboxSize: 15,
		Interval:   2 * time.Second,
	}

	Heart = HeartConfig{
		Speed:      50,
		Scale:      0.5,
		HitboxSize: 30,
		Interval:   15 * time.Second,
		PopScale:   1.5,
		PopTime:    200 * time.Millisecond,
	}

	Ghost = GhostConfig{
		Speed:        150,
		Scale:        0.5,
		HitboxWidth:  80, // 160x270 body at 0.5 scale
		HitboxHeight: 135,
		Delay:        20 * time.Second,
		Lifetime:     6 * time.Second,
		EntryMargin:  50,
	}

	Effects = EffectsConfig{
		CollectScale: 0.8,
		CollectTime:  150 * time.Millisecond,
		CollectTint:  White,

		DamageTime:      150 * time.Millisecond,
		DamageTint:      Red,
		DamageShakeTime: 150 * time.Millisecond,
		DamageShake:     0.01,

		RestoreTime: 200 * time.Millisecond,
		RestoreTint: Green,

		GhostTime:      300 * time.Millisecond,
		GhostTint:      GhostRed,
		GhostShakeTime: 300 * time.Millisecond,
		GhostShake:     0.02,

		BackgroundFade: 500 * time.Millisecond,
	}

	Bag = BagConfig{
		PulseScale: 1.2,
		PulseTime:  300 * time.Millisecond,
		FullTint:   Red,
		Scale:      1.0,
	}

	Buttons = ButtonsConfig{
		Size:  120,
		Scale: 0.9,
		Alpha: 0.8,
	}

	HUD = HUDConfig{
		X:        10,
		LineY:    [3]float64{10, 40, 70},
		FontSize: 24,
		Color:    White,
	}

	Intro = IntroConfig{
		Duration:        5 * time.Second,
		BackgroundColor: DarkBlue,
		TitleColor:      BrightYellow,
		TextColor:       White,
		Lines: []string{
			"Steer with the corner arrows (or Q E Z C).",
			"Touch a dust while moving toward its corner to bag it.",
			"Any other touch costs energy. Hearts restore it.",
			"Click the bag to empty it when it is full.",
			"Click or press any key to start",
		},
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
	}

	Result = ResultConfig{
		OverlayColor: BlackOverlay,
		WinColor:     BrightGreen,
		LossColor:    LightRed,
		TextColor:    White,
		WinTitle:     "You win!",
		LossTitle:    "Game over",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipIntro: false,
		Seed:      0,
		Hitboxes:  false,
	}
}
