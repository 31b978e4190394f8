package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrUnknownOverride is returned when an overrides file names a key no tunable has.
var ErrUnknownOverride = errors.New("unknown override key")

// overrides mirrors the tunable globals that a -config file may change.
// Fields are decoded in place so keys left out of the file keep their defaults.
type overrides struct {
	Player  PlayerConfig  `toml:"player"`
	Dust    DustConfig    `toml:"dust"`
	Heart   HeartConfig   `toml:"heart"`
	Ghost   GhostConfig   `toml:"ghost"`
	Effects EffectsConfig `toml:"effects"`
	Bag     BagConfig     `toml:"bag"`
	Buttons ButtonsConfig `toml:"buttons"`
	Audio   AudioConfig   `toml:"audio"`
	Intro   IntroConfig   `toml:"intro"`
}

// ApplyOverrides decodes TOML tunables over the current configuration.
// Nothing is changed when the document fails to decode or names an unknown key.
func ApplyOverrides(data string) error {
	o := overrides{
		Player:  Player,
		Dust:    Dust,
		Heart:   Heart,
		Ghost:   Ghost,
		Effects: Effects,
		Bag:     Bag,
		Buttons: Buttons,
		Audio:   Audio,
		Intro:   Intro,
	}

	md, err := toml.Decode(data, &o)
	if err != nil {
		return fmt.Errorf("decode overrides: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownOverride, undecoded)
	}

	Player = o.Player
	Dust = o.Dust
	Heart = o.Heart
	Ghost = o.Ghost
	Effects = o.Effects
	Bag = o.Bag
	Buttons = o.Buttons
	Audio = o.Audio
	Intro = o.Intro
	return nil
}

// LoadOverrides reads a TOML overrides file and applies it.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	return ApplyOverrides(string(data))
}
