package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Overlap sounds
	SoundCollect
	SoundDamage
	SoundRestore
	SoundClearBag
	// Round end stingers
	SoundGameOver
	SoundWin
	// UI sounds
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	BackgroundMusic   string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.3,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		BackgroundMusic: "audio/music/background_music.wav",
		SFXPaths: map[SoundID]string{
			SoundCollect:    "audio/sfx/collect_dust.wav",
			SoundDamage:     "audio/sfx/damage.wav",
			SoundRestore:    "audio/sfx/restore_energy.wav",
			SoundClearBag:   "audio/sfx/clear_bag.wav",
			SoundGameOver:   "audio/sfx/game_over.wav",
			SoundWin:        "audio/sfx/win.wav",
			SoundMenuSelect: "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundDamage: 1.2,
		},
	}
}
