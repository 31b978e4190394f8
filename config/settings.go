package config

// SettingsMenuConfig contains the menu's audio options
type SettingsMenuConfig struct {
	VolumeSteps        []float64
	DefaultMusicStep   int
	DefaultSFXStep     int
	BestScoresItemKey  string
	SettingsItemKey    string
	PersistenceAppName string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

// NextVolumeStep returns the step after v, wrapping back to silence after the loudest one.
func NextVolumeStep(v float64) float64 {
	steps := SettingsMenu.VolumeSteps
	for _, s := range steps {
		if s > v+1e-6 {
			return s
		}
	}
	return steps[0]
}

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:        []float64{0, 0.1, 0.3, 0.5, 0.75, 1.0},
		DefaultMusicStep:   2,
		DefaultSFXStep:     5,
		BestScoresItemKey:  "scores",
		SettingsItemKey:    "settings",
		PersistenceAppName: "dustbag",
	}
}
