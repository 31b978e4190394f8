package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/dustbag/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Ruleset     string  `json:"ruleset"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// bestScores caches the saved best score per ruleset name.
var bestScores = map[string]int{}

// InitPersistence initializes the gdata manager for settings and score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.SettingsMenu.PersistenceAppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	loadBestScores()
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.SettingsMenu.SettingsItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.SettingsMenu.SettingsItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the live audio settings and the chosen ruleset
func SaveCurrentSettings(ruleset string) {
	_ = SaveSettings(&SavedSettings{
		MusicVolume: GetMusicVolume(),
		SFXVolume:   GetSFXVolume(),
		Muted:       IsMuted(),
		Ruleset:     ruleset,
	})
}

// ApplySavedSettingsGlobal applies settings during startup before scenes are created.
// It returns the saved ruleset name, or "" when none was saved.
func ApplySavedSettingsGlobal(saved *SavedSettings) string {
	if saved == nil {
		return ""
	}

	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)
	SetMuted(saved.Muted)

	return saved.Ruleset
}

func loadBestScores() {
	data, err := gdataManager.LoadItem(cfg.SettingsMenu.BestScoresItemKey)
	if err != nil {
		log.Printf("Warning: Could not load best scores: %v", err)
		return
	}
	if len(data) == 0 {
		return
	}

	scores := map[string]int{}
	if err := json.Unmarshal(data, &scores); err != nil {
		log.Printf("Warning: Could not parse best scores: %v", err)
		return
	}
	for name, score := range scores {
		bestScores[name] = score
	}
}

func saveBestScores() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(bestScores)
	if err != nil {
		log.Printf("Warning: Could not serialize best scores: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.SettingsMenu.BestScoresItemKey, data); err != nil {
		log.Printf("Warning: Could not save best scores: %v", err)
		return err
	}
	return nil
}

// BestScore returns the best score recorded for a ruleset.
func BestScore(ruleset string) int {
	return bestScores[ruleset]
}

// BestScores returns a copy of every recorded best score.
func BestScores() map[string]int {
	scores := make(map[string]int, len(bestScores))
	for name, score := range bestScores {
		scores[name] = score
	}
	return scores
}

// RecordScore keeps score if it beats the ruleset's best and reports the best after recording.
func RecordScore(ruleset string, score int) (best int, newBest bool) {
	best = bestScores[ruleset]
	if score <= best {
		return best, false
	}
	bestScores[ruleset] = score
	_ = saveBestScores()
	return score, true
}
