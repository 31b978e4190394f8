package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/dustbag/shared/rules"
)

// ErrUnknownRuleset is returned by RulesetByName for names not in Rulesets.
var ErrUnknownRuleset = errors.New("unknown ruleset")

// DefaultRuleset is played when no -rules flag or saved choice exists.
const DefaultRuleset = "escalation"

// Ruleset selects which features a round plays with.
type Ruleset struct {
	Name       string
	Title      string
	WinScore   int
	Ghosts     bool
	Flourishes bool // scale bumps, flashes, shakes, heart pop and bag pulse
	Difficulty []rules.DifficultyLevel
	// Backgrounds after the initial "background" image
	Backgrounds []rules.BackgroundLevel
}

// Rulesets lists every ruleset in menu order.
var Rulesets []Ruleset

// RulesetByName returns the ruleset called name.
func RulesetByName(name string) (Ruleset, error) {
	for _, r := range Rulesets {
		if r.Name == name {
			return r, nil
		}
	}
	return Ruleset{}, fmt.Errorf("%w: %q", ErrUnknownRuleset, name)
}

// RulesetIndex returns the menu position of name, or -1.
func RulesetIndex(name string) int {
	for i, r := range Rulesets {
		if r.Name == name {
			return i
		}
	}
	return -1
}

func init() {
	Rulesets = []Ruleset{
		{
			Name:     "classic",
			Title:    "Classic",
			WinScore: 200,
		},
		{
			Name:       "juicy",
			Title:      "Juicy",
			WinScore:   300,
			Flourishes: true,
		},
		{
			Name:       "haunted",
			Title:      "Haunted",
			WinScore:   400,
			Ghosts:     true,
			Flourishes: true,
		},
		{
			Name:       "escalation",
			Title:      "Escalation",
			WinScore:   500,
			Ghosts:     true,
			Flourishes: true,
			Difficulty: []rules.DifficultyLevel{
				{Threshold: 100, EnemySpeed: 180, GhostDelay: 15 * time.Second, GhostSpeed: 200},
				{Threshold: 200, EnemySpeed: 200, GhostDelay: 10 * time.Second, GhostSpeed: 250},
				{Threshold: 300, EnemySpeed: 220, GhostDelay: 7 * time.Second, GhostSpeed: 300},
				{Threshold: 400, EnemySpeed: 240, GhostDelay: 6 * time.Second, GhostSpeed: 350},
				{Threshold: 450, EnemySpeed: 260, GhostDelay: 5 * time.Second, GhostSpeed: 350},
			},
			Backgrounds: []rules.BackgroundLevel{
				{Threshold: 100, Key: "background2"},
				{Threshold: 200, Key: "background3"},
			},
		},
	}
}
