package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFrames(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want int
	}{
		{0, 0},
		{-time.Second, 0},
		{150 * time.Millisecond, 9},
		{200 * time.Millisecond, 12},
		{2 * time.Second, 120},
		{5 * time.Millisecond, 1},
	}
	for _, tc := range tests {
		if got := Frames(tc.in); got != tc.want {
			t.Fatalf("Frames(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRulesetByName(t *testing.T) {
	r, err := RulesetByName(DefaultRuleset)
	if err != nil {
		t.Fatalf("RulesetByName(%q) error = %v", DefaultRuleset, err)
	}
	if r.WinScore != 500 || !r.Ghosts || len(r.Difficulty) != 5 || len(r.Backgrounds) != 2 {
		t.Fatalf("escalation = %+v", r)
	}

	if _, err := RulesetByName("turbo"); !errors.Is(err, ErrUnknownRuleset) {
		t.Fatalf("RulesetByName(turbo) error = %v, want ErrUnknownRuleset", err)
	}
}

func TestRulesetsProgress(t *testing.T) {
	want := []struct {
		name   string
		win    int
		ghosts bool
		flair  bool
	}{
		{"classic", 200, false, false},
		{"juicy", 300, false, true},
		{"haunted", 400, true, true},
		{"escalation", 500, true, true},
	}
	if len(Rulesets) != len(want) {
		t.Fatalf("len(Rulesets) = %d, want %d", len(Rulesets), len(want))
	}
	for i, w := range want {
		r := Rulesets[i]
		if r.Name != w.name || r.WinScore != w.win || r.Ghosts != w.ghosts || r.Flourishes != w.flair {
			t.Fatalf("Rulesets[%d] = %+v, want %+v", i, r, w)
		}
		if RulesetIndex(w.name) != i {
			t.Fatalf("RulesetIndex(%q) = %d, want %d", w.name, RulesetIndex(w.name), i)
		}
	}
}

func TestNextVolumeStep(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0.1},
		{0.3, 0.5},
		{0.4, 0.5},
		{1.0, 0},
	}
	for _, tc := range tests {
		if got := NextVolumeStep(tc.in); got != tc.want {
			t.Fatalf("NextVolumeStep(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func withDefaults(t *testing.T) {
	t.Helper()
	player, dust, ghost, audio := Player, Dust, Ghost, Audio
	t.Cleanup(func() {
		Player, Dust, Ghost, Audio = player, dust, ghost, audio
	})
}

func TestApplyOverridesKeepsUnsetFields(t *testing.T) {
	withDefaults(t)

	err := ApplyOverrides(`
[player]
speed = 250.0

[dust]
interval = "1500ms"

[audio]
defaultmusicvol = 0.5
`)
	if err != nil {
		t.Fatalf("ApplyOverrides error = %v", err)
	}
	if Player.Speed != 250 || Player.Scale != 0.6 {
		t.Fatalf("Player = %+v, want speed 250 and default scale", Player)
	}
	if Dust.Interval != 1500*time.Millisecond || Dust.Speed != 150 {
		t.Fatalf("Dust = %+v", Dust)
	}
	if Audio.DefaultMusicVol != 0.5 || Audio.SampleRate != 44100 {
		t.Fatalf("Audio = %+v", Audio)
	}
}

func TestApplyOverridesRejectsUnknownKeys(t *testing.T) {
	withDefaults(t)

	err := ApplyOverrides(`
[ghost]
speed = 400.0
wings = 2
`)
	if !errors.Is(err, ErrUnknownOverride) {
		t.Fatalf("ApplyOverrides error = %v, want ErrUnknownOverride", err)
	}
	if Ghost.Speed != 150 {
		t.Fatalf("Ghost.Speed = %v after rejected overrides, want 150", Ghost.Speed)
	}
}

func TestLoadOverrides(t *testing.T) {
	withDefaults(t)

	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte("[ghost]\nlifetime = \"4s\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides error = %v", err)
	}
	if Ghost.Lifetime != 4*time.Second {
		t.Fatalf("Ghost.Lifetime = %v, want 4s", Ghost.Lifetime)
	}

	if err := LoadOverrides(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("LoadOverrides on a missing file returned nil")
	}
}
