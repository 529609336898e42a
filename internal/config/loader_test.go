package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseClimber(defaultClimberYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not validate: %v", err)
	}

	def := DefaultClimberConfig()
	if cfg.Physics != def.Physics {
		t.Errorf("physics: yaml=%+v, hardcoded=%+v", cfg.Physics, def.Physics)
	}
	if cfg.Actor != def.Actor {
		t.Errorf("actor: yaml=%+v, hardcoded=%+v", cfg.Actor, def.Actor)
	}
	if cfg.Platforms != def.Platforms {
		t.Errorf("platforms: yaml=%+v, hardcoded=%+v", cfg.Platforms, def.Platforms)
	}
	if cfg.Items != def.Items {
		t.Errorf("items: yaml=%+v, hardcoded=%+v", cfg.Items, def.Items)
	}
	if cfg.Combat != def.Combat {
		t.Errorf("combat: yaml=%+v, hardcoded=%+v", cfg.Combat, def.Combat)
	}
	if cfg.Features != def.Features {
		t.Errorf("features: yaml=%+v, hardcoded=%+v", cfg.Features, def.Features)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("difficulty: yaml=%+v, hardcoded=%+v", cfg.Difficulty, def.Difficulty)
	}
	if len(cfg.Enemies.Tiers) != len(def.Enemies.Tiers) {
		t.Fatalf("tiers: yaml=%d, hardcoded=%d", len(cfg.Enemies.Tiers), len(def.Enemies.Tiers))
	}
	for i := range cfg.Enemies.Tiers {
		if cfg.Enemies.Tiers[i] != def.Enemies.Tiers[i] {
			t.Errorf("tier %d: yaml=%+v, hardcoded=%+v", i, cfg.Enemies.Tiers[i], def.Enemies.Tiers[i])
		}
	}
}

func TestLoadClimberCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climber.yaml")
	data := []byte("features:\n  enemies: false\nphysics:\n  gravity: -1.0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClimber(path)
	if err != nil {
		t.Fatalf("LoadClimber() failed: %v", err)
	}
	if cfg.Physics.Gravity != -1.0 {
		t.Errorf("Gravity = %v, want -1.0", cfg.Physics.Gravity)
	}
	if cfg.Features.Enemies {
		t.Error("enemies feature should be disabled")
	}
	// Keys absent from the file keep their defaults
	if cfg.Actor.JumpForce != DefaultClimberConfig().Actor.JumpForce {
		t.Errorf("JumpForce = %v, want default", cfg.Actor.JumpForce)
	}
}

func TestLoadClimberRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "physics:\n  gravty: -0.6\n"},
		{"positive gravity", "physics:\n  gravity: 0.6\n"},
		{"hitbox too wide", "combat:\n  hitbox_scale_x: 1.5\n"},
		{"bad progression", "difficulty:\n  progression:\n    type: forever\n"},
		{"no tiers", "enemies:\n  tiers: []\n"},
		{"wrong type", "platforms:\n  count: many\n"},
		{"health above 100", "actor:\n  max_health: 150\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "climber.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadClimber(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadClimberMissingCustomPath(t *testing.T) {
	_, err := LoadClimber(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestValidateEmptyDocument(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Errorf("empty document should validate: %v", err)
	}
}

func TestApplyClimberPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
		wantHealth  int
		wantHazard  int
	}{
		{DifficultyEasy, true, 0.0, 100, 10},
		{DifficultyNormal, true, 0.3, 100, 20},
		{DifficultyHard, true, 0.7, 75, 20},
		{DifficultyFixed, false, 0.0, 100, 20},
		{"", true, 0.0, 100, 20},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultClimberConfig()
			ApplyClimberPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
			if cfg.Actor.MaxHealth != tt.wantHealth {
				t.Errorf("MaxHealth = %d, want %d", cfg.Actor.MaxHealth, tt.wantHealth)
			}
			if cfg.Actor.MaxHealth > MaxActorHealth {
				t.Errorf("MaxHealth = %d exceeds %d", cfg.Actor.MaxHealth, MaxActorHealth)
			}
			if cfg.Items.HazardDamage != tt.wantHazard {
				t.Errorf("HazardDamage = %d, want %d", cfg.Items.HazardDamage, tt.wantHazard)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should yield empty preset")
	}
}
