package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// climberSchema compiles the embedded JSON schema once.
func climberSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("climber.schema.json", climberSchemaJSON)
	})
	return schema, schemaErr
}

// Validate checks a YAML document against the climber schema.
// Unknown keys and out-of-range values are reported.
func Validate(data []byte) error {
	s, err := climberSchema()
	if err != nil {
		return fmt.Errorf("config: compile schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: parse yaml: %w", err)
	}
	if doc == nil {
		return nil // empty document keeps the defaults
	}

	// The validator expects JSON-decoded values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: convert yaml: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("config: convert yaml: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// parseClimber validates data and decodes it over the defaults, so a file
// only needs the keys it changes.
func parseClimber(data []byte) (ClimberConfig, error) {
	cfg := DefaultClimberConfig()
	if err := Validate(data); err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// LoadClimber loads climber configuration.
// Search order: customPath -> ~/.climber/configs/climber.yaml -> ./configs/climber.yaml -> embedded default
func LoadClimber(customPath string) (ClimberConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultClimberConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseClimber(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("climber.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseClimber(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "climber.yaml")); err == nil {
		if cfg, err := parseClimber(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseClimber(defaultClimberYAML)
	if err != nil {
		return DefaultClimberConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".climber", "configs", filename)
}

// ApplyClimberPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyClimberPreset(cfg *ClimberConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Health never goes above MaxActorHealth, so easy softens hazards instead
	switch preset {
	case DifficultyEasy:
		cfg.Items.HazardDamage /= 2
		cfg.Actor.StartEnergy = cfg.Actor.MaxEnergy
	case DifficultyHard:
		cfg.Actor.MaxHealth = 75
		cfg.Actor.StartEnergy = 0
	}
}
