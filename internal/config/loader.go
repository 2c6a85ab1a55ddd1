package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "swordrush.yaml"

// LoadSwordRush loads the game configuration.
// Search order: customPath -> ~/.swordrush/configs/swordrush.yaml ->
// ./configs/swordrush.yaml -> embedded default.
// Only an explicit customPath can produce an error; the implicit locations
// fall through silently when missing or unreadable.
func LoadSwordRush(customPath string) (SwordRushConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SwordRushConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SwordRushConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultSwordRushYAML)
	if err != nil {
		return DefaultSwordRushConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults so partial files only
// override what they mention, then validates the result.
func parse(data []byte) (SwordRushConfig, error) {
	cfg := DefaultSwordRushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg SwordRushConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swordrush", "configs", filename)
}

// ApplySwordRushPreset modifies the config based on a difficulty preset.
// Lives are never changed; rank still drives spawn cadence on every preset.
func ApplySwordRushPreset(cfg *SwordRushConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Speed = max(1, cfg.Enemies.Speed-1)
		cfg.Projectiles.Chance *= 0.5
		cfg.Shockwave.CooldownMs = cfg.Shockwave.CooldownMs * 3 / 4
	case DifficultyHard:
		cfg.Enemies.Speed++
		cfg.Projectiles.Chance = min(1, cfg.Projectiles.Chance*1.5)
		cfg.Shockwave.CooldownMs = cfg.Shockwave.CooldownMs * 5 / 4
	}
}
