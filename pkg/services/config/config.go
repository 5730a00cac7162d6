package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

// Config is the per-user profile configuration read from the tone-atlas
// config file. Everything has a sensible default; an empty file is valid.
type Config struct {
	Profile       string `mapstructure:"profile"`
	Relationship  string `mapstructure:"relationship"`
	DefaultWindow string `mapstructure:"default_window"`
	StorePath     string `mapstructure:"store_path"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("profile", "default")
	v.SetDefault("relationship", string(domain.RelationshipCouple))
	v.SetDefault("default_window", string(domain.WindowWeek))
	v.SetDefault("store_path", "tone-atlas.db")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tone-atlas config: %w", err)
	}

	if !domain.Window(cfg.DefaultWindow).Valid() {
		return nil, fmt.Errorf("invalid default_window: %s", cfg.DefaultWindow)
	}
	switch domain.RelationshipType(cfg.Relationship) {
	case domain.RelationshipCouple, domain.RelationshipCoParent:
	default:
		return nil, fmt.Errorf("invalid relationship: %s", cfg.Relationship)
	}

	return &cfg, nil
}
