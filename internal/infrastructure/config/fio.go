package config

import "time"

// FIOConfig holds settings for FIO game-data imports
type FIOConfig struct {
	// Base URL of the FIO REST API, used when importing directly
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// Directory holding downloaded JSON exports for file imports
	DataDir string `mapstructure:"data_dir"`

	// HTTP timeout for direct API imports
	Timeout time.Duration `mapstructure:"timeout"`
}
