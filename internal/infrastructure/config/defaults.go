package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "prunplanner"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "prunplanner"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "prunplanner.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// FIO defaults
	if cfg.FIO.BaseURL == "" {
		cfg.FIO.BaseURL = "https://rest.fnar.net"
	}
	if cfg.FIO.DataDir == "" {
		cfg.FIO.DataDir = "./data"
	}
	if cfg.FIO.Timeout == 0 {
		cfg.FIO.Timeout = 30 * time.Second
	}

	// ROI defaults
	if cfg.ROI.RateLimit == 0 {
		cfg.ROI.RateLimit = 200
	}
	if cfg.ROI.Burst == 0 {
		cfg.ROI.Burst = 64
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
