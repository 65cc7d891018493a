package config

// ROIConfig holds settings for the bulk ROI layout scan
type ROIConfig struct {
	// Calculations allowed per second; 0 disables rate limiting
	RateLimit float64 `mapstructure:"rate_limit" validate:"min=0"`

	// Burst size of the rate limiter
	Burst int `mapstructure:"burst" validate:"min=0"`
}
