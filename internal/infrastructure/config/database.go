package config

import "time"

// DatabaseConfig describes the local reference-data store. The
// default is a single sqlite file next to the binary; postgres is
// supported for shared setups.
type DatabaseConfig struct {
	// "sqlite" or "postgres"
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`

	// Full connection URL; when set it wins over the field-based DSN
	URL string `mapstructure:"url"`

	// Field-based postgres DSN, used when URL is empty
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`

	// Sqlite database file, ":memory:" for an ephemeral store
	Path string `mapstructure:"path"`

	// Postgres connection pool limits; ignored for sqlite
	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig limits the postgres connection pool.
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=1"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
