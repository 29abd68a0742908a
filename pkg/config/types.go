package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Storage      StorageConfig   `mapstructure:"storage"`
	Auth         AuthConfig      `mapstructure:"auth"`
	Import       ImportConfig    `mapstructure:"import"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path              string `mapstructure:"path"`
	EnableWAL         bool   `mapstructure:"enable_wal"`
	EnableForeignKeys bool   `mapstructure:"enable_foreign_keys"`
	LogQueries        bool   `mapstructure:"log_queries"`
}

// StorageConfig contains local upload storage settings
type StorageConfig struct {
	UploadsDir  string `mapstructure:"uploads_dir"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
}

// AuthConfig contains token issuance settings
type AuthConfig struct {
	JWTSecret          string        `mapstructure:"jwt_secret"`
	AccessTokenTTL     time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL    time.Duration `mapstructure:"refresh_token_ttl"`
	RememberRefreshTTL time.Duration `mapstructure:"remember_refresh_ttl"`
	BcryptCost         int           `mapstructure:"bcrypt_cost"`
}

// ImportConfig contains crack workbook import settings
type ImportConfig struct {
	MaxWorkbookSize int64 `mapstructure:"max_workbook_size"`
}

// RateLimitConfig contains per-client rate limit settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}
