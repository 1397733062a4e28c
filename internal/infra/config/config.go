// Package config loads the application configuration from backcore.yaml and
// BACKCORE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig
	Blob    BlobConfig
	Log     LogConfig
}

// StorageConfig selects and parameterizes the persistent store.
type StorageConfig struct {
	Driver      string // memory, sqlite, postgres
	SQLitePath  string
	PostgresDSN string
}

// BlobConfig selects and parameterizes the file manager backend.
type BlobConfig struct {
	Driver      string // fs, s3, memory
	FSRoot      string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load reads configuration with the following priority, highest first:
// environment variables with the BACKCORE_ prefix (BACKCORE_STORAGE_DRIVER),
// then backcore.yaml, then built-in defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("backcore")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/backcore")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("BACKCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Storage: StorageConfig{
			Driver:      v.GetString("storage.driver"),
			SQLitePath:  v.GetString("storage.sqlite_path"),
			PostgresDSN: v.GetString("storage.postgres_dsn"),
		},
		Blob: BlobConfig{
			Driver:      v.GetString("blob.driver"),
			FSRoot:      v.GetString("blob.fs_root"),
			S3Bucket:    v.GetString("blob.s3_bucket"),
			S3Region:    v.GetString("blob.s3_region"),
			S3Endpoint:  v.GetString("blob.s3_endpoint"),
			S3PathStyle: v.GetBool("blob.s3_path_style"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "sqlite"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "backcore.db"
	}
	if cfg.Blob.Driver == "" {
		cfg.Blob.Driver = "fs"
	}
	if cfg.Blob.FSRoot == "" {
		cfg.Blob.FSRoot = "./uploads"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "memory", "sqlite", "postgres":
	default:
		return fmt.Errorf("storage.driver must be memory, sqlite, or postgres, got %q", c.Storage.Driver)
	}
	switch c.Blob.Driver {
	case "fs", "s3", "memory":
	default:
		return fmt.Errorf("blob.driver must be fs, s3, or memory, got %q", c.Blob.Driver)
	}
	if c.Blob.Driver == "s3" && c.Blob.S3Bucket == "" {
		return fmt.Errorf("blob.s3_bucket is required when blob.driver is s3")
	}
	return nil
}
