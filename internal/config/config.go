// Package config loads application configuration from an optional YAML file
// and COREIQ_* environment variables, and bootstraps the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Catalogue CatalogueConfig `yaml:"catalogue" mapstructure:"catalogue"`
	Evidence  EvidenceConfig  `yaml:"evidence" mapstructure:"evidence"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	// CoalesceMS is the write-coalescing window in milliseconds. Zero
	// writes through immediately.
	CoalesceMS int `yaml:"coalesce_ms" mapstructure:"coalesce_ms"`
}

// CatalogueConfig points at an optional question-bank override file.
type CatalogueConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// EvidenceConfig configures attachment storage and signed downloads.
type EvidenceConfig struct {
	Root        string `yaml:"root" mapstructure:"root"`
	Secret      string `yaml:"secret" mapstructure:"secret"`
	MaxUploadMB int64  `yaml:"max_upload_mb" mapstructure:"max_upload_mb"`
	URLTTLSecs  int    `yaml:"url_ttl_secs" mapstructure:"url_ttl_secs"`
}

// ExportConfig configures where export commands write artifacts.
type ExportConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("COREIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "coreiq.db")
	v.SetDefault("store.coalesce_ms", 0)
	v.SetDefault("evidence.root", "evidence")
	v.SetDefault("evidence.max_upload_mb", 10)
	v.SetDefault("evidence.url_ttl_secs", 600)
	v.SetDefault("export.dir", ".")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
