// Package config provides configuration management for StyleMart using
// Viper. Settings come from stylemart.yml, STYLEMART_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Users   UsersConfig   `mapstructure:"users"`
	Session SessionConfig `mapstructure:"session"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Uploads UploadsConfig `mapstructure:"uploads"`
	Queue   QueueConfig   `mapstructure:"queue"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Templates is the glob the view templates are parsed from.
	Templates string `mapstructure:"templates"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type UsersConfig struct {
	// Backend is "csv" or "sqlite".
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret"`
}

type AuthConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

type UploadsConfig struct {
	Dir string `mapstructure:"dir"`
}

type QueueConfig struct {
	// URL enables order-message publishing when set; empty means orders
	// are only logged.
	URL  string `mapstructure:"url"`
	Name string `mapstructure:"name"`
}

// Static assets live at fixed relative paths, matching the directory
// layout the catalog and credential files also rely on.
const (
	ProductImageDir = "ProductImages"
	StylesDir       = "styles"
	ScriptsDir      = "scripts"
)

func setDefaults() {
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.templates", "web/templates/*.html")
	viper.SetDefault("catalog.path", "ProductData/products.json")
	viper.SetDefault("users.backend", "csv")
	viper.SetDefault("users.path", "user_data/users.csv")
	viper.SetDefault("session.secret", "stylemart-session-secret")
	viper.SetDefault("auth.secret", "stylemart-token-secret")
	viper.SetDefault("auth.token_ttl", 30*time.Minute)
	viper.SetDefault("uploads.dir", "temp_uploads")
	viper.SetDefault("queue.url", "")
	viper.SetDefault("queue.name", "orders")
}

// Load reads the configuration from viper's merged sources into a typed
// Config and validates it.
func Load() (*Config, error) {
	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Users.Backend {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("users.backend must be csv or sqlite, got %q", c.Users.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Session.Secret == "" || c.Auth.Secret == "" {
		return fmt.Errorf("session.secret and auth.secret must not be empty")
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// InitViper wires config file discovery and environment overrides. Called
// once from the CLI before Load.
func InitViper(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("stylemart")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("STYLEMART")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; defaults and env cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}
