// Package config loads server configuration from an optional TOML file with
// environment variable overrides. Every setting has a development default,
// so a bare `gymverse serve` works out of the box.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for gymverse.
type Config struct {
	Addr      string `toml:"addr"`
	StaticDir string `toml:"static_dir"`
	DBPath    string `toml:"db_path"`
	Env       string `toml:"env"` // "development" or "production"

	Admin AdminConfig `toml:"admin"`
	Email EmailConfig `toml:"email"`
}

// AdminConfig holds the bootstrap admin credentials, used only when no
// credential record exists yet.
type AdminConfig struct {
	User     string `toml:"user"`
	Password string `toml:"password"`
}

// EmailConfig holds the Resend settings for appointment confirmations.
type EmailConfig struct {
	ResendKey string `toml:"resend_key"`
	From      string `toml:"from"`
}

// Default returns the development configuration.
func Default() *Config {
	return &Config{
		Addr:      ":8080",
		StaticDir: "static",
		DBPath:    "gymverse.db",
		Env:       "development",
		Email: EmailConfig{
			From: "GymVerse <noreply@gymverse.fit>",
		},
	}
}

// Read decodes a Config from the provided reader on top of the defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Load reads the config file at path if it exists, then applies GYMVERSE_*
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			cfg, err = Read(f)
			if err != nil {
				return nil, fmt.Errorf("reading config from %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	override(&c.Addr, "GYMVERSE_ADDR")
	override(&c.StaticDir, "GYMVERSE_STATIC_DIR")
	override(&c.DBPath, "GYMVERSE_DB_PATH")
	override(&c.Env, "GYMVERSE_ENV")
	override(&c.Admin.User, "GYMVERSE_ADMIN_USER")
	override(&c.Admin.Password, "GYMVERSE_ADMIN_PASSWORD")
	override(&c.Email.ResendKey, "GYMVERSE_RESEND_KEY")
	override(&c.Email.From, "GYMVERSE_RESEND_FROM")
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
