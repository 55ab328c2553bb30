// Package config loads formwidget settings from an optional YAML file,
// FORMWIDGET_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FORMWIDGET_SERVER_ADDR.
const EnvPrefix = "FORMWIDGET"

// Config holds all formwidget configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	TUI    TUIConfig    `mapstructure:"tui"`
	Terms  TermsConfig  `mapstructure:"terms"`
}

// ServerConfig holds the demo server settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// SubmitEndpoint receives submitted snapshots as JSON. Empty means the
	// snapshot is only logged.
	SubmitEndpoint    string        `mapstructure:"submit_endpoint"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ThemeConfig feeds the go-theme renderer config of the HTML renderer.
type ThemeConfig struct {
	Name    string            `mapstructure:"name"`
	Variant string            `mapstructure:"variant"`
	CSSVars map[string]string `mapstructure:"css_vars"`
}

// TUIConfig holds terminal session settings.
type TUIConfig struct {
	Output string `mapstructure:"output"`
}

// TermsConfig holds the terms label markup.
type TermsConfig struct {
	HTML string `mapstructure:"html"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		TUI: TUIConfig{
			Output: "json",
		},
	}
}

// Load reads path when it is non-empty, then applies environment overrides on
// top of the defaults.
func Load(path string) (Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return Decode(v)
}

// New returns a viper instance with defaults and environment binding. The
// CLI binds its flags onto it before decoding.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Decode unmarshals v and validates the result.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("config: server.addr is required"))
	}
	if c.Server.ReadHeaderTimeout < 0 {
		errs = append(errs, errors.New("config: server.read_header_timeout must not be negative"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("config: log.format %q is not text or json", c.Log.Format))
	}
	switch c.TUI.Output {
	case "json", "form", "pretty":
	default:
		errs = append(errs, fmt.Errorf("config: tui.output %q is not json, form or pretty", c.TUI.Output))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.submit_endpoint", def.Server.SubmitEndpoint)
	v.SetDefault("server.read_header_timeout", def.Server.ReadHeaderTimeout.String())

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")

	v.SetDefault("tui.output", def.TUI.Output)
	v.SetDefault("terms.html", "")
}
