package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/devportal/pkg/cookie"
	"github.com/dmitrymomot/devportal/pkg/logger"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the portal's runtime configuration.
type Config struct {
	Address         string        `yaml:"address"          env:"DEVPORTAL_ADDRESS"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"DEVPORTAL_SHUTDOWN_TIMEOUT"`
	// Debug lowers the log level to debug. Nothing else changes.
	Debug   bool          `yaml:"debug" env:"DEVPORTAL_DEBUG"`
	Log     logger.Config `yaml:"log"`
	Cookie  Cookie        `yaml:"cookie"`
	Session Session       `yaml:"session"`
}

// Cookie configures the visitor cookie.
type Cookie struct {
	Name string `yaml:"name" env:"DEVPORTAL_COOKIE_NAME"`
	// Secret signs the cookie. Empty leaves it unsigned.
	Secret string        `yaml:"secret" env:"DEVPORTAL_COOKIE_SECRET"`
	MaxAge time.Duration `yaml:"max_age" env:"DEVPORTAL_COOKIE_MAX_AGE"`
	Secure bool          `yaml:"secure" env:"DEVPORTAL_COOKIE_SECURE"`
}

// Session configures the in-memory visitor registry.
type Session struct {
	IdleTTL         time.Duration `yaml:"idle_ttl"         env:"DEVPORTAL_SESSION_IDLE_TTL"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"DEVPORTAL_SESSION_CLEANUP_INTERVAL"`
	MaxVisitors     int           `yaml:"max_visitors"     env:"DEVPORTAL_SESSION_MAX_VISITORS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Address:         ":8080",
		ShutdownTimeout: 10 * time.Second,
		Log: logger.Config{
			Level:  "info",
			Format: logger.FormatJSON,
		},
		Cookie: Cookie{
			Name:   cookie.DefaultName,
			MaxAge: 30 * 24 * time.Hour,
		},
		Session: Session{
			IdleTTL:         24 * time.Hour,
			CleanupInterval: time.Minute,
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decodeYAML(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if cfg.Debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeYAML overlays raw onto cfg, rejecting unknown keys.
func decodeYAML(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Address) == "" {
		problems = append(problems, "address is required")
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "shutdown_timeout must be positive")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not json or text", c.Log.Format))
	}
	if err := cookie.ValidateSecret(c.Cookie.Secret); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Cookie.MaxAge < time.Second {
		problems = append(problems, "cookie.max_age must be at least 1s")
	}
	if c.Session.IdleTTL <= 0 {
		problems = append(problems, "session.idle_ttl must be positive")
	}
	if c.Session.CleanupInterval < 0 {
		problems = append(problems, "session.cleanup_interval must not be negative")
	}
	if c.Session.MaxVisitors < 0 {
		problems = append(problems, "session.max_visitors must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
