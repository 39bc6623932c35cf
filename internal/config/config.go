package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied to blank fields.
const (
	DefaultCountryCode = "+91"
	DefaultSplashDelay = 3 * time.Second
	DefaultOTPResend   = 30 * time.Second
	DefaultDemoOTP     = "123456"
	DefaultLogLevel    = "info"
)

// Duration is a time.Duration written as a Go duration string ("3s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config represents ~/.damru/config.toml.
type Config struct {
	DefaultInstance string   `toml:"default_instance"`
	CountryCode     string   `toml:"country_code"`
	SplashDelay     Duration `toml:"splash_delay"`
	OTPResend       Duration `toml:"otp_resend"`
	DemoOTP         string   `toml:"demo_otp"`
	DirectoryDB     string   `toml:"directory_db"`
	LogLevel        string   `toml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return (&Config{}).WithDefaults()
}

// WithDefaults fills blank fields in place and returns cfg.
func (cfg *Config) WithDefaults() *Config {
	if cfg.CountryCode == "" {
		cfg.CountryCode = DefaultCountryCode
	}
	if cfg.SplashDelay.Duration <= 0 {
		cfg.SplashDelay.Duration = DefaultSplashDelay
	}
	if cfg.OTPResend.Duration <= 0 {
		cfg.OTPResend.Duration = DefaultOTPResend
	}
	if cfg.DemoOTP == "" {
		cfg.DemoOTP = DefaultDemoOTP
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg
}

// Load reads config from the given path. Returns nil and an error if the
// file is missing or malformed.
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return &cfg, nil
}

// LoadOrDefault reads path, falling back to Default when the file does
// not exist. Blank fields are filled in either case.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
