package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultEndpoint is where the verification API listens in a local setup.
const DefaultEndpoint = "http://localhost:8000/v1/verify"

type Config struct {
	Server ServerConfig
	Verify VerifyConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type VerifyConfig struct {
	Endpoint string
	Timeout  time.Duration
}

type LogConfig struct {
	Level   string
	NoColor bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")

	v.SetDefault("verify.endpoint", DefaultEndpoint)
	v.SetDefault("verify.timeout", "30s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.no_color", false)
}

// LoadConfig reads config.yaml from ./config or the working directory when
// present, then applies environment overrides such as VERIFY_ENDPOINT.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	// NO_COLOR is a cross-tool convention, not namespaced under LOG_.
	if err := v.BindEnv("log.no_color", "LOG_NO_COLOR", "NO_COLOR"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			Host:         v.GetString("server.host"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Verify: VerifyConfig{
			Endpoint: v.GetString("verify.endpoint"),
			Timeout:  v.GetDuration("verify.timeout"),
		},
		Log: LogConfig{
			Level:   v.GetString("log.level"),
			NoColor: v.GetBool("log.no_color"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("configuration loaded successfully", "endpoint", cfg.Verify.Endpoint)
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Verify.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid verify endpoint %q: %w", c.Verify.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("verify endpoint %q must be an http(s) URL", c.Verify.Endpoint)
	}
	if c.Verify.Timeout < 0 {
		return fmt.Errorf("verify timeout cannot be negative")
	}
	return nil
}

// SlogLevel maps Log.Level onto a slog level, defaulting to info.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
