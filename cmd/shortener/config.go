package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Port         int           `yaml:"port"`
	BaseURL      string        `yaml:"base_url"`
	DatabaseURL  string        `yaml:"database_url"`
	LogLevel     string        `yaml:"log_level"`
	CacheSize    int           `yaml:"cache_size"`
	ShortenRPS   int           `yaml:"shorten_rps"`
	QueryTimeout time.Duration `yaml:"query_timeout"`
}

func DefaultConfig() Config {
	return Config{
		Port:         8080,
		BaseURL:      "http://localhost:8080/",
		LogLevel:     "info",
		CacheSize:    1000,
		ShortenRPS:   100,
		QueryTimeout: 5 * time.Second,
	}
}

// LoadConfig starts from DefaultConfig, applies the YAML file named by
// SHORTENER_CONFIG if set, then the individual environment variables.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if path := getenv("SHORTENER_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	var err error
	if cfg.Port, err = intEnv(getenv, "PORT", cfg.Port); err != nil {
		return cfg, err
	}
	if cfg.CacheSize, err = intEnv(getenv, "CACHE_SIZE", cfg.CacheSize); err != nil {
		return cfg, err
	}
	if cfg.ShortenRPS, err = intEnv(getenv, "SHORTEN_RPS", cfg.ShortenRPS); err != nil {
		return cfg, err
	}
	if v := getenv("QUERY_TIMEOUT"); v != "" {
		if cfg.QueryTimeout, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("QUERY_TIMEOUT: %w", err)
		}
	}

	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("base url %q must be absolute", c.BaseURL))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if c.CacheSize <= 0 {
		errs = append(errs, fmt.Errorf("cache size must be positive, got %d", c.CacheSize))
	}
	if c.ShortenRPS < 0 {
		errs = append(errs, fmt.Errorf("shorten rps must not be negative, got %d", c.ShortenRPS))
	}
	if c.QueryTimeout <= 0 {
		errs = append(errs, fmt.Errorf("query timeout must be positive, got %s", c.QueryTimeout))
	}
	return errors.Join(errs...)
}

func intEnv(getenv func(string) string, name string, def int) (int, error) {
	v := getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
