// Package config loads server settings from defaults, an optional TOML
// file, the environment and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/caarlos0/env/v11"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Transport names.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportSDK   = "sdk"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

var (
	transports = []string{TransportStdio, TransportHTTP, TransportSDK}
	caches     = []string{CacheNone, CacheMemory, CacheRedis}
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds the server settings.
type Config struct {
	// ConfigPath names the TOML file that was loaded, if any.
	ConfigPath string `env:"GRIDSTACK_MCP_CONFIG"`

	Name    string `env:"GRIDSTACK_MCP_NAME"`
	Version string `env:"GRIDSTACK_MCP_VERSION"`

	Transport string `env:"GRIDSTACK_MCP_TRANSPORT"`
	HTTPAddr  string `env:"GRIDSTACK_MCP_HTTP_ADDR"`

	LogLevel  string `env:"GRIDSTACK_MCP_LOG_LEVEL"`
	LogFormat string `env:"GRIDSTACK_MCP_LOG_FORMAT"`

	Cache    string        `env:"GRIDSTACK_MCP_CACHE"`
	RedisURL string        `env:"GRIDSTACK_MCP_REDIS_URL"`
	CacheTTL time.Duration `env:"GRIDSTACK_MCP_CACHE_TTL"`

	// CacheMaxEntries caps the memory cache.
	CacheMaxEntries int `env:"GRIDSTACK_MCP_CACHE_MAX_ENTRIES"`

	// OTelEndpoint is an OTLP/HTTP endpoint URL. Empty disables export.
	OTelEndpoint string `env:"GRIDSTACK_MCP_OTEL_ENDPOINT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Name:      "gridstack-mcp-server",
		Version:   "1.0.0",
		Transport: TransportStdio,
		HTTPAddr:  "localhost:8081",
		LogLevel:  "info",
		LogFormat: "text",
		Cache:     CacheNone,
		CacheTTL:  10 * time.Minute,

		CacheMaxEntries: 4096,
	}
}

// Load builds the configuration from defaults, the TOML file at path and
// the environment. An empty path falls back to GRIDSTACK_MCP_CONFIG. A nil
// environ reads the process environment.
func Load(path string, environ []string) (Config, error) {
	cfg := Default()
	if err := ApplyEnv(&cfg, environ); err != nil {
		return Config{}, err
	}
	if path == "" {
		path = cfg.ConfigPath
	}
	if path == "" {
		return cfg, nil
	}

	cfg, err := LoadFile(Default(), path)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg, environ); err != nil {
		return Config{}, err
	}
	cfg.ConfigPath = path
	return cfg, nil
}

// ApplyEnv overlays set environment variables onto cfg.
func ApplyEnv(cfg *Config, environ []string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = env.ToMap(environ)
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

type fileConfig struct {
	Name         string `toml:"name"`
	Version      string `toml:"version"`
	Transport    string `toml:"transport"`
	HTTPAddr     string `toml:"http_addr"`
	LogLevel     string `toml:"log_level"`
	LogFormat    string `toml:"log_format"`
	Cache        string `toml:"cache"`
	RedisURL     string `toml:"redis_url"`
	CacheTTL     string `toml:"cache_ttl"`
	CacheMax     *int   `toml:"cache_max_entries"`
	OTelEndpoint string `toml:"otel_endpoint"`
}

// LoadFile overlays the keys defined in the TOML file at path onto cfg.
func LoadFile(cfg Config, path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load server config: %w", err)
	}

	strs := []struct {
		key string
		src string
		dst *string
	}{
		{"name", raw.Name, &cfg.Name},
		{"version", raw.Version, &cfg.Version},
		{"transport", raw.Transport, &cfg.Transport},
		{"http_addr", raw.HTTPAddr, &cfg.HTTPAddr},
		{"log_level", raw.LogLevel, &cfg.LogLevel},
		{"log_format", raw.LogFormat, &cfg.LogFormat},
		{"cache", raw.Cache, &cfg.Cache},
		{"redis_url", raw.RedisURL, &cfg.RedisURL},
		{"otel_endpoint", raw.OTelEndpoint, &cfg.OTelEndpoint},
	}
	for _, s := range strs {
		if meta.IsDefined(s.key) {
			*s.dst = strings.TrimSpace(s.src)
		}
	}

	if meta.IsDefined("cache_ttl") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.CacheTTL))
		if err != nil {
			return Config{}, fmt.Errorf("parse cache_ttl: %w", err)
		}
		cfg.CacheTTL = d
	}

	if raw.CacheMax != nil {
		cfg.CacheMaxEntries = *raw.CacheMax
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load server config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if strings.TrimSpace(c.Name) == "" {
		bad("name is required")
	}
	if _, err := semver.NewVersion(c.Version); err != nil {
		bad("version %q: %v", c.Version, err)
	}
	if !slices.Contains(transports, c.Transport) {
		bad("transport %q must be one of %s", c.Transport, strings.Join(transports, ", "))
	}
	if c.Transport == TransportHTTP && strings.TrimSpace(c.HTTPAddr) == "" {
		bad("http_addr is required for the http transport")
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		bad("log_level %q must be one of %s", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		bad("log_format %q must be one of %s", c.LogFormat, strings.Join(logFormats, ", "))
	}
	if !slices.Contains(caches, c.Cache) {
		bad("cache %q must be one of %s", c.Cache, strings.Join(caches, ", "))
	}
	if c.Cache == CacheRedis && strings.TrimSpace(c.RedisURL) == "" {
		bad("redis_url is required for the redis cache")
	}
	if c.Cache != CacheNone && c.CacheTTL <= 0 {
		bad("cache_ttl must be positive")
	}
	if c.Cache == CacheMemory && c.CacheMaxEntries <= 0 {
		bad("cache_max_entries must be positive")
	}

	return errors.Join(errs...)
}
