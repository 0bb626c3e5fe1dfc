package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	cfg, err := Load("", []string{
		"GRIDSTACK_MCP_TRANSPORT=http",
		"GRIDSTACK_MCP_HTTP_ADDR=:9000",
		"GRIDSTACK_MCP_CACHE=memory",
		"GRIDSTACK_MCP_CACHE_TTL=30s",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Transport != TransportHTTP || cfg.HTTPAddr != ":9000" {
		t.Errorf("transport = %s %s", cfg.Transport, cfg.HTTPAddr)
	}
	if cfg.Cache != CacheMemory || cfg.CacheTTL != 30*time.Second {
		t.Errorf("cache = %s %s", cfg.Cache, cfg.CacheTTL)
	}
	if cfg.Name != "gridstack-mcp-server" {
		t.Errorf("name default lost: %q", cfg.Name)
	}
}

func TestLoad_EnvError(t *testing.T) {
	_, err := Load("", []string{"GRIDSTACK_MCP_CACHE_TTL=soon"})
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("Load() error = %v, want parse env error", err)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
name = "dashboards"
log_level = "debug"
cache = "redis"
redis_url = "redis://localhost:6379/0"
cache_ttl = "1m"
cache_max_entries = 128
`)

	cfg, err := Load("", []string{
		"GRIDSTACK_MCP_CONFIG=" + path,
		"GRIDSTACK_MCP_LOG_LEVEL=warn",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ConfigPath != path {
		t.Errorf("ConfigPath = %q", cfg.ConfigPath)
	}
	if cfg.Name != "dashboards" || cfg.Cache != CacheRedis || cfg.CacheTTL != time.Minute {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.CacheMaxEntries != 128 {
		t.Errorf("CacheMaxEntries = %d, want 128", cfg.CacheMaxEntries)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("env should win over file, log level = %q", cfg.LogLevel)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("undefined key changed transport to %q", cfg.Transport)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", `name = `, "load server config"},
		{"duration", `cache_ttl = "forever"`, "parse cache_ttl"},
		{"unknown key", `colour = "blue"`, "unknown key"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile(Default(), writeFile(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("LoadFile() error = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(Default(), filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"version", func(c *Config) { c.Version = "one" }, "version"},
		{"transport", func(c *Config) { c.Transport = "grpc" }, "transport"},
		{"http addr", func(c *Config) { c.Transport = TransportHTTP; c.HTTPAddr = "" }, "http_addr"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"cache", func(c *Config) { c.Cache = "disk" }, "cache"},
		{"redis url", func(c *Config) { c.Cache = CacheRedis }, "redis_url"},
		{"ttl", func(c *Config) { c.Cache = CacheMemory; c.CacheTTL = 0 }, "cache_ttl"},
		{"max entries", func(c *Config) { c.Cache = CacheMemory; c.CacheMaxEntries = 0 }, "cache_max_entries"},
		{"name", func(c *Config) { c.Name = " " }, "name"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate() error = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Transport = "pigeon"
	cfg.LogFormat = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "transport") || !strings.Contains(err.Error(), "log_format") {
		t.Fatalf("Validate() error = %v", err)
	}
}
