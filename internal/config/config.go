// Package config loads orthology settings from a YAML or JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "orthology.yaml"

// Config holds every setting the CLI and the servers accept.
type Config struct {
	Separator   string   `mapstructure:"separator"`
	IDFirst     bool     `mapstructure:"id_first"`
	Targets     []string `mapstructure:"targets"`
	Output      string   `mapstructure:"output"`
	DisplayTree bool     `mapstructure:"display_tree"`
	Compact     bool     `mapstructure:"compact"`
	Format      string   `mapstructure:"format"`
	Jobs        int      `mapstructure:"jobs"`
	Store       string   `mapstructure:"store"`
	StorePath   string   `mapstructure:"store_path"`
	RedisAddr   string   `mapstructure:"redis_addr"`
	LogLevel    string   `mapstructure:"log_level"`

	// CacheTTL expires cached tables in the Redis store; zero keeps them.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Format:    "text",
		StorePath: ".orthology/cache",
		RedisAddr: "localhost:6379",
		LogLevel:  "warn",
	}
}

// Load reads path on top of Default. A missing file is only tolerated when
// explicit is false, so the default location may be absent.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode copies raw into cfg. Strings such as "true" or "1" are accepted
// for booleans and a single comma-separated string for targets.
func Decode(raw map[string]any, cfg *Config) error {
	if t, ok := raw["targets"].(string); ok {
		raw["targets"] = splitList(t)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Format {
	case "", "text", "json":
	default:
		return &domain.ConfigurationError{Field: "format", Value: c.Format, Reason: "must be text or json"}
	}
	switch c.Store {
	case "", "file", "redis":
	default:
		return &domain.ConfigurationError{Field: "store", Value: c.Store, Reason: "must be file or redis"}
	}
	if c.CacheTTL < 0 {
		return &domain.ConfigurationError{Field: "cache_ttl", Value: c.CacheTTL.String(), Reason: "must not be negative"}
	}
	if c.Jobs < 0 {
		return &domain.ConfigurationError{Field: "jobs", Value: fmt.Sprint(c.Jobs), Reason: "must not be negative"}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
