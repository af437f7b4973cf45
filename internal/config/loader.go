package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	EnvPrefix     = "SLATE_"
	EnvConfigPath = "SLATE_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SLATE_CONFIG is set
//  3. env (prefix SLATE_, "__" separates nested keys)
//
// The result is validated before it is returned.
func Load(ctx context.Context) (*Config, error) {
	cfg, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, loadErr("file", err)
		}
	}

	// SLATE_DAYS_AHEAD -> days_ahead, SLATE_PROFILES__NBA__DECAY -> profiles.nba.decay
	envProvider := env.Provider(EnvPrefix, ".", envKey)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, loadErr("env", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, loadErr("decode", err)
	}

	profiles := DefaultProfiles()
	for _, name := range k.MapKeys("profiles") {
		prefix := "profiles." + name
		p := profiles[name]
		if k.Exists(prefix + ".tiers") {
			p.Tiers = nil
		}
		if err := k.UnmarshalWithConf(prefix, &p, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
			return nil, loadErr("decode "+prefix, err)
		}
		profiles[name] = p
	}
	cfg.Profiles = profiles

	return &cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
