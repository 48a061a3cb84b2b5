package config

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	EnvPrefix  = "JOBPULSE_"
	EnvFile    = EnvPrefix + "CONFIG"
	EnvDotFile = EnvPrefix + "ENV_FILE"
)

// skipKeys name the variables that locate config sources.
var skipKeys = map[string]bool{"config": true, "env_file": true}

// listKeys are split on commas when read from the environment.
var listKeys = map[string]bool{"partial_role_terms": true}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if JOBPULSE_CONFIG is set
//  3. env (prefix JOBPULSE_), including a dotenv file named by
//     JOBPULSE_ENV_FILE; variables already set in the process win
func Load(ctx context.Context) (*Config, error) {
	base := New()

	if path := os.Getenv(EnvDotFile); path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, loadFailed(err)
		}
	}

	k := koanf.New(".")

	if path := os.Getenv(EnvFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, loadFailed(err)
		}
	}

	// JOBPULSE_DATA_PATH -> data_path (flat keys, underscores kept)
	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(EnvPrefix))
		if skipKeys[key] {
			return "", nil
		}
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, loadFailed(err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, loadFailed(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
