package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// FlatSources collects flat settings from explicit key/value overrides and
// from environment variables carrying prefix (e.g. ZONELINE_TIMEZONE1).
// Environment values win over overrides. The result is key-ordered.
func FlatSources(overrides map[string]string, prefix string) (Flat, error) {
	k := koanf.New(".")

	if len(overrides) > 0 {
		m := make(map[string]interface{}, len(overrides))
		for key, v := range overrides {
			m[strings.ToLower(strings.TrimSpace(key))] = v
		}
		if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	if prefix != "" {
		cb := func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, prefix))
		}
		if err := k.Load(env.Provider(prefix, ".", cb), nil); err != nil {
			return nil, fmt.Errorf("failed to load environment: %w", err)
		}
	}

	// Keys() is sorted, which gives timezone1..timezone9 their cyclic order.
	flat := make(Flat, 0, len(k.Keys()))
	for _, key := range k.Keys() {
		flat = append(flat, Pair{Key: key, Value: k.String(key)})
	}
	return flat, nil
}

// ConfigCandidates lists the config file names looked up in dir, in order.
var ConfigCandidates = []string{"config.toml", "config.yaml", "config.yml"}

// FindConfigFile returns the first existing candidate in dir, or "" when
// none exists.
func FindConfigFile(dir string) string {
	for _, name := range ConfigCandidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
