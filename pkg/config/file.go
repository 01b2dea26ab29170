// File: pkg/config/file.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment variable read by LoadSettings.
	EnvPrefix = "GOCAT_"
	// ConfigEnv names the environment variable holding the defaults file path.
	ConfigEnv = EnvPrefix + "CONFIG"
)

// Settings holds the values read from the defaults file and the environment.
type Settings struct {
	Debug    bool  `koanf:"debug"`    // Enables development logging.
	Defaults Flags `koanf:"defaults"` // Options enabled for every invocation.
}

// LoadSettings merges the defaults file at path (if present) with
// GOCAT_-prefixed environment variables. A nested key is spelled with "__"
// in the environment, e.g. GOCAT_DEFAULTS__NUMBER=true.
func LoadSettings(path string) (Settings, error) {
	k := koanf.New(".")
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Settings{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return s, nil
}

// envKey maps GOCAT_DEFAULTS__SHOW_ENDS to defaults.show_ends.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return TOMLParser(), nil
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (want .yaml, .yml or .toml)", ext)
	}
}
