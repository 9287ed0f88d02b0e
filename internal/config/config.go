package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore descends
// into a section: MCPMATRIX_SERVE__PORT sets serve.port.
const EnvPrefix = "MCPMATRIX_"

// ErrInvalidConfig marks validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MCPMATRIX_*). A missing file is not an
// error; defaults are used instead.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "accessing config %s", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "loading env overrides")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}

	return cfg, nil
}

// envKey maps MCPMATRIX_SERVE__PORT to serve.port.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshalling config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing config to %s", path)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataSource) == "" {
		return errors.Wrap(ErrInvalidConfig, "data_source is required")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.Wrap(ErrInvalidConfig, "output_dir is required")
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.Wrapf(ErrInvalidConfig, "serve.port %d out of range", c.Serve.Port)
	}
	if c.Log.Level != "" && !validLogLevels[strings.ToLower(c.Log.Level)] {
		return errors.Wrapf(ErrInvalidConfig, "log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Log.Format != "" && !validLogFormats[strings.ToLower(c.Log.Format)] {
		return errors.Wrapf(ErrInvalidConfig, "log.format %q: must be text or json", c.Log.Format)
	}

	lists := []struct {
		name string
		ids  []string
	}{
		{"resources.ides", c.Resources.IDEs},
		{"resources.ai_clients", c.Resources.AIClients},
		{"resources.features", c.Resources.Features},
		{"resources.transports", c.Resources.Transports},
	}
	for _, l := range lists {
		seen := make(map[string]bool, len(l.ids))
		for _, id := range l.ids {
			if err := validateID(id); err != nil {
				return errors.Wrapf(ErrInvalidConfig, "%s: %v", l.name, err)
			}
			if seen[id] {
				return errors.Wrapf(ErrInvalidConfig, "%s: duplicate id %q", l.name, id)
			}
			seen[id] = true
		}
	}
	return nil
}

// validateID rejects identifiers that cannot appear in a combination key or
// a resource path.
func validateID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return errors.New("empty id")
	case strings.Contains(id, "+"):
		return errors.Newf("id %q must not contain '+'", id)
	case strings.ContainsAny(id, `/\`) || strings.Contains(id, ".."):
		return errors.Newf("id %q must not contain path separators", id)
	}
	return nil
}

// IsRemote reports whether the data source is an http(s) URL.
func (c *Config) IsRemote() bool {
	return strings.HasPrefix(c.DataSource, "http://") || strings.HasPrefix(c.DataSource, "https://")
}
