// File: loader.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "BIMATCH_"

// FileLoader decodes one configuration file format.
type FileLoader interface {
	Load(reader io.Reader, target interface{}) error
	Extensions() []string
}

// Loader applies configuration sources in order of increasing priority:
//  1. Default values (in code)
//  2. The configuration file, when a path is given
//  3. Environment variables (BIMATCH_*)
type Loader struct {
	fileLoaders map[string]FileLoader
	getenv      func(string) string
}

// NewLoader creates a loader with YAML, TOML and JSON support.
func NewLoader() *Loader {
	l := &Loader{
		fileLoaders: make(map[string]FileLoader),
		getenv:      os.Getenv,
	}
	l.RegisterLoader(YAMLLoader{})
	l.RegisterLoader(TOMLLoader{})
	l.RegisterLoader(JSONLoader{})

	return l
}

// RegisterLoader registers loader for each of its extensions.
func (l *Loader) RegisterLoader(loader FileLoader) {
	for _, ext := range loader.Extensions() {
		l.fileLoaders[ext] = loader
	}
}

// Load builds the configuration. An empty path skips the file layer.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()
	cfg.LoadedFrom = append(cfg.LoadedFrom, "defaults")

	if path != "" {
		if err := l.loadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	applied, err := l.loadEnvironmentVariables(cfg)
	if err != nil {
		return nil, err
	}
	if applied {
		cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (l *Loader) loadFile(path string, cfg *Config) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	loader, ok := l.fileLoaders[ext]
	if !ok {
		return fmt.Errorf("config: unsupported file extension %q", ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err = loader.Load(f, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// loadEnvironmentVariables overlays BIMATCH_* variables and reports whether any was set.
func (l *Loader) loadEnvironmentVariables(cfg *Config) (bool, error) {
	applied := false
	str := func(name string, dst *string) {
		if v := l.getenv(EnvPrefix + name); v != "" {
			*dst = v
			applied = true
		}
	}
	var firstErr error
	parse := func(name string, set func(string) error) {
		v := l.getenv(EnvPrefix + name)
		if v == "" {
			return
		}
		applied = true
		if err := set(v); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, name, v, err)
		}
	}

	str("ADDR", &cfg.Server.Addr)
	str("LOG_FORMAT", &cfg.Logging.Format)
	str("LOG_LEVEL", &cfg.Logging.Level)
	str("SEED_FILE", &cfg.Seed.File)
	str("METRICS_NAMESPACE", &cfg.Metrics.Namespace)

	parse("CORS_ORIGINS", func(v string) error {
		cfg.CORS.AllowedOrigins = splitList(v)
		return nil
	})
	parse("RATE_LIMIT_ENABLED", func(v string) (err error) {
		cfg.RateLimit.Enabled, err = strconv.ParseBool(v)
		return err
	})
	parse("RATE_LIMIT_RPS", func(v string) (err error) {
		cfg.RateLimit.RPS, err = strconv.ParseFloat(v, 64)
		return err
	})
	parse("RATE_LIMIT_BURST", func(v string) (err error) {
		cfg.RateLimit.Burst, err = strconv.Atoi(v)
		return err
	})
	parse("METRICS_ENABLED", func(v string) (err error) {
		cfg.Metrics.Enabled, err = strconv.ParseBool(v)
		return err
	})
	parse("SHUTDOWN_TIMEOUT", func(v string) error {
		return cfg.Server.ShutdownTimeout.UnmarshalText([]byte(v))
	})

	return applied, firstErr
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// YAMLLoader loads configuration from YAML files. Unknown keys are rejected.
type YAMLLoader struct{}

func (YAMLLoader) Load(reader io.Reader, target interface{}) error {
	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (YAMLLoader) Extensions() []string { return []string{"yaml", "yml"} }

// TOMLLoader loads configuration from TOML files. Unknown keys are rejected.
type TOMLLoader struct{}

func (TOMLLoader) Load(reader io.Reader, target interface{}) error {
	md, err := toml.NewDecoder(reader).Decode(target)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys %v", undecoded)
	}
	return nil
}

func (TOMLLoader) Extensions() []string { return []string{"toml"} }

// JSONLoader loads configuration from JSON files. Unknown keys are rejected.
type JSONLoader struct{}

func (JSONLoader) Load(reader io.Reader, target interface{}) error {
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}

func (JSONLoader) Extensions() []string { return []string{"json"} }
