// Package config defines the service configuration and its validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the complete service configuration.
type Config struct {
	Server    Server    `yaml:"server" toml:"server" json:"server"`
	Logging   Logging   `yaml:"logging" toml:"logging" json:"logging"`
	CORS      CORS      `yaml:"cors" toml:"cors" json:"cors"`
	RateLimit RateLimit `yaml:"rate_limit" toml:"rate_limit" json:"rate_limit"`
	Metrics   Metrics   `yaml:"metrics" toml:"metrics" json:"metrics"`
	Seed      Seed      `yaml:"seed" toml:"seed" json:"seed"`

	// LoadedFrom lists the sources applied, lowest priority first.
	LoadedFrom []string `yaml:"-" toml:"-" json:"-"`
}

// Server holds HTTP listener settings.
type Server struct {
	Addr            string   `yaml:"addr" toml:"addr" json:"addr" validate:"required,hostname_port"`
	ReadTimeout     Duration `yaml:"read_timeout" toml:"read_timeout" json:"read_timeout" validate:"gt=0"`
	WriteTimeout    Duration `yaml:"write_timeout" toml:"write_timeout" json:"write_timeout" validate:"gt=0"`
	IdleTimeout     Duration `yaml:"idle_timeout" toml:"idle_timeout" json:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout" json:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64    `yaml:"max_body_bytes" toml:"max_body_bytes" json:"max_body_bytes" validate:"gt=0"`
}

// Logging selects the zap encoder and level.
type Logging struct {
	Format string `yaml:"format" toml:"format" json:"format" validate:"oneof=json console"`
	Level  string `yaml:"level" toml:"level" json:"level" validate:"oneof=debug info warn error"`
}

// CORS lists allowed browser origins; empty disables the CORS middleware.
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" toml:"allowed_origins" json:"allowed_origins"`
	MaxAge         int      `yaml:"max_age" toml:"max_age" json:"max_age" validate:"gte=0"`
}

// RateLimit configures the per-client limiter on mutating routes.
type RateLimit struct {
	Enabled bool    `yaml:"enabled" toml:"enabled" json:"enabled"`
	RPS     float64 `yaml:"rps" toml:"rps" json:"rps" validate:"gte=0"`
	Burst   int     `yaml:"burst" toml:"burst" json:"burst" validate:"gte=0"`
}

// Metrics toggles the Prometheus endpoint.
type Metrics struct {
	Enabled   bool   `yaml:"enabled" toml:"enabled" json:"enabled"`
	Namespace string `yaml:"namespace" toml:"namespace" json:"namespace" validate:"required_if=Enabled true"`
}

// Seed optionally pre-populates the graph at startup: from a graph file, or generated.
type Seed struct {
	File   string      `yaml:"file" toml:"file" json:"file"`
	Random *RandomSeed `yaml:"random" toml:"random" json:"random"`
}

// RandomSeed describes a random bipartite graph with A and B nodes and edge probability P.
type RandomSeed struct {
	A    int     `yaml:"a" toml:"a" json:"a" validate:"gte=1"`
	B    int     `yaml:"b" toml:"b" json:"b" validate:"gte=1"`
	P    float64 `yaml:"p" toml:"p" json:"p" validate:"gte=0,lte=1"`
	Seed int64   `yaml:"seed" toml:"seed" json:"seed"`
}

// Default returns a configuration that runs without any file or environment.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(15 * time.Second),
			IdleTimeout:     Duration(60 * time.Second),
			ShutdownTimeout: Duration(30 * time.Second),
			MaxBodyBytes:    1 << 20,
		},
		Logging: Logging{Format: "json", Level: "info"},
		CORS:    CORS{MaxAge: 300},
		RateLimit: RateLimit{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
		Metrics: Metrics{Enabled: true, Namespace: "bimatch"},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	var problems []string
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1) {
		problems = append(problems, "rate_limit: rps and burst must be positive when enabled")
	}
	if c.Seed.File != "" && c.Seed.Random != nil {
		problems = append(problems, "seed: file and random are mutually exclusive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

// Duration is a time.Duration that reads and writes as "15s" in every file format.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) { return []byte(time.Duration(d).String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)

	return nil
}
