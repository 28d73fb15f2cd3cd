// SPDX-License-Identifier: MIT

// Package config loads the precgraph configuration: built-in defaults, then an
// optional YAML file, then PRECGRAPH_* environment overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override, e.g. PRECGRAPH_LAMBDA.
const EnvPrefix = "PRECGRAPH"

// Shrinkage modes.
const (
	ShrinkageFixed      = "fixed"
	ShrinkageLedoitWolf = "ledoit-wolf"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete tool configuration.
//
// Environment keys are derived from the field path, e.g. PRECGRAPH_INPUT_PATH
// or PRECGRAPH_SERVER_MAX_BODY_BYTES. Fields carry no envconfig name tags:
// a named tag also falls back to the unprefixed variable ($PATH, $LEVEL).
type Config struct {
	Shrinkage string  `yaml:"shrinkage" validate:"oneof=fixed ledoit-wolf"`
	Lambda    float64 `yaml:"lambda" validate:"gte=0,lte=1"`
	Quantile  float64 `yaml:"quantile" validate:"gte=0,lte=1"`
	Method    string  `yaml:"method" validate:"oneof=lininterp type7"`

	Input   InputConfig   `yaml:"input"`
	Sectors string        `yaml:"sectors"`
	Output  string        `yaml:"output"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// InputConfig locates the returns (or prices) table.
type InputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format" validate:"omitempty,oneof=csv xlsx"`
	Kind   string `yaml:"kind" validate:"oneof=prices returns"`
	Sheet  string `yaml:"sheet"`
}

// SweepConfig bounds the parameter sweep.
type SweepConfig struct {
	Workers int `yaml:"workers" validate:"gte=0"`
}

// LoggingConfig selects the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true" validate:"gt=0"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" split_words:"true" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Shrinkage: ShrinkageFixed,
		Lambda:    0.3,
		Quantile:  0.9,
		Method:    "lininterp",
		Input:     InputConfig{Kind: "returns"},
		Logging:   LoggingConfig{Level: "info", Format: "json"},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    8 << 20,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (a
// missing file, or an empty path, leaves the defaults) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	// Unset variables leave the fields loaded so far untouched.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// AutoLambda reports whether λ is chosen by Ledoit–Wolf.
func (c *Config) AutoLambda() bool { return c.Shrinkage == ShrinkageLedoitWolf }
