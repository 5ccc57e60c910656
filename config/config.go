// Package config holds the settings of the lvroute command.
//
// Values start from Default() and are overlaid by a YAML file decoded in strict
// mode: unknown keys are an error, absent keys keep their default.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/dedup"
	"github.com/katalvlaran/lvroute/segment"
	"github.com/katalvlaran/lvroute/validate"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full command configuration.
type Config struct {
	// Network is the GeoJSON file to load; may be overridden by a CLI argument.
	Network string `yaml:"network"`

	// CostProperty names the feature property holding the base cost.
	CostProperty string `yaml:"cost_property"`

	// Strict fails ingestion on the first unusable feature instead of skipping it.
	Strict bool `yaml:"strict"`

	// Precision is the number of decimals in node keys.
	Precision int `yaml:"precision"`

	// DedupPolicy is "per-direction" or "whole-segment".
	DedupPolicy string `yaml:"dedup_policy"`

	// Tolerance is the allowed cost spread between engines.
	Tolerance float64 `yaml:"tolerance"`

	// Queries is the number of random origin/destination pairs to check.
	Queries int `yaml:"queries"`

	// Seed makes query generation reproducible.
	Seed int64 `yaml:"seed"`

	// ReachableOnly draws each destination among the nodes reachable from its
	// origin, so queries exercise routes instead of no-route answers.
	ReachableOnly bool `yaml:"reachable_only"`

	// Workers bounds parallel queries; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// MetresPerCost enables the A* engine: the greatest distance, in metres,
	// covered per unit of cost anywhere in the network. 0 disables it.
	MetresPerCost float64 `yaml:"heuristic_metres_per_cost"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CostProperty: "_cost",
		Precision:    segment.DefaultPrecision,
		DedupPolicy:  dedup.PerDirection.String(),
		Tolerance:    validate.DefaultTolerance,
		Queries:      1000,
		Seed:         1,
		LogLevel:     "info",
	}
}

// Load reads path over Default(). An empty path returns the defaults.
// The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if c.CostProperty == "" {
		return fmt.Errorf("%w: cost_property is empty", ErrInvalid)
	}
	if err := segment.CheckPrecision(c.Precision); err != nil {
		return fmt.Errorf("%w: precision=%d: %v", ErrInvalid, c.Precision, err)
	}
	if _, err := dedup.ParsePolicy(c.DedupPolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := validate.CheckTolerance(c.Tolerance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Queries < 0 {
		return fmt.Errorf("%w: queries=%d", ErrInvalid, c.Queries)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers)
	}
	if c.MetresPerCost < 0 || math.IsNaN(c.MetresPerCost) || math.IsInf(c.MetresPerCost, 0) {
		return fmt.Errorf("%w: heuristic_metres_per_cost=%v", ErrInvalid, c.MetresPerCost)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Policy returns the parsed DedupPolicy.
func (c Config) Policy() dedup.Policy {
	p, _ := dedup.ParsePolicy(c.DedupPolicy)

	return p
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level=%q", ErrInvalid, c.LogLevel)
	}

	return l, nil
}
