// Package config assembles hillclimb settings from defaults, an optional YAML
// file, optional .env files and HILLCLIMB_* environment variables, in that
// order of increasing precedence. Command-line flags are applied on top by
// the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/hiking"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variables consulted by Load.
const (
	EnvInput    = "HILLCLIMB_INPUT"
	EnvStrategy = "HILLCLIMB_STRATEGY"
	EnvWorkers  = "HILLCLIMB_WORKERS"
	EnvVerbose  = "HILLCLIMB_VERBOSE"
	EnvLogLevel = "HILLCLIMB_LOG_LEVEL"
)

// Config holds the CLI settings.
type Config struct {
	Input    string `yaml:"input"`
	Strategy string `yaml:"strategy"`
	Workers  int    `yaml:"workers"`
	Verbose  bool   `yaml:"verbose"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Input:    "input.txt",
		Strategy: hiking.BruteForce.String(),
		Workers:  1,
		LogLevel: logrus.WarnLevel.String(),
	}
}

// Load builds a Config. path names an optional YAML file ("" skips it);
// envFiles are optional .env files, missing ones are ignored. Variables set
// in the process environment win over values from envFiles.
//
// Only malformed values (non-numeric workers, non-boolean verbose) fail here;
// the merged result is not validated so that flags can still override it.
// Call Validate once every source has been applied.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readYAML(path); err != nil {
			return Config{}, err
		}
	}

	dotenv := make(map[string]string)
	for _, f := range envFiles {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", f, err)
		}
		for k, v := range vals {
			if _, seen := dotenv[k]; !seen {
				dotenv[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) readYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvInput); ok {
		c.Input = v
	}
	if v, ok := lookup(EnvStrategy); ok {
		c.Strategy = v
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, v, err)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvVerbose); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvVerbose, v, err)
		}
		c.Verbose = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}
	if _, err := hiking.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalid, c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// HikingStrategy returns the parsed strategy. Call after Validate.
func (c Config) HikingStrategy() hiking.Strategy {
	s, _ := hiking.ParseStrategy(c.Strategy)
	return s
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
