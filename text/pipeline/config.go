// Package pipeline builds decorator chains from YAML descriptions.
//
//	steps:
//	  - op: sub
//	    start: 7
//	    end: 12
//	  - op: upper
//	    language: tr
//
// Building a chain evaluates nothing; the source is read only when the
// resulting Text is materialized.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Op names a decorator.
type Op string

const (
	OpSub       Op = "sub"
	OpUpper     Op = "upper"
	OpLower     Op = "lower"
	OpTrim      Op = "trim"
	OpNormalize Op = "normalize"
	OpReverse   Op = "reverse"
	OpAbbrev    Op = "abbreviate"
	OpReplace   Op = "replace"
	OpRepeat    Op = "repeat"
)

// ErrInvalidConfig is matched by every validation failure.
var ErrInvalidConfig = errors.New("invalid pipeline config")

// Step is one decorator in a pipeline. Only the fields its Op uses are read.
type Step struct {
	Op Op `yaml:"op"`

	// sub
	Start int  `yaml:"start,omitempty"`
	End   *int `yaml:"end,omitempty"` // nil means the source length at evaluation time

	// upper, lower
	Language string `yaml:"language,omitempty"`

	// abbreviate
	Width int `yaml:"width,omitempty"`

	// replace
	Pattern     string `yaml:"pattern,omitempty"`
	Replacement string `yaml:"replacement,omitempty"`
	Regexp      bool   `yaml:"regexp,omitempty"`

	// repeat
	Count int `yaml:"count,omitempty"`
}

// Config describes a pipeline.
type Config struct {
	Steps []Step `yaml:"steps"`
}

// Validate checks that every step names a known op with usable arguments.
func (c Config) Validate() error {
	var errs []error
	for i, s := range c.Steps {
		if err := s.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i, s.Op, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpSub, OpTrim, OpNormalize, OpReverse:
		return nil
	case OpUpper, OpLower:
		if s.Language == "" {
			return nil
		}
		if _, err := language.Parse(s.Language); err != nil {
			return fmt.Errorf("language %q: %w", s.Language, err)
		}
		return nil
	case OpAbbrev:
		if s.Width <= 3 {
			return fmt.Errorf("width must be greater than 3, got %d", s.Width)
		}
		return nil
	case OpReplace:
		if s.Pattern == "" {
			return errors.New("pattern is required")
		}
		return nil
	case OpRepeat:
		if s.Count < 0 {
			return fmt.Errorf("count must not be negative, got %d", s.Count)
		}
		return nil
	case "":
		return errors.New("op is required")
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
}

// Load decodes and validates a pipeline from r. Unknown fields are rejected.
func Load(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse pipeline: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes and validates the pipeline stored at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
