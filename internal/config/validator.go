package config

import (
	"errors"
	"fmt"
	"strings"

	lmerrors "github.com/standardbeagle/lexmatch/internal/errors"
)

// Validator validates configuration
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns a ConfigError for the first invalid field
func (v *Validator) Validate(cfg *Config) error {
	if err := v.validateMatching(&cfg.Matching); err != nil {
		return err
	}

	if cfg.Stemming.MinLength < 0 {
		return lmerrors.NewConfigError("stemming.min_length", fmt.Sprint(cfg.Stemming.MinLength),
			errors.New("must be >= 0"))
	}

	if cfg.Cache.Size < 0 {
		return lmerrors.NewConfigError("cache.size", fmt.Sprint(cfg.Cache.Size), errors.New("must be >= 0"))
	}

	return nil
}

func (v *Validator) validateMatching(m *Matching) error {
	if len(m.Strategies) == 0 {
		return lmerrors.NewConfigError("matching.strategies", "", errors.New("at least one strategy is required"))
	}

	seen := make(map[string]bool, len(m.Strategies))
	for _, label := range m.Strategies {
		if _, ok := NewStrategy(label); !ok {
			return lmerrors.NewConfigError("matching.strategies", label, errors.New("unknown strategy"))
		}
		if seen[label] {
			return lmerrors.NewConfigError("matching.strategies", label, errors.New("duplicate strategy"))
		}
		seen[label] = true
	}

	if m.Workers < 0 {
		return lmerrors.NewConfigError("matching.workers", fmt.Sprint(m.Workers), errors.New("must be >= 0"))
	}
	return nil
}

// ValidateConfig is a convenience wrapper around Validator.Validate
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}

// ParseStrategies splits a comma-separated strategy list, as accepted by the CLI
func ParseStrategies(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
