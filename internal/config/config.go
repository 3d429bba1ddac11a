package config

import (
	"fmt"
	"os"

	"github.com/standardbeagle/lexmatch/internal/matching"
)

// DefaultConfigFile is the configuration file looked up by the CLI
const DefaultConfigFile = ".lexmatch.kdl"

type Config struct {
	Version  int
	Matching Matching
	Stemming Stemming
	Cache    Cache
	Fixtures Fixtures
}

type Matching struct {
	Strategies []string // Registration order; the first strategy to match a pair wins
	Workers    int      // Phrases matched concurrently, 0 = NumCPU
}

type Stemming struct {
	Enabled    bool
	MinLength  int
	Exclusions []string
}

type Cache struct {
	Size int // Stem cache entries
}

type Fixtures struct {
	Include []string
	Exclude []string
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Version: 1,
		Matching: Matching{
			Strategies: []string{matching.DerivationLabel, matching.DirectLabel},
			Workers:    0,
		},
		Stemming: Stemming{
			Enabled:   true,
			MinLength: 3,
		},
		Cache: Cache{Size: 1000},
	}
}

// Load reads the KDL file at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, err
	}
	if err := NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BuildStrategies instantiates the configured strategies in order
func (c *Config) BuildStrategies() ([]matching.WordMatchingStrategy, error) {
	out := make([]matching.WordMatchingStrategy, 0, len(c.Matching.Strategies))
	for _, label := range c.Matching.Strategies {
		s, ok := NewStrategy(label)
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q", label)
		}
		out = append(out, s)
	}
	return out, nil
}

// NewStrategy returns the strategy registered under label
func NewStrategy(label string) (matching.WordMatchingStrategy, bool) {
	switch label {
	case matching.DerivationLabel:
		return matching.NewDerivationStrategy(), true
	case matching.DirectLabel:
		return matching.NewDirectStrategy(), true
	default:
		return nil, false
	}
}
