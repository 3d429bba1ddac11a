package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/lexmatch/internal/matching"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := parseKDL("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, []string{matching.DerivationLabel, matching.DirectLabel}, cfg.Matching.Strategies)
	assert.Equal(t, 0, cfg.Matching.Workers)
	assert.True(t, cfg.Stemming.Enabled)
	assert.Equal(t, 3, cfg.Stemming.MinLength)
	assert.Equal(t, 1000, cfg.Cache.Size)
}

func TestParseKDL_AllSections(t *testing.T) {
	kdlContent := `
matching {
    strategies "direct" "derivation"
    workers 8
}
stemming {
    enabled false
    min_length 4
    exclusions "api" "http"
}
cache {
    size 64
}
fixtures {
    include "fixtures/**/*.toml"
    exclude "**/skip/**"
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)

	assert.Equal(t, []string{"direct", "derivation"}, cfg.Matching.Strategies)
	assert.Equal(t, 8, cfg.Matching.Workers)
	assert.False(t, cfg.Stemming.Enabled)
	assert.Equal(t, 4, cfg.Stemming.MinLength)
	assert.Equal(t, []string{"api", "http"}, cfg.Stemming.Exclusions)
	assert.Equal(t, 64, cfg.Cache.Size)
	assert.Equal(t, []string{"fixtures/**/*.toml"}, cfg.Fixtures.Include)
	assert.Equal(t, []string{"**/skip/**"}, cfg.Fixtures.Exclude)
}

func TestParseKDL_BlockExclusions(t *testing.T) {
	kdlContent := `
stemming {
    exclusions {
        "api"
        "http"
    }
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "http"}, cfg.Stemming.Exclusions)
}

func TestParseKDL_Invalid(t *testing.T) {
	_, err := parseKDL("matching {")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, DefaultConfigFile))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "missing file yields defaults")

	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(`matching { strategies "direct"; }`), 0644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"direct"}, cfg.Matching.Strategies)

	require.NoError(t, os.WriteFile(path, []byte(`matching { strategies "fuzzy"; }`), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestBuildStrategies(t *testing.T) {
	cfg := Default()
	strategies, err := cfg.BuildStrategies()
	require.NoError(t, err)
	require.Len(t, strategies, 2)
	assert.Equal(t, matching.DerivationLabel, strategies[0].Label())
	assert.Equal(t, matching.DirectLabel, strategies[1].Label())

	cfg.Matching.Strategies = []string{"embedding"}
	_, err = cfg.BuildStrategies()
	assert.Error(t, err)
}
