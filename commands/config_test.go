package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netcompare.yaml")
	content := `metric: rtt
facet: clientIsp
output: json
palette:
  - "#111111"
  - "#222222"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := loadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "rtt", config.Metric)
	assert.Equal(t, "clientIsp", config.Facet)
	assert.Equal(t, "json", config.Output)
	assert.Equal(t, []string{"#111111", "#222222"}, config.Palette)
}

func TestLoadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	// Implicit default path: missing file is fine.
	config, err := loadConfig(missing, false)
	require.NoError(t, err)
	assert.Empty(t, config.Metric)

	// Explicit --config with a missing file is an error.
	_, err = loadConfig(missing, true)
	assert.Error(t, err)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metric: [unclosed"), 0644))

	_, err := loadConfig(path, true)
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	resetFlags()
	applyDefaults(&Config{Metric: "upload", Output: "json"})
	assert.Equal(t, "upload", metricName)
	assert.Equal(t, "location", facetType)
	assert.Equal(t, "json", outputFormat)

	resetFlags()
	metricName = "rtt"
	applyDefaults(&Config{Metric: "upload"})
	// Flags win over config.
	assert.Equal(t, "rtt", metricName)

	resetFlags()
	applyDefaults(&Config{})
	assert.Equal(t, "download", metricName)
	assert.Equal(t, "table", outputFormat)
}
