package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file. Flags override every field.
type Config struct {
	Metric  string   `yaml:"metric"`
	Facet   string   `yaml:"facet"`
	Output  string   `yaml:"output"`
	Palette []string `yaml:"palette"`
}

// loadConfig reads the config file at path. A missing file is not an error
// when the path was not explicitly set.
func loadConfig(path string, explicit bool) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &config, nil
}

// applyDefaults fills unset flag values from the config file.
func applyDefaults(config *Config) {
	if metricName == "" && config.Metric != "" {
		metricName = config.Metric
	}
	if metricName == "" {
		metricName = "download"
	}
	if facetType == "" && config.Facet != "" {
		facetType = config.Facet
	}
	if facetType == "" {
		facetType = "location"
	}
	if outputFormat == "" && config.Output != "" {
		outputFormat = config.Output
	}
	if outputFormat == "" {
		outputFormat = "table"
	}
}
