// Package config loads the optional YAML file that seeds the harness settings and declares
// additional test cases.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	TransportCurl = "curl"
	TransportHTTP = "http"

	CompareExact = "exact"
	CompareJSON  = "json"
)

// Config mirrors the command-line flags. Zero values mean "not set".
type Config struct {
	URL       string       `yaml:"url"`
	Transport string       `yaml:"transport"`
	CurlPath  string       `yaml:"curl"`
	Timeout   Duration     `yaml:"timeout"`
	Compare   string       `yaml:"compare"`
	CSVPath   string       `yaml:"csv"`
	XLSXPath  string       `yaml:"xlsx"`
	Wait      Duration     `yaml:"wait"`
	LogLevel  string       `yaml:"log_level"`
	LogFile   string       `yaml:"log_file"`
	Cases     []CaseConfig `yaml:"cases"`
}

// CaseConfig declares a test case against a catalog operation.
type CaseConfig struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Service     string `yaml:"service"`
	Operation   string `yaml:"operation"`
	Expected    string `yaml:"expected"`
	PassMessage string `yaml:"pass_message"`
}

// Duration is a time.Duration written as a string such as "30s" in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	switch c.Transport {
	case "", TransportCurl, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport %q", c.Transport)
	}
	switch c.Compare {
	case "", CompareExact, CompareJSON:
	default:
		return fmt.Errorf("unknown comparison mode %q", c.Compare)
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	seen := make(map[string]bool)
	for i, tc := range c.Cases {
		if tc.ID == "" || tc.Service == "" || tc.Operation == "" {
			return fmt.Errorf("case %d: id, service and operation are required", i+1)
		}
		if tc.Expected == "" {
			return fmt.Errorf("case %s: expected response is required", tc.ID)
		}
		if seen[tc.ID] {
			return fmt.Errorf("duplicate case id %s", tc.ID)
		}
		seen[tc.ID] = true
	}
	return nil
}
