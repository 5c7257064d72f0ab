package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API      APIConfig     `yaml:"api"`
	Refresh  RefreshConfig `yaml:"refresh"`
	Probe    ProbeConfig   `yaml:"probe"`
	LogLevel string        `yaml:"log_level"`
}

type APIConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

type RefreshConfig struct {
	Interval Duration `yaml:"interval"`
}

type ProbeConfig struct {
	Address string   `yaml:"address"`
	Timeout Duration `yaml:"timeout"`
}

// Duration lets YAML keys carry values like "30s" or "1h"; yaml.v3 has
// no native time.Duration support.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Load reads the YAML config at path with environment variables
// expanded. A missing file is not an error: the defaults describe a
// fully working setup.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// run on defaults
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://api.sr.se/api/v2"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(30 * time.Second)
	}
	if c.Refresh.Interval == 0 {
		c.Refresh.Interval = Duration(time.Hour)
	}
	if c.Probe.Address == "" {
		c.Probe.Address = "www.google.com:443"
	}
	if c.Probe.Timeout == 0 {
		c.Probe.Timeout = Duration(5 * time.Second)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
