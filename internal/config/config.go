package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds converter defaults that would otherwise be repeated on the
// command line. Flags override anything set here.
type Config struct {
	// Output is the GPX output path; empty means derive from the input path.
	Output string `yaml:"output"`
	// SegmentsLimit caps tracks per output file; 0 means no limit.
	SegmentsLimit int `yaml:"segments_limit"`
	// Zone is an IANA zone name for <time> values; empty means the
	// process's local zone.
	Zone string `yaml:"zone"`
	// SpeedExtensions controls the gpxtpx speed block.
	SpeedExtensions bool `yaml:"speed_extensions"`
}

func Default() Config {
	return Config{SpeedExtensions: true}
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SegmentsLimit < 0 {
		return fmt.Errorf("segments_limit must be >= 0")
	}
	if c.Zone != "" {
		if _, err := time.LoadLocation(c.Zone); err != nil {
			return fmt.Errorf("invalid zone %q: %w", c.Zone, err)
		}
	}
	return nil
}

// Location resolves the configured zone, defaulting to the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Zone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Zone)
}
