package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbital/internal/celestial"
)

const (
	DefaultCatalog     = "solar"
	DefaultDt          = 6 * 3600.0 // 6 hours [s]
	DefaultDuration    = celestial.Year
	DefaultRecordEvery = 1
	DefaultBatch       = 10
	DefaultFps         = 30
)

// Config describes one simulation run. Times are seconds; the
// dt_hours/duration_days/duration_years conveniences take precedence over
// the raw fields when set in the file.
type Config struct {
	Catalog       string  `yaml:"catalog"`
	Dt            float64 `yaml:"dt"`
	DtHours       float64 `yaml:"dt_hours"`
	Duration      float64 `yaml:"duration"`
	DurationDays  float64 `yaml:"duration_days"`
	DurationYears float64 `yaml:"duration_years"`

	// RecordEvery is the trail-recording stride in steps. 1 records every
	// completed step for full path resolution; larger values trade trail
	// fidelity for less memory traffic on long runs.
	RecordEvery int `yaml:"record_every"`

	// Batch is the number of sub-steps per animation tick in live mode.
	Batch int `yaml:"batch"`
	Fps   int `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Catalog:     DefaultCatalog,
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		RecordEvery: DefaultRecordEvery,
		Batch:       DefaultBatch,
		Fps:         DefaultFps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// normalize folds the unit-convenience fields into Dt and Duration.
func (c *Config) normalize() {
	if c.DtHours > 0 {
		c.Dt = c.DtHours * 3600
	}
	if c.DurationDays > 0 {
		c.Duration = c.DurationDays * celestial.Day
	}
	if c.DurationYears > 0 {
		c.Duration = c.DurationYears * celestial.Year
	}
}

// Validate rejects values the core would refuse at call time, so a bad
// file fails before a run starts.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %g", c.Duration)
	}
	if celestial.ByName(c.Catalog) == nil {
		return fmt.Errorf("config: unknown catalog %q (available: %v)", c.Catalog, celestial.CatalogNames())
	}
	return nil
}
