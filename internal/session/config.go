package session

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/zappabad/livecharts/internal/chart"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and LoadConfig for unusable values.
var ErrInvalidConfig = chart.ErrInvalidConfig

// Config holds configuration for a session.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// ActivityCapacity is the number of recent updates kept for display.
	ActivityCapacity int `yaml:"activity_capacity"`
	// UpdateBuffer is the size of the merged updates channel.
	UpdateBuffer int `yaml:"update_buffer"`

	Quadrant chart.QuadrantConfig `yaml:"quadrant"`
	Area     chart.AreaConfig     `yaml:"area"`
	Radar    chart.RadarConfig    `yaml:"radar"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:         "info",
		ActivityCapacity: 50,
		UpdateBuffer:     256,
		Quadrant:         chart.DefaultQuadrantConfig(),
		Area:             chart.DefaultAreaConfig(),
		Radar:            chart.DefaultRadarConfig(),
	}
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
		}
	}
	if err := c.Quadrant.Validate(); err != nil {
		return err
	}
	if err := c.Area.Validate(); err != nil {
		return err
	}
	return c.Radar.Validate()
}

// LoadConfig reads a YAML file over DefaultConfig. An empty path returns the
// defaults. Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
