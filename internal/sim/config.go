package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/zappabad/livecharts/internal/history"
)

// ErrInvalidConfig is returned when a configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds configuration for a simulation controller.
type Config struct {
	// Name identifies the chart in logs and updates.
	Name string `yaml:"-"`
	// Interval is the period of the repeating pass in Auto mode.
	Interval time.Duration `yaml:"interval"`
	// HistorySize is the capacity of the position trail.
	HistorySize int `yaml:"history_size"`
	// Threshold is the minimum per-axis move recorded in history. Zero
	// records every move.
	Threshold float64 `yaml:"threshold"`
	// EventBuffer is the size of the updates channel.
	EventBuffer int `yaml:"event_buffer"`
	// DropEvents determines whether the updates channel drops on overflow.
	DropEvents bool `yaml:"drop_events"`
	// Seed seeds the data generator; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Interval:    5 * time.Second,
		HistorySize: history.DefaultCapacity,
		Threshold:   history.DefaultThreshold,
		EventBuffer: 64,
		DropEvents:  true,
	}
}

// Validate rejects negative settings. Zero values fall back to defaults,
// except Threshold where zero is meaningful.
func (c Config) Validate() error {
	switch {
	case c.Interval < 0:
		return fmt.Errorf("%w: %s interval %v", ErrInvalidConfig, c.Name, c.Interval)
	case c.HistorySize < 0:
		return fmt.Errorf("%w: %s history size %d", ErrInvalidConfig, c.Name, c.HistorySize)
	case c.Threshold < 0:
		return fmt.Errorf("%w: %s threshold %v", ErrInvalidConfig, c.Name, c.Threshold)
	case c.EventBuffer < 0:
		return fmt.Errorf("%w: %s event buffer %d", ErrInvalidConfig, c.Name, c.EventBuffer)
	}
	return nil
}
