package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/zappabad/livecharts/internal/geom"
)

// Mode is the simulation state of one chart instance.
type Mode uint8

const (
	ModeManual Mode = iota
	ModeAuto
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeAuto {
		return ModeManual
	}
	return ModeAuto
}

// ParseMode accepts "manual" or "auto", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return ModeManual, nil
	case "auto":
		return ModeAuto, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// UnmarshalText lets modes be read from config files.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Chart is the chart-specific capability set the controller drives.
// Both methods are only ever called with the controller's lock held.
type Chart interface {
	// Regenerate replaces the source data with simulated values.
	Regenerate(r *rand.Rand)
	// Project recomputes all geometry from the current data and returns the
	// point tracked in history.
	Project() geom.Point
}

// Source says what triggered a pass.
type Source uint8

const (
	SourceTick Source = iota
	SourceModeChange
	SourceRandomize
	SourceEdit
)

func (s Source) String() string {
	switch s {
	case SourceTick:
		return "tick"
	case SourceModeChange:
		return "mode"
	case SourceRandomize:
		return "randomize"
	case SourceEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Update is published after every completed pass.
type Update struct {
	Chart    string
	Seq      uint64
	Mode     Mode
	Source   Source
	Point    geom.Point
	Recorded bool // whether Point was appended to history
}
