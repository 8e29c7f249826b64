// Package chart binds the projection, label and history packages to a
// simulation controller for each of the three chart kinds.
//
// Geometry snapshots are rebuilt wholesale on every pass and handed out by
// value. Callers must treat the slices inside them as read-only.
package chart

import (
	"fmt"
	"strings"

	"github.com/zappabad/livecharts/internal/history"
	"github.com/zappabad/livecharts/internal/sim"
)

// ErrInvalidConfig is returned when a chart configuration cannot be used.
var ErrInvalidConfig = sim.ErrInvalidConfig

// Kind identifies a chart type.
type Kind string

const (
	KindQuadrant Kind = "quadrant"
	KindArea     Kind = "area"
	KindRadar    Kind = "radar"
)

// Kinds lists the chart kinds in navigation order.
var Kinds = []Kind{KindQuadrant, KindArea, KindRadar}

// ParseKind accepts a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart kind %q", s)
}

// Chart is the surface shared by every adapter.
type Chart interface {
	Kind() Kind
	Name() string
	Mode() sim.Mode
	SetMode(m sim.Mode)
	Randomize()
	History() []history.Entry
	ClearHistory()
	Updates() <-chan sim.Update
	DroppedEvents() int64
	Close()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
