// Package label positions value labels so they stay inside the drawable area.
//
// Text width is estimated from the character count times a fixed per-character
// width. This is an approximation: exact metrics need a text-measurement
// facility from the host renderer, which the core does not have.
package label

import (
	"math"
	"unicode/utf8"

	"github.com/zappabad/livecharts/internal/geom"
)

// Anchor is the horizontal text anchor of a label.
type Anchor uint8

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Placement is where to draw a label and how to anchor it.
type Placement struct {
	X      float64
	Y      float64
	Anchor Anchor
}

// Placer holds the heuristic constants for one coordinate space.
type Placer struct {
	CharWidth  float64 // estimated width per character
	TextHeight float64
	Padding    float64 // inset from the inner edges
	Offset     float64 // default distance from the point, right and up
	Drop       float64 // distance below the point when the top edge is too close
}

// DefaultPlacer is tuned for pixel viewports.
func DefaultPlacer() Placer {
	return Placer{
		CharWidth:  5,
		TextHeight: 12,
		Padding:    5,
		Offset:     5,
		Drop:       15,
	}
}

// Place puts text above-right of p, flipping left when it would overflow the
// right edge and dropping below when p is too close to the top.
func (pl Placer) Place(p geom.Point, inner geom.Size, text string) Placement {
	textWidth := float64(utf8.RuneCountInString(text)) * pl.CharWidth
	rightBoundary := inner.Width - pl.Padding - textWidth
	topBoundary := pl.Padding + pl.TextHeight

	out := Placement{
		X:      p.X + pl.Offset,
		Y:      p.Y - pl.Offset,
		Anchor: AnchorStart,
	}
	if p.X > rightBoundary {
		out.X = p.X - pl.Offset
		out.Anchor = AnchorEnd
	}
	if p.Y < topBoundary {
		out.Y = p.Y + pl.Drop
	}
	return out
}

// Place uses DefaultPlacer.
func Place(p geom.Point, inner geom.Size, text string) Placement {
	return DefaultPlacer().Place(p, inner, text)
}

// RadialFactor is how far outside the outer ring radar axis labels sit.
const RadialFactor = 1.1

// Radial places an axis label just outside the outer ring on the spoke at
// angle. The top spoke is centered; spokes on the right half start at the
// label and those on the left half end at it.
func Radial(center geom.Point, radius, angle float64) Placement {
	d := radius * RadialFactor
	out := Placement{
		X: center.X + d*math.Cos(angle),
		Y: center.Y + d*math.Sin(angle),
	}
	switch {
	case angle == -math.Pi/2:
		out.Anchor = AnchorMiddle
	case angle > -math.Pi/2 && angle < math.Pi/2:
		out.Anchor = AnchorStart
	default:
		out.Anchor = AnchorEnd
	}
	return out
}
