// Package projection maps chart data onto drawable coordinates.
//
// Every function here is pure: identical input produces bit-identical output.
package projection

import "github.com/zappabad/livecharts/internal/geom"

// Max returns the largest value, or 0 for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// XStep returns the horizontal distance between consecutive points.
// A single point has no step (it sits at x=0).
func XStep(n int, innerWidth float64) float64 {
	if n <= 1 {
		return 0
	}
	return innerWidth / float64(n-1)
}

// Linear projects values left-to-right across inner. The tallest value touches
// the top (y=0) and zero sits on the baseline (y=inner.Height).
//
// Degenerate input never divides by zero: one point is placed at x=0, and a
// non-positive maximum puts every point on the baseline.
func Linear(values []float64, inner geom.Size) []geom.Point {
	if len(values) == 0 {
		return nil
	}
	step := XStep(len(values), inner.Width)
	max := Max(values)

	pts := make([]geom.Point, len(values))
	for i, v := range values {
		pts[i] = geom.Point{
			X: float64(i) * step,
			Y: linearY(v, max, inner.Height),
		}
	}
	return pts
}

func linearY(v, max, innerHeight float64) float64 {
	if max <= 0 {
		return innerHeight
	}
	return innerHeight - v*(innerHeight/max)
}

// Tick is one labelled position on the value axis.
type Tick struct {
	Value float64
	Y     float64
}

// YTicks returns count+1 evenly spaced ticks from 0 to max.
func YTicks(max, innerHeight float64, count int) []Tick {
	if count <= 0 {
		return nil
	}
	ticks := make([]Tick, 0, count+1)
	for i := 0; i <= count; i++ {
		v := max / float64(count) * float64(i)
		ticks = append(ticks, Tick{Value: v, Y: linearY(v, max, innerHeight)})
	}
	return ticks
}

// GridLines returns one horizontal line across the inner width per tick.
func GridLines(ticks []Tick, innerWidth float64) []geom.Line {
	lines := make([]geom.Line, len(ticks))
	for i, t := range ticks {
		lines[i] = geom.Line{X1: 0, Y1: t.Y, X2: innerWidth, Y2: t.Y}
	}
	return lines
}
