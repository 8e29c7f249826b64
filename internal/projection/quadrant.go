package projection

import (
	"fmt"

	"github.com/zappabad/livecharts/internal/dataset"
	"github.com/zappabad/livecharts/internal/geom"
)

// QuadrantSize is the side of the square quadrant chart space.
const QuadrantSize = 100

// QuadrantCenter is the fallback position when no weight pulls the point.
var QuadrantCenter = geom.Point{X: QuadrantSize / 2, Y: QuadrantSize / 2}

// WeightedCentroid pulls the point toward four corners in proportion to each
// weight: p1 top-right, p2 top-left, p3 bottom-left, p4 bottom-right.
// y grows upward. A zero weight sum yields the center.
func WeightedCentroid(s dataset.PropertySet) geom.Point {
	sum := s.Property1 + s.Property2 + s.Property3 + s.Property4
	if sum <= 0 {
		return QuadrantCenter
	}
	return geom.Point{
		X: QuadrantSize * (s.Property1 + s.Property4) / sum,
		Y: QuadrantSize * (s.Property1 + s.Property2) / sum,
	}
}

// PairAverage is the simpler mapping: x averages p1,p2 and y averages p3,p4.
func PairAverage(s dataset.PropertySet) geom.Point {
	return geom.Point{
		X: (s.Property1 + s.Property2) / 2,
		Y: (s.Property3 + s.Property4) / 2,
	}
}

// Mapping selects how a PropertySet becomes a quadrant point.
type Mapping string

const (
	MappingWeighted Mapping = "weighted"
	MappingAverage  Mapping = "average"
)

// Func returns the projection function for m.
func (m Mapping) Func() (func(dataset.PropertySet) geom.Point, error) {
	switch m {
	case MappingWeighted, "":
		return WeightedCentroid, nil
	case MappingAverage:
		return PairAverage, nil
	}
	return nil, fmt.Errorf("unknown quadrant mapping %q", string(m))
}

// QuadrantOf numbers the quadrant containing p: 1 top-right, 2 top-left,
// 3 bottom-left, 4 bottom-right. Points on the center lines belong to the
// right/top side.
func QuadrantOf(p geom.Point) int {
	mid := float64(QuadrantSize) / 2
	switch {
	case p.X >= mid && p.Y >= mid:
		return 1
	case p.X < mid && p.Y >= mid:
		return 2
	case p.X < mid && p.Y < mid:
		return 3
	}
	return 4
}

// ToScreen flips the y axis so that y=100 is drawn at the top.
func ToScreen(p geom.Point) geom.Point {
	return geom.Point{X: p.X, Y: QuadrantSize - p.Y}
}

// QuadrantGridLines returns vertical then horizontal lines every step units,
// skipping the center line where the axes are drawn.
func QuadrantGridLines(step int) []geom.Line {
	if step <= 0 {
		return nil
	}
	var lines []geom.Line
	for i := step; i < QuadrantSize; i += step {
		if i == QuadrantSize/2 {
			continue
		}
		v := float64(i)
		lines = append(lines, geom.Line{X1: v, Y1: 0, X2: v, Y2: QuadrantSize})
	}
	for i := step; i < QuadrantSize; i += step {
		if i == QuadrantSize/2 {
			continue
		}
		v := float64(i)
		lines = append(lines, geom.Line{X1: 0, Y1: v, X2: QuadrantSize, Y2: v})
	}
	return lines
}
