package projection

import (
	"math"

	"github.com/zappabad/livecharts/internal/geom"
)

// AxisAngles returns the k spoke angles, starting at the top (-π/2) and
// proceeding clockwise in screen space.
func AxisAngles(k int) []float64 {
	if k <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(k)
	out := make([]float64, k)
	for i := range out {
		out[i] = float64(i)*step - math.Pi/2
	}
	return out
}

// RadarPoint is a projected radar vertex together with its spoke angle.
type RadarPoint struct {
	geom.Point
	Angle float64
}

// Radar projects one value per axis. Values above maxValue extend past the
// outer ring on purpose, so out-of-range input stays visible.
func Radar(values []float64, maxValue float64, center geom.Point, radius float64) []RadarPoint {
	angles := AxisAngles(len(values))
	out := make([]RadarPoint, len(values))
	for i, v := range values {
		var dist float64
		if maxValue > 0 {
			dist = v / maxValue * radius
		}
		out[i] = RadarPoint{
			Point: polar(center, dist, angles[i]),
			Angle: angles[i],
		}
	}
	return out
}

// LevelRadii returns the radii of the concentric level rings, innermost first.
func LevelRadii(radius float64, levels int) []float64 {
	if levels <= 0 {
		return nil
	}
	out := make([]float64, levels)
	for i := range out {
		out[i] = radius / float64(levels) * float64(i+1)
	}
	return out
}

// AxisSpokes returns a line from center to the outer ring for each axis.
func AxisSpokes(k int, center geom.Point, radius float64) []geom.Line {
	angles := AxisAngles(k)
	out := make([]geom.Line, len(angles))
	for i, a := range angles {
		end := polar(center, radius, a)
		out[i] = geom.Line{X1: center.X, Y1: center.Y, X2: end.X, Y2: end.Y}
	}
	return out
}

// Centroid is the mean of pts, or the zero point when pts is empty.
func Centroid(pts []geom.Point) geom.Point {
	if len(pts) == 0 {
		return geom.Point{}
	}
	var c geom.Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return geom.Point{X: c.X / n, Y: c.Y / n}
}

func polar(center geom.Point, dist, angle float64) geom.Point {
	return geom.Point{
		X: center.X + dist*math.Cos(angle),
		Y: center.Y + dist*math.Sin(angle),
	}
}
