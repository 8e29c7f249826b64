package projection

import (
	"math"
	"math/rand"
	"testing"

	"github.com/zappabad/livecharts/internal/dataset"
	"github.com/zappabad/livecharts/internal/geom"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestLinearMonotonic(t *testing.T) {
	values := []float64{3, 8, 15, 16, 42, 99}
	pts := Linear(values, geom.Size{Width: 610, Height: 330})
	if len(pts) != len(values) {
		t.Fatalf("expected %d points, got %d", len(values), len(pts))
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Y > pts[i-1].Y {
			t.Errorf("y increased at %d: %v > %v", i, pts[i].Y, pts[i-1].Y)
		}
		if pts[i].X <= pts[i-1].X {
			t.Errorf("x not increasing at %d", i)
		}
	}
	if !near(pts[len(pts)-1].Y, 0) {
		t.Errorf("expected max value at top, got y=%v", pts[len(pts)-1].Y)
	}
	if !near(pts[len(pts)-1].X, 610) {
		t.Errorf("expected last x at inner width, got %v", pts[len(pts)-1].X)
	}
}

func TestLinearDegenerate(t *testing.T) {
	inner := geom.Size{Width: 100, Height: 50}

	single := Linear([]float64{7}, inner)
	if len(single) != 1 || single[0].X != 0 || !near(single[0].Y, 0) {
		t.Errorf("expected single point at (0,0), got %+v", single)
	}

	zeros := Linear([]float64{0, 0, 0}, inner)
	for _, p := range zeros {
		if p.Y != 50 {
			t.Errorf("expected baseline y=50, got %v", p.Y)
		}
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
			t.Errorf("bad x %v", p.X)
		}
	}

	if pts := Linear(nil, inner); pts != nil {
		t.Errorf("expected nil for no values, got %+v", pts)
	}
}

func TestYTicks(t *testing.T) {
	ticks := YTicks(100, 330, 5)
	if len(ticks) != 6 {
		t.Fatalf("expected 6 ticks, got %d", len(ticks))
	}
	if ticks[0].Value != 0 || ticks[0].Y != 330 {
		t.Errorf("expected first tick at baseline, got %+v", ticks[0])
	}
	if ticks[5].Value != 100 || !near(ticks[5].Y, 0) {
		t.Errorf("expected last tick at top, got %+v", ticks[5])
	}

	flat := YTicks(0, 330, 5)
	for _, tk := range flat {
		if tk.Y != 330 {
			t.Errorf("expected baseline ticks for zero max, got %+v", tk)
		}
	}

	lines := GridLines(ticks, 610)
	if len(lines) != 6 || lines[2].X2 != 610 || lines[2].Y1 != ticks[2].Y {
		t.Errorf("unexpected grid lines %+v", lines)
	}
}

func TestAxisAnglesClosure(t *testing.T) {
	for _, k := range []int{3, 5, 6, 12} {
		angles := AxisAngles(k)
		if len(angles) != k {
			t.Fatalf("expected %d angles, got %d", k, len(angles))
		}
		if !near(angles[0], -math.Pi/2) {
			t.Errorf("k=%d: expected first angle -π/2, got %v", k, angles[0])
		}
		step := 2 * math.Pi / float64(k)
		for i := 1; i < k; i++ {
			if !near(angles[i]-angles[i-1], step) {
				t.Errorf("k=%d: uneven step at %d", k, i)
			}
		}
		// The step after the last axis wraps back onto the first.
		if !near(angles[k-1]+step-2*math.Pi, angles[0]) {
			t.Errorf("k=%d: angles do not close", k)
		}
	}
}

func TestRadarSixAxes(t *testing.T) {
	center := geom.Point{X: 250, Y: 250}
	pts := Radar([]float64{70, 85, 60, 90, 75, 80}, 100, center, 200)
	if len(pts) != 6 {
		t.Fatalf("expected 6 points, got %d", len(pts))
	}

	full := Radar([]float64{100, 85, 60, 90, 75, 80}, 100, center, 200)
	if !near(full[0].X, 250) || !near(full[0].Y, 50) {
		t.Errorf("expected axis 0 at (250,50), got (%v,%v)", full[0].X, full[0].Y)
	}

	// Axis 0 of the seed data sits straight above the center at 0.7*radius.
	if !near(pts[0].X, 250) || !near(pts[0].Y, 250-140) {
		t.Errorf("expected (250,110), got (%v,%v)", pts[0].X, pts[0].Y)
	}
}

func TestRadarOutOfRangeNotClamped(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}
	pts := Radar([]float64{150}, 100, center, 10)
	if !near(pts[0].Y, -15) {
		t.Errorf("expected y=-15 past outer ring, got %v", pts[0].Y)
	}

	zero := Radar([]float64{40, 50}, 0, geom.Point{X: 5, Y: 5}, 10)
	for _, p := range zero {
		if p.X != 5 || p.Y != 5 {
			t.Errorf("expected center for zero max, got %+v", p.Point)
		}
	}
}

func TestLevelsAndSpokes(t *testing.T) {
	radii := LevelRadii(200, 5)
	want := []float64{40, 80, 120, 160, 200}
	for i := range want {
		if !near(radii[i], want[i]) {
			t.Errorf("level %d: expected %v, got %v", i, want[i], radii[i])
		}
	}

	spokes := AxisSpokes(4, geom.Point{X: 10, Y: 10}, 5)
	if len(spokes) != 4 {
		t.Fatalf("expected 4 spokes, got %d", len(spokes))
	}
	if !near(spokes[0].X2, 10) || !near(spokes[0].Y2, 5) {
		t.Errorf("expected first spoke to (10,5), got (%v,%v)", spokes[0].X2, spokes[0].Y2)
	}
	if !near(spokes[1].X2, 15) || !near(spokes[1].Y2, 10) {
		t.Errorf("expected second spoke to (15,10), got (%v,%v)", spokes[1].X2, spokes[1].Y2)
	}
}

func TestWeightedCentroidCorners(t *testing.T) {
	cases := []struct {
		set  dataset.PropertySet
		want geom.Point
	}{
		{dataset.PropertySet{Property1: 100}, geom.Point{X: 100, Y: 100}},
		{dataset.PropertySet{Property2: 100}, geom.Point{X: 0, Y: 100}},
		{dataset.PropertySet{Property3: 100}, geom.Point{X: 0, Y: 0}},
		{dataset.PropertySet{Property4: 100}, geom.Point{X: 100, Y: 0}},
		{dataset.PropertySet{}, geom.Point{X: 50, Y: 50}},
		{dataset.PropertySet{Property1: 50, Property2: 50, Property3: 50, Property4: 50}, geom.Point{X: 50, Y: 50}},
	}
	for _, c := range cases {
		got := WeightedCentroid(c.set)
		if !near(got.X, c.want.X) || !near(got.Y, c.want.Y) {
			t.Errorf("%+v: expected %+v, got %+v", c.set, c.want, got)
		}
	}
}

func TestWeightedCentroidBounds(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		s := dataset.RandomPropertySet(r)
		p := WeightedCentroid(s)
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
			t.Fatalf("%+v projected outside square: %+v", s, p)
		}
	}
}

func TestPairAverage(t *testing.T) {
	p := PairAverage(dataset.PropertySet{Property1: 90, Property2: 45, Property3: 60, Property4: 30})
	if p.X != 67.5 || p.Y != 45 {
		t.Errorf("expected (67.5,45), got %+v", p)
	}
}

func TestMappingFunc(t *testing.T) {
	f, err := MappingAverage.Func()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := f(dataset.PropertySet{Property1: 100}); p.X != 50 {
		t.Errorf("expected average mapping, got %+v", p)
	}
	if _, err := Mapping("spiral").Func(); err == nil {
		t.Error("expected error for unknown mapping")
	}
}

func TestQuadrantOf(t *testing.T) {
	cases := map[geom.Point]int{
		{X: 75, Y: 75}: 1,
		{X: 25, Y: 75}: 2,
		{X: 25, Y: 25}: 3,
		{X: 75, Y: 25}: 4,
		{X: 50, Y: 50}: 1,
	}
	for p, want := range cases {
		if got := QuadrantOf(p); got != want {
			t.Errorf("%+v: expected quadrant %d, got %d", p, want, got)
		}
	}
}

func TestQuadrantGridLines(t *testing.T) {
	lines := QuadrantGridLines(10)
	// 9 interior lines per direction minus the center line.
	if len(lines) != 16 {
		t.Fatalf("expected 16 grid lines, got %d", len(lines))
	}
	for _, l := range lines {
		if l.X1 == 50 && l.X2 == 50 || l.Y1 == 50 && l.Y2 == 50 {
			t.Errorf("center line should be skipped: %+v", l)
		}
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	if c.X != 5 || c.Y != 5 {
		t.Errorf("expected (5,5), got %+v", c)
	}
}
