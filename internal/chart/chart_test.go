package chart

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/zappabad/livecharts/internal/dataset"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/label"
	"github.com/zappabad/livecharts/internal/projection"
	"github.com/zappabad/livecharts/internal/sim"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testOpts() []sim.Option {
	return []sim.Option{
		sim.WithClock(clockwork.NewFakeClock()),
		sim.WithLogger(log.New(io.Discard)),
	}
}

func TestAreaDefaultGeometry(t *testing.T) {
	a, err := NewArea(DefaultAreaConfig(), testOpts()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	g := a.Geometry()
	if g.Inner.Width != 610 || g.Inner.Height != 330 {
		t.Fatalf("expected inner 610x330, got %vx%v", g.Inner.Width, g.Inner.Height)
	}
	if g.Origin.X != 60 || g.Origin.Y != 20 {
		t.Errorf("expected origin (60,20), got %+v", g.Origin)
	}
	if len(g.Points) != 12 {
		t.Fatalf("expected 12 points, got %d", len(g.Points))
	}

	first, last := g.Points[0], g.Points[11]
	if first.X != 0 || !near(last.X, 610) {
		t.Errorf("expected x from 0 to 610, got %v..%v", first.X, last.X)
	}
	// Aug holds the maximum and touches the top.
	if aug := g.Points[7]; !near(aug.Y, 0) || aug.Data.Label != "Aug" {
		t.Errorf("expected Aug at y=0, got %+v", aug)
	}
	// Too close to the top edge: dropped below the point.
	if lbl := g.Points[7].Label; !near(lbl.Y, 15) || lbl.Anchor != label.AnchorStart {
		t.Errorf("unexpected Aug label %+v", lbl)
	}
	// Right-most label flips to end anchor.
	if lbl := last.Label; lbl.Anchor != label.AnchorEnd || !near(lbl.X, 605) {
		t.Errorf("unexpected Dec label %+v", lbl)
	}

	if !strings.HasPrefix(g.LinePath, "M 0,") {
		t.Errorf("unexpected line path %q", g.LinePath)
	}
	if !strings.HasPrefix(g.AreaPath, g.LinePath) || !strings.HasSuffix(g.AreaPath, " L 610,330 L 0,330 Z") {
		t.Errorf("unexpected area path %q", g.AreaPath)
	}

	if len(g.YTicks) != 6 || len(g.GridLines) != 6 {
		t.Fatalf("expected 6 ticks and grid lines, got %d and %d", len(g.YTicks), len(g.GridLines))
	}
	if g.YLabels[5].Text != "100" || g.YLabels[0].Text != "0" {
		t.Errorf("unexpected y labels %q..%q", g.YLabels[0].Text, g.YLabels[5].Text)
	}
	if x := g.XLabels[0]; x.Text != "Jan" || x.Y != 350 {
		t.Errorf("unexpected first x label %+v", x)
	}
}

func TestAreaRandomizeKeepsLabels(t *testing.T) {
	cfg := DefaultAreaConfig()
	cfg.Sim.Seed = 42
	a, err := NewArea(cfg, testOpts()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	a.Randomize()
	g := a.Geometry()
	h := a.History()
	if len(h) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(h))
	}
	if !near(h[0].X, g.Points[11].X) || !near(h[0].Y, g.Points[11].Y) {
		t.Errorf("expected history to track right-most point %+v, got %+v", g.Points[11].Point, h[0].Point)
	}

	for i := 0; i < 20; i++ {
		a.Randomize()
	}
	data := a.Data()
	for i, p := range data {
		if p.Label != cfg.Data[i].Label {
			t.Errorf("label %d changed: %s -> %s", i, cfg.Data[i].Label, p.Label)
		}
		if p.Value < 20 || p.Value > 119 || p.Value != math.Floor(p.Value) {
			t.Errorf("value %v outside integer range [20,119]", p.Value)
		}
	}
}

func TestAreaEmptyData(t *testing.T) {
	cfg := DefaultAreaConfig()
	cfg.Data = nil
	a, err := NewArea(cfg, testOpts()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	g := a.Geometry()
	if len(g.Points) != 0 || g.LinePath != "" || g.AreaPath != "" {
		t.Errorf("expected empty geometry, got %+v", g)
	}
}

func TestRadarSixAxisExample(t *testing.T) {
	cfg := DefaultRadarConfig()
	cfg.Data[0].Value = 100
	r, err := NewRadar(cfg, testOpts()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r.Close()

	g := r.Geometry()
	if g.Center.X != 250 || g.Center.Y != 250 || g.Radius != 200 {
		t.Fatalf("unexpected frame center=%+v radius=%v", g.Center, g.Radius)
	}
	top := g.Vertices[0]
	if !near(top.X, 250) || !near(top.Y, 50) {
		t.Errorf("expected first vertex at (250,50), got (%v,%v)", top.X, top.Y)
	}
	if g.Axes[0].Label.Anchor != label.AnchorMiddle || g.Axes[0].Text != "Speed" {
		t.Errorf("unexpected top axis %+v", g.Axes[0])
	}
	if g.Axes[1].Label.Anchor != label.AnchorStart || g.Axes[4].Label.Anchor != label.AnchorEnd {
		t.Errorf("unexpected anchors %s and %s", g.Axes[1].Label.Anchor, g.Axes[4].Label.Anchor)
	}

	if len(g.Polygon) != 7 || g.Polygon[0] != g.Polygon[6] {
		t.Errorf("expected closed 7-point polygon, got %d points", len(g.Polygon))
	}
	if !strings.HasPrefix(g.Path, "M ") || !strings.HasSuffix(g.Path, " Z") {
		t.Errorf("unexpected path %q", g.Path)
	}
	if len(g.Levels) != 5 || g.Levels[4] != 200 {
		t.Errorf("unexpected levels %v", g.Levels)
	}
	if ll := g.LevelLabels[0]; ll.Text != "20" || ll.Y != 210 {
		t.Errorf("unexpected first level label %+v", ll)
	}
}

func TestRadarHistoryTracksCentroid(t *testing.T) {
	cfg := DefaultRadarConfig()
	cfg.Sim.Seed = 7
	r, err := NewRadar(cfg, testOpts()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r.Close()

	r.Randomize()
	g := r.Geometry()
	for _, d := range r.Data() {
		if d.Value < 20 || d.Value > 99 {
			t.Errorf("value %v outside [20,99]", d.Value)
		}
	}
	h := r.History()
	if len(h) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(h))
	}
	if !near(h[0].X, g.Centroid.X) || !near(h[0].Y, g.Centroid.Y) {
		t.Errorf("expected centroid %+v, got %+v", g.Centroid, h[0].Point)
	}
}

func TestRadarZeroMaxValue(t *testing.T) {
	cfg := DefaultRadarConfig()
	cfg.MaxValue = 0
	r, err := NewRadar(cfg, testOpts()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r.Close()

	for _, v := range r.Geometry().Vertices {
		if v.Point != (geom.Point{X: 250, Y: 250}) {
			t.Errorf("expected vertex at center, got %+v", v.Point)
		}
	}
}

func manualQuadrant(t *testing.T, cfg QuadrantConfig) *Quadrant {
	t.Helper()
	cfg.Mode = sim.ModeManual
	q, err := NewQuadrant(cfg, testOpts()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return q
}

func TestQuadrantCornerExample(t *testing.T) {
	cfg := DefaultQuadrantConfig()
	cfg.Properties = dataset.PropertySet{Property1: 100}
	q := manualQuadrant(t, cfg)
	defer q.Close()

	g := q.Geometry()
	if g.Point != (geom.Point{X: 100, Y: 100}) {
		t.Fatalf("expected (100,100), got %+v", g.Point)
	}
	if g.Screen != (geom.Point{X: 100, Y: 0}) {
		t.Errorf("expected screen (100,0), got %+v", g.Screen)
	}
	if g.Quadrant != 1 {
		t.Errorf("expected quadrant 1, got %d", g.Quadrant)
	}
	if g.Text != "(100.0, 100.0)" {
		t.Errorf("unexpected text %q", g.Text)
	}
	if g.Label.Anchor != label.AnchorEnd || g.Label.X != 95 || g.Label.Y != 8 {
		t.Errorf("unexpected label %+v", g.Label)
	}
	if len(g.GridLines) != 16 {
		t.Errorf("expected 16 grid lines, got %d", len(g.GridLines))
	}
}

func TestQuadrantAverageVariant(t *testing.T) {
	q := manualQuadrant(t, AverageQuadrantConfig())
	defer q.Close()

	if q.Interval() != 3*time.Second {
		t.Errorf("expected 3s interval, got %s", q.Interval())
	}
	g := q.Geometry()
	if g.Point != (geom.Point{X: 67.5, Y: 45}) {
		t.Errorf("expected (67.5,45), got %+v", g.Point)
	}
	if g.Quadrant != 4 || g.Mapping != projection.MappingAverage {
		t.Errorf("unexpected quadrant %d mapping %s", g.Quadrant, g.Mapping)
	}
}

func TestQuadrantUpdateProperty(t *testing.T) {
	q := manualQuadrant(t, DefaultQuadrantConfig())
	defer q.Close()

	before := q.Properties()
	rejected := []float64{-0.01, 100.01, math.NaN(), math.Inf(1)}
	for _, v := range rejected {
		if q.UpdateProperty(dataset.Property1, v) {
			t.Errorf("expected %v to be rejected", v)
		}
	}
	if q.UpdateProperty(dataset.Property(9), 10) {
		t.Error("expected unknown property to be rejected")
	}
	if q.UpdatePropertyText(dataset.Property2, "abc") {
		t.Error("expected non-numeric text to be rejected")
	}
	if q.Properties() != before {
		t.Errorf("rejected edits changed state: %+v", q.Properties())
	}
	if q.Seq() != 0 {
		t.Errorf("rejected edits ran %d passes", q.Seq())
	}

	if !q.UpdateProperty(dataset.Property1, 33.336) {
		t.Fatal("expected 33.336 to be accepted")
	}
	if got := q.Properties().Property1; got != 33.34 {
		t.Errorf("expected rounding to 33.34, got %v", got)
	}
	if !q.UpdatePropertyText(dataset.Property3, " 0 ") {
		t.Fatal("expected text 0 to be accepted")
	}

	// Re-projected immediately: weights 33.34,50,0,50.
	g := q.Geometry()
	sum := 33.34 + 50 + 0 + 50
	if !near(g.Point.X, 100*(33.34+50)/sum) || !near(g.Point.Y, 100*(33.34+50)/sum) {
		t.Errorf("unexpected point after edits %+v", g.Point)
	}
}

func TestQuadrantTrailStyling(t *testing.T) {
	q := manualQuadrant(t, DefaultQuadrantConfig())
	defer q.Close()

	for _, v := range []float64{0, 20, 40, 60, 80, 100} {
		q.UpdateProperty(dataset.Property1, v)
	}
	trail := q.Geometry().Trail
	if len(trail) != 5 {
		t.Fatalf("expected 5 trail marks, got %d", len(trail))
	}
	for i, m := range trail {
		if !near(m.Radius, 1.5+0.3*float64(i)) || !near(m.Opacity, 0.2+0.15*float64(i)) {
			t.Errorf("mark %d: radius %v opacity %v", i, m.Radius, m.Opacity)
		}
		if m.Screen.Y != 100-m.Y {
			t.Errorf("mark %d: screen y %v for y %v", i, m.Screen.Y, m.Y)
		}
	}

	q.ClearHistory()
	if q.Geometry().Trail != nil {
		t.Error("expected empty trail after clear")
	}
}

func TestQuadrantStartsInAuto(t *testing.T) {
	fc := clockwork.NewFakeClock()
	q, err := NewQuadrant(DefaultQuadrantConfig(),
		sim.WithClock(fc),
		sim.WithLogger(log.New(io.Discard)),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer q.Close()

	if q.Mode() != sim.ModeAuto || q.Running() != 1 {
		t.Fatalf("expected auto with one timer, got %s/%d", q.Mode(), q.Running())
	}
	if q.Seq() != 1 {
		t.Errorf("expected one immediate pass, got %d", q.Seq())
	}
	for _, p := range dataset.Properties {
		if v := q.Properties().Get(p); !dataset.InRange(v) {
			t.Errorf("%s out of range: %v", p, v)
		}
	}
}

func TestConfigValidation(t *testing.T) {
	qc := DefaultQuadrantConfig()
	qc.Mapping = "spiral"
	if _, err := NewQuadrant(qc); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown mapping, got %v", err)
	}

	ac := DefaultAreaConfig()
	ac.Viewport.Width = 0
	if _, err := NewArea(ac); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for empty viewport, got %v", err)
	}

	rc := DefaultRadarConfig()
	rc.Size = -1
	if _, err := NewRadar(rc); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for negative size, got %v", err)
	}

	rc = DefaultRadarConfig()
	rc.Sim.Threshold = -1
	if _, err := NewRadar(rc); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for negative threshold, got %v", err)
	}

	if k, err := ParseKind("Radar"); err != nil || k != KindRadar {
		t.Errorf("expected radar, got %q (%v)", k, err)
	}
}

func TestAdaptersImplementChart(t *testing.T) {
	a, _ := NewArea(DefaultAreaConfig(), testOpts()...)
	r, _ := NewRadar(DefaultRadarConfig(), testOpts()...)
	q := manualQuadrant(t, DefaultQuadrantConfig())

	charts := []Chart{q, a, r}
	for i, c := range charts {
		if c.Kind() != Kinds[i] {
			t.Errorf("expected kind %s, got %s", Kinds[i], c.Kind())
		}
		if c.Name() != string(Kinds[i]) {
			t.Errorf("expected name %s, got %s", Kinds[i], c.Name())
		}
		c.Close()
		c.Close()
	}
}
