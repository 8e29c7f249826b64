package chart

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/zappabad/livecharts/internal/dataset"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/history"
	"github.com/zappabad/livecharts/internal/label"
	"github.com/zappabad/livecharts/internal/projection"
	"github.com/zappabad/livecharts/internal/sim"
)

// xLabelGap is the distance below the baseline of the category labels.
const xLabelGap = 20

// AreaPoint is one projected sample with its value label.
type AreaPoint struct {
	geom.Point
	Data  dataset.DataPoint
	Text  string
	Label label.Placement
}

// AxisLabel is a piece of axis text at a fixed position.
type AxisLabel struct {
	geom.Point
	Text string
}

// AreaGeometry is everything needed to draw the area chart. Coordinates are
// relative to the inner area; translate by Origin for viewport coordinates.
type AreaGeometry struct {
	Viewport  geom.Viewport
	Inner     geom.Size
	Origin    geom.Point
	Max       float64
	Points    []AreaPoint
	LinePath  string
	AreaPath  string
	GridLines []geom.Line
	YTicks    []projection.Tick
	YLabels   []AxisLabel
	XLabels   []AxisLabel
	XTitle    string
	YTitle    string
}

// Area is the monthly line/area chart.
type Area struct {
	*sim.Controller
	state *areaState
}

type areaState struct {
	cfg  AreaConfig
	data []dataset.DataPoint
	geo  AreaGeometry
}

// NewArea builds an area chart and applies its initial mode.
func NewArea(cfg AreaConfig, opts ...sim.Option) (*Area, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Sim.Name == "" {
		cfg.Sim.Name = string(KindArea)
	}
	if cfg.Label.CharWidth <= 0 {
		cfg.Label = label.DefaultPlacer()
	}
	st := &areaState{
		cfg:  cfg,
		data: append([]dataset.DataPoint(nil), cfg.Data...),
	}
	a := &Area{
		Controller: sim.NewController(st, cfg.Sim, opts...),
		state:      st,
	}
	a.SetMode(cfg.Mode)
	return a, nil
}

// Kind implements Chart.
func (a *Area) Kind() Kind { return KindArea }

// Geometry returns the latest snapshot.
func (a *Area) Geometry() AreaGeometry {
	var g AreaGeometry
	a.Read(func([]history.Entry) { g = a.state.geo })
	return g
}

// Data returns a copy of the current samples.
func (a *Area) Data() []dataset.DataPoint {
	var out []dataset.DataPoint
	a.Read(func([]history.Entry) {
		out = append(out, a.state.data...)
	})
	return out
}

func (s *areaState) Regenerate(r *rand.Rand) {
	s.data = dataset.Regenerate(s.data, s.cfg.Range, r)
}

// Project tracks the right-most point.
func (s *areaState) Project() geom.Point {
	s.geo = projectArea(s.cfg, s.data)
	if n := len(s.geo.Points); n > 0 {
		return s.geo.Points[n-1].Point
	}
	return geom.Point{}
}

func projectArea(cfg AreaConfig, data []dataset.DataPoint) AreaGeometry {
	inner := cfg.Viewport.Inner()
	values := dataset.Values(data)
	max := projection.Max(values)
	pts := projection.Linear(values, inner)

	g := AreaGeometry{
		Viewport: cfg.Viewport,
		Inner:    inner,
		Origin:   cfg.Viewport.Origin(),
		Max:      max,
		Points:   make([]AreaPoint, len(pts)),
		XLabels:  make([]AxisLabel, len(pts)),
		XTitle:   cfg.XTitle,
		YTitle:   cfg.YTitle,
	}
	for i, p := range pts {
		text := geom.FormatFloat(data[i].Value)
		g.Points[i] = AreaPoint{
			Point: p,
			Data:  data[i],
			Text:  text,
			Label: cfg.Label.Place(p, inner, text),
		}
		g.XLabels[i] = AxisLabel{
			Point: geom.Point{X: p.X, Y: inner.Height + xLabelGap},
			Text:  data[i].Label,
		}
	}

	if len(pts) > 0 {
		line := geom.Polyline(pts)
		g.LinePath = line.String()
		g.AreaPath = line.
			LineTo(geom.Point{X: inner.Width, Y: inner.Height}).
			LineTo(geom.Point{X: 0, Y: inner.Height}).
			Close().
			String()
	}

	g.YTicks = projection.YTicks(max, inner.Height, cfg.Ticks)
	g.GridLines = projection.GridLines(g.YTicks, inner.Width)
	g.YLabels = make([]AxisLabel, len(g.YTicks))
	for i, t := range g.YTicks {
		g.YLabels[i] = AxisLabel{
			Point: geom.Point{X: -10, Y: t.Y},
			Text:  strconv.Itoa(int(math.Round(t.Value))),
		}
	}
	return g
}
