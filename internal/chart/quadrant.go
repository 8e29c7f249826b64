package chart

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/zappabad/livecharts/internal/dataset"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/history"
	"github.com/zappabad/livecharts/internal/label"
	"github.com/zappabad/livecharts/internal/projection"
	"github.com/zappabad/livecharts/internal/sim"
)

// TrailMark is a history entry styled for drawing. Older marks are smaller
// and fainter.
type TrailMark struct {
	history.Entry
	Screen  geom.Point
	Radius  float64
	Opacity float64
}

// QuadrantGeometry is everything needed to draw the quadrant chart. Point is
// in chart space (y up); Screen and the label are in screen space (y down).
type QuadrantGeometry struct {
	Properties dataset.PropertySet
	Mapping    projection.Mapping
	Point      geom.Point
	Screen     geom.Point
	Quadrant   int
	GridLines  []geom.Line
	Text       string
	Label      label.Placement
	Trail      []TrailMark
}

// QuadrantTitles are the fixed quadrant captions in screen space.
var QuadrantTitles = []AxisLabel{
	{Point: geom.Point{X: 75, Y: 15}, Text: "Quadrant 1"},
	{Point: geom.Point{X: 25, Y: 15}, Text: "Quadrant 2"},
	{Point: geom.Point{X: 25, Y: 85}, Text: "Quadrant 3"},
	{Point: geom.Point{X: 75, Y: 85}, Text: "Quadrant 4"},
}

// Quadrant places a single point from four weights.
type Quadrant struct {
	*sim.Controller
	state *quadrantState
}

type quadrantState struct {
	cfg     QuadrantConfig
	project func(dataset.PropertySet) geom.Point
	props   dataset.PropertySet
	geo     QuadrantGeometry
}

// NewQuadrant builds a quadrant chart and applies its initial mode.
func NewQuadrant(cfg QuadrantConfig, opts ...sim.Option) (*Quadrant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fn, err := cfg.Mapping.Func()
	if err != nil {
		return nil, err
	}
	if cfg.Mapping == "" {
		cfg.Mapping = projection.MappingWeighted
	}
	if cfg.Sim.Name == "" {
		cfg.Sim.Name = string(KindQuadrant)
	}
	if cfg.Label.CharWidth <= 0 {
		cfg.Label = QuadrantPlacer()
	}
	st := &quadrantState{
		cfg:     cfg,
		project: fn,
		props:   cfg.Properties,
	}
	q := &Quadrant{
		Controller: sim.NewController(st, cfg.Sim, opts...),
		state:      st,
	}
	q.SetMode(cfg.Mode)
	return q, nil
}

// Kind implements Chart.
func (q *Quadrant) Kind() Kind { return KindQuadrant }

// Mapping returns the configured projection variant.
func (q *Quadrant) Mapping() projection.Mapping { return q.state.cfg.Mapping }

// Geometry returns the latest snapshot, including the styled trail.
func (q *Quadrant) Geometry() QuadrantGeometry {
	var g QuadrantGeometry
	q.Read(func(trail []history.Entry) {
		g = q.state.geo
		g.Trail = trailMarks(trail)
	})
	return g
}

// Properties returns the current weights.
func (q *Quadrant) Properties() dataset.PropertySet {
	var s dataset.PropertySet
	q.Read(func([]history.Entry) { s = q.state.props })
	return s
}

// UpdateProperty sets one weight. Values outside [0,100], NaN and unknown keys
// are rejected and the prior state kept; accepted values are rounded to two
// decimals and re-projected immediately.
func (q *Quadrant) UpdateProperty(key dataset.Property, value float64) bool {
	if key < dataset.Property1 || key > dataset.Property4 || !dataset.InRange(value) {
		return false
	}
	v := dataset.Round2(value)
	return q.Apply(func() bool {
		q.state.props = q.state.props.With(key, v)
		return true
	})
}

// UpdatePropertyText parses text as a number and applies it. Non-numeric
// input is rejected like an out-of-range value.
func (q *Quadrant) UpdatePropertyText(key dataset.Property, text string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return false
	}
	return q.UpdateProperty(key, v)
}

func (s *quadrantState) Regenerate(r *rand.Rand) {
	s.props = dataset.RandomPropertySet(r)
}

func (s *quadrantState) Project() geom.Point {
	p := s.project(s.props)
	screen := projection.ToScreen(p)
	text := CoordText(p)
	inner := geom.Size{Width: projection.QuadrantSize, Height: projection.QuadrantSize}

	s.geo = QuadrantGeometry{
		Properties: s.props,
		Mapping:    s.cfg.Mapping,
		Point:      p,
		Screen:     screen,
		Quadrant:   projection.QuadrantOf(p),
		GridLines:  projection.QuadrantGridLines(s.cfg.GridStep),
		Text:       text,
		Label:      s.cfg.Label.Place(screen, inner, text),
	}
	return p
}

// CoordText formats p as "(x.x, y.y)".
func CoordText(p geom.Point) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

func trailMarks(trail []history.Entry) []TrailMark {
	if len(trail) == 0 {
		return nil
	}
	out := make([]TrailMark, len(trail))
	for i, e := range trail {
		out[i] = TrailMark{
			Entry:   e,
			Screen:  projection.ToScreen(e.Point),
			Radius:  1.5 + 0.3*float64(i),
			Opacity: 0.2 + 0.15*float64(i),
		}
	}
	return out
}
