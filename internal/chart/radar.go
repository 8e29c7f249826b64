package chart

import (
	"math/rand"

	"github.com/zappabad/livecharts/internal/dataset"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/history"
	"github.com/zappabad/livecharts/internal/label"
	"github.com/zappabad/livecharts/internal/projection"
	"github.com/zappabad/livecharts/internal/sim"
)

// RadarVertex is one projected attribute.
type RadarVertex struct {
	projection.RadarPoint
	Data dataset.DataPoint
	Text string
}

// RadarAxis is one spoke with its attribute name placed past the outer ring.
type RadarAxis struct {
	Spoke geom.Line
	Text  string
	Label label.Placement
}

// RadarGeometry is everything needed to draw the radar chart.
type RadarGeometry struct {
	Size     float64
	Center   geom.Point
	Radius   float64
	MaxValue float64
	Vertices []RadarVertex
	// Polygon is closed: the first vertex is repeated at the end.
	Polygon     []geom.Point
	Path        string
	Levels      []float64
	LevelLabels []AxisLabel
	Axes        []RadarAxis
	Centroid    geom.Point
}

// Radar is the multi-attribute radar chart.
type Radar struct {
	*sim.Controller
	state *radarState
}

type radarState struct {
	cfg  RadarConfig
	data []dataset.DataPoint
	geo  RadarGeometry
}

// NewRadar builds a radar chart and applies its initial mode.
func NewRadar(cfg RadarConfig, opts ...sim.Option) (*Radar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Sim.Name == "" {
		cfg.Sim.Name = string(KindRadar)
	}
	st := &radarState{
		cfg:  cfg,
		data: append([]dataset.DataPoint(nil), cfg.Data...),
	}
	r := &Radar{
		Controller: sim.NewController(st, cfg.Sim, opts...),
		state:      st,
	}
	r.SetMode(cfg.Mode)
	return r, nil
}

// Kind implements Chart.
func (r *Radar) Kind() Kind { return KindRadar }

// Geometry returns the latest snapshot.
func (r *Radar) Geometry() RadarGeometry {
	var g RadarGeometry
	r.Read(func([]history.Entry) { g = r.state.geo })
	return g
}

// Data returns a copy of the current attributes.
func (r *Radar) Data() []dataset.DataPoint {
	var out []dataset.DataPoint
	r.Read(func([]history.Entry) {
		out = append(out, r.state.data...)
	})
	return out
}

func (s *radarState) Regenerate(r *rand.Rand) {
	s.data = dataset.Regenerate(s.data, s.cfg.Range, r)
}

// Project tracks the polygon centroid.
func (s *radarState) Project() geom.Point {
	s.geo = projectRadar(s.cfg, s.data)
	return s.geo.Centroid
}

func projectRadar(cfg RadarConfig, data []dataset.DataPoint) RadarGeometry {
	center := cfg.Center()
	radius := cfg.Radius()
	pts := projection.Radar(dataset.Values(data), cfg.MaxValue, center, radius)

	g := RadarGeometry{
		Size:     cfg.Size,
		Center:   center,
		Radius:   radius,
		MaxValue: cfg.MaxValue,
		Vertices: make([]RadarVertex, len(pts)),
		Axes:     make([]RadarAxis, len(pts)),
		Levels:   projection.LevelRadii(radius, cfg.Levels),
	}

	spokes := projection.AxisSpokes(len(pts), center, radius)
	poly := make([]geom.Point, 0, len(pts)+1)
	for i, p := range pts {
		g.Vertices[i] = RadarVertex{
			RadarPoint: p,
			Data:       data[i],
			Text:       geom.FormatFloat(data[i].Value),
		}
		g.Axes[i] = RadarAxis{
			Spoke: spokes[i],
			Text:  data[i].Label,
			Label: label.Radial(center, radius, p.Angle),
		}
		poly = append(poly, p.Point)
	}
	g.Centroid = projection.Centroid(poly)

	if len(poly) > 0 {
		g.Path = geom.Polyline(poly).Close().String()
		g.Polygon = append(poly, poly[0])
	}

	g.LevelLabels = make([]AxisLabel, len(g.Levels))
	for i, r := range g.Levels {
		v := cfg.MaxValue / float64(cfg.Levels) * float64(i+1)
		g.LevelLabels[i] = AxisLabel{
			Point: geom.Point{X: center.X, Y: center.Y - r},
			Text:  geom.FormatFloat(v),
		}
	}
	return g
}
