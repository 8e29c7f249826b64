package chart

import (
	"time"

	"github.com/zappabad/livecharts/internal/dataset"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/label"
	"github.com/zappabad/livecharts/internal/projection"
	"github.com/zappabad/livecharts/internal/sim"
)

// AreaConfig holds configuration for the area chart.
type AreaConfig struct {
	Sim      sim.Config    `yaml:",inline"`
	Mode     sim.Mode      `yaml:"mode"`
	Viewport geom.Viewport `yaml:"viewport"`
	// Ticks is the number of intervals on the value axis.
	Ticks  int                 `yaml:"ticks"`
	Range  dataset.Range       `yaml:"range"`
	Data   []dataset.DataPoint `yaml:"data"`
	XTitle string              `yaml:"x_title"`
	YTitle string              `yaml:"y_title"`
	Label  label.Placer        `yaml:"label"`
}

// DefaultAreaConfig returns the monthly sales chart.
func DefaultAreaConfig() AreaConfig {
	sc := sim.DefaultConfig()
	sc.Name = string(KindArea)
	return AreaConfig{
		Sim:  sc,
		Mode: sim.ModeManual,
		Viewport: geom.Viewport{
			Width:  700,
			Height: 400,
			Margin: geom.Margin{Top: 20, Right: 30, Bottom: 50, Left: 60},
		},
		Ticks: 5,
		Range: dataset.Range{Min: 20, Span: 100},
		Data: []dataset.DataPoint{
			{Label: "Jan", Value: 30},
			{Label: "Feb", Value: 50},
			{Label: "Mar", Value: 45},
			{Label: "Apr", Value: 70},
			{Label: "May", Value: 65},
			{Label: "Jun", Value: 90},
			{Label: "Jul", Value: 85},
			{Label: "Aug", Value: 100},
			{Label: "Sep", Value: 75},
			{Label: "Oct", Value: 80},
			{Label: "Nov", Value: 60},
			{Label: "Dec", Value: 70},
		},
		XTitle: "Month",
		YTitle: "Sales ($K)",
		Label:  label.DefaultPlacer(),
	}
}

// Validate reports the first unusable field.
func (c AreaConfig) Validate() error {
	if err := c.Sim.Validate(); err != nil {
		return err
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return invalid("area viewport %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Ticks < 0 {
		return invalid("area ticks %d", c.Ticks)
	}
	if c.Range.Span < 0 {
		return invalid("area range span %d", c.Range.Span)
	}
	return nil
}

// RadarConfig holds configuration for the radar chart.
type RadarConfig struct {
	Sim  sim.Config `yaml:",inline"`
	Mode sim.Mode   `yaml:"mode"`
	// Size is the side of the square drawing surface.
	Size float64 `yaml:"size"`
	// RadiusFactor scales Size to the outer ring radius.
	RadiusFactor float64             `yaml:"radius_factor"`
	Levels       int                 `yaml:"levels"`
	MaxValue     float64             `yaml:"max_value"`
	Range        dataset.Range       `yaml:"range"`
	Data         []dataset.DataPoint `yaml:"data"`
}

// DefaultRadarConfig returns the six-attribute radar chart.
func DefaultRadarConfig() RadarConfig {
	sc := sim.DefaultConfig()
	sc.Name = string(KindRadar)
	return RadarConfig{
		Sim:          sc,
		Mode:         sim.ModeManual,
		Size:         500,
		RadiusFactor: 0.4,
		Levels:       5,
		MaxValue:     100,
		Range:        dataset.Range{Min: 20, Span: 80},
		Data: []dataset.DataPoint{
			{Label: "Speed", Value: 70},
			{Label: "Power", Value: 85},
			{Label: "Range", Value: 60},
			{Label: "Durability", Value: 90},
			{Label: "Accuracy", Value: 75},
			{Label: "Handling", Value: 80},
		},
	}
}

// Center returns the middle of the drawing surface.
func (c RadarConfig) Center() geom.Point {
	return geom.Point{X: c.Size / 2, Y: c.Size / 2}
}

// Radius returns the outer ring radius.
func (c RadarConfig) Radius() float64 {
	return c.Size * c.RadiusFactor
}

// Validate reports the first unusable field.
func (c RadarConfig) Validate() error {
	if err := c.Sim.Validate(); err != nil {
		return err
	}
	if c.Size <= 0 {
		return invalid("radar size %v", c.Size)
	}
	if c.RadiusFactor <= 0 {
		return invalid("radar radius factor %v", c.RadiusFactor)
	}
	if c.Levels < 0 {
		return invalid("radar levels %d", c.Levels)
	}
	if c.Range.Span < 0 {
		return invalid("radar range span %d", c.Range.Span)
	}
	return nil
}

// QuadrantConfig holds configuration for the quadrant chart.
type QuadrantConfig struct {
	Sim        sim.Config          `yaml:",inline"`
	Mode       sim.Mode            `yaml:"mode"`
	Mapping    projection.Mapping  `yaml:"mapping"`
	GridStep   int                 `yaml:"grid_step"`
	Properties dataset.PropertySet `yaml:"properties"`
	Label      label.Placer        `yaml:"label"`
}

// QuadrantPlacer is the label placer scaled to the 0-100 chart space.
func QuadrantPlacer() label.Placer {
	return label.Placer{
		CharWidth:  2,
		TextHeight: 4,
		Padding:    1,
		Offset:     5,
		Drop:       8,
	}
}

// DefaultQuadrantConfig returns the weighted quadrant chart. It starts in
// Auto with every property at 50.
func DefaultQuadrantConfig() QuadrantConfig {
	sc := sim.DefaultConfig()
	sc.Name = string(KindQuadrant)
	return QuadrantConfig{
		Sim:      sc,
		Mode:     sim.ModeAuto,
		Mapping:  projection.MappingWeighted,
		GridStep: 10,
		Properties: dataset.PropertySet{
			Property1: 50,
			Property2: 50,
			Property3: 50,
			Property4: 50,
		},
		Label: QuadrantPlacer(),
	}
}

// AverageQuadrantConfig returns the simple pair-average variant, which
// refreshes every 3 seconds.
func AverageQuadrantConfig() QuadrantConfig {
	cfg := DefaultQuadrantConfig()
	cfg.Sim.Interval = 3 * time.Second
	cfg.Mapping = projection.MappingAverage
	cfg.Properties = dataset.PropertySet{
		Property1: 90,
		Property2: 45,
		Property3: 60,
		Property4: 30,
	}
	return cfg
}

// Validate reports the first unusable field.
func (c QuadrantConfig) Validate() error {
	if err := c.Sim.Validate(); err != nil {
		return err
	}
	if _, err := c.Mapping.Func(); err != nil {
		return invalid("%v", err)
	}
	if c.GridStep < 0 || c.GridStep >= projection.QuadrantSize {
		return invalid("quadrant grid step %d", c.GridStep)
	}
	if !c.Properties.Valid() {
		return invalid("quadrant properties %+v out of range", c.Properties)
	}
	return nil
}
