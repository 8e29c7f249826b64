package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// DataPoint is one named measurement on the area and radar charts.
type DataPoint struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// Values extracts the numeric values of pts in order.
func Values(pts []DataPoint) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Value
	}
	return out
}

// Property names one of the four quadrant weights.
type Property uint8

const (
	Property1 Property = iota + 1
	Property2
	Property3
	Property4
)

// Properties lists every property in field order.
var Properties = []Property{Property1, Property2, Property3, Property4}

func (p Property) String() string {
	switch p {
	case Property1:
		return "property1"
	case Property2:
		return "property2"
	case Property3:
		return "property3"
	case Property4:
		return "property4"
	default:
		return "unknown"
	}
}

// ParseProperty accepts "property1".."property4" or "1".."4".
func ParseProperty(s string) (Property, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Properties {
		if s == p.String() || s == strconv.Itoa(int(p)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown property %q", s)
}

const (
	PropertyMin = 0
	PropertyMax = 100
)

// PropertySet holds four independent weights, each in [0,100].
type PropertySet struct {
	Property1 float64 `yaml:"property1"`
	Property2 float64 `yaml:"property2"`
	Property3 float64 `yaml:"property3"`
	Property4 float64 `yaml:"property4"`
}

// Get returns the value for key; unknown keys return 0.
func (s PropertySet) Get(key Property) float64 {
	switch key {
	case Property1:
		return s.Property1
	case Property2:
		return s.Property2
	case Property3:
		return s.Property3
	case Property4:
		return s.Property4
	}
	return 0
}

// With returns a copy of s with key set to v. Unknown keys leave s unchanged.
func (s PropertySet) With(key Property, v float64) PropertySet {
	switch key {
	case Property1:
		s.Property1 = v
	case Property2:
		s.Property2 = v
	case Property3:
		s.Property3 = v
	case Property4:
		s.Property4 = v
	}
	return s
}

// Valid reports whether every property lies in [0,100].
func (s PropertySet) Valid() bool {
	for _, p := range Properties {
		if !InRange(s.Get(p)) {
			return false
		}
	}
	return true
}

// InRange reports whether v is a usable property value.
func InRange(v float64) bool {
	return !math.IsNaN(v) && v >= PropertyMin && v <= PropertyMax
}

// Round2 rounds v to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RandomPropertySet draws each property uniformly from [0,100).
func RandomPropertySet(r *rand.Rand) PropertySet {
	return PropertySet{
		Property1: r.Float64() * PropertyMax,
		Property2: r.Float64() * PropertyMax,
		Property3: r.Float64() * PropertyMax,
		Property4: r.Float64() * PropertyMax,
	}
}

// Range describes integer-valued random draws: floor(rand*Span)+Min.
type Range struct {
	Min  int `yaml:"min"`
	Span int `yaml:"span"`
}

// Draw returns one value from the range.
func (g Range) Draw(r *rand.Rand) float64 {
	if g.Span <= 0 {
		return float64(g.Min)
	}
	return float64(r.Intn(g.Span) + g.Min)
}

// Regenerate returns a fresh slice keeping the labels of pts and drawing new values.
func Regenerate(pts []DataPoint, g Range, r *rand.Rand) []DataPoint {
	out := make([]DataPoint, len(pts))
	for i, p := range pts {
		out[i] = DataPoint{Label: p.Label, Value: g.Draw(r)}
	}
	return out
}
