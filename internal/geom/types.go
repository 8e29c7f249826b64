package geom

// Point is a 2-D coordinate in whatever space the producing projection uses
// (pixels for area/radar, 0-100 chart units for the quadrant).
type Point struct {
	X float64
	Y float64
}

// Line is a straight segment, used for grid lines and axis spokes.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Margin is the space reserved around the inner drawable area.
type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Viewport is the full drawing surface plus its margins.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin Margin  `yaml:"margin"`
}

// Inner returns the drawable area after subtracting margins.
// Negative results are clamped to zero.
func (v Viewport) Inner() Size {
	w := v.Width - v.Margin.Left - v.Margin.Right
	h := v.Height - v.Margin.Top - v.Margin.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Size{Width: w, Height: h}
}

// Origin returns the translation from inner coordinates to viewport coordinates.
func (v Viewport) Origin() Point {
	return Point{X: v.Margin.Left, Y: v.Margin.Top}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}
