package geom

import (
	"strconv"
	"strings"
)

// Path accumulates svg-style path commands ("M x,y L x,y ... Z").
type Path struct {
	b     strings.Builder
	empty bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{empty: true}
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt Point) *Path {
	p.cmd("M", pt)
	return p
}

// LineTo draws a segment to pt.
func (p *Path) LineTo(pt Point) *Path {
	p.cmd("L", pt)
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	if !p.empty {
		p.b.WriteByte(' ')
	}
	p.b.WriteByte('Z')
	p.empty = false
	return p
}

func (p *Path) cmd(c string, pt Point) {
	if !p.empty {
		p.b.WriteByte(' ')
	}
	p.b.WriteString(c)
	p.b.WriteByte(' ')
	p.b.WriteString(FormatFloat(pt.X))
	p.b.WriteByte(',')
	p.b.WriteString(FormatFloat(pt.Y))
	p.empty = false
}

// String returns the path data.
func (p *Path) String() string {
	return p.b.String()
}

// Polyline builds "M p0 L p1 L p2 ..." for pts. Empty input yields "".
func Polyline(pts []Point) *Path {
	path := NewPath()
	for i, pt := range pts {
		if i == 0 {
			path.MoveTo(pt)
			continue
		}
		path.LineTo(pt)
	}
	return path
}

// FormatFloat renders v with the shortest representation that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
