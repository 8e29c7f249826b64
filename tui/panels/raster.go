package panels

import (
	"math"
	"unicode/utf8"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/label"
)

// raster maps a rectangle of chart coordinates onto a block of canvas cells.
// Chart y grows downward, matching the geometry snapshots.
type raster struct {
	c      canvas.Model
	cw, ch int

	// plot area in cells
	ox, oy int
	w, h   int

	// chart domain
	minX, minY   float64
	spanX, spanY float64
}

func newRaster(width, height int, plot canvas.Point, plotW, plotH int, minX, minY, maxX, maxY float64) *raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	return &raster{
		c:     canvas.New(width, height),
		cw:    width,
		ch:    height,
		ox:    plot.X,
		oy:    plot.Y,
		w:     max(plotW, 1),
		h:     max(plotH, 1),
		minX:  minX,
		minY:  minY,
		spanX: spanX,
		spanY: spanY,
	}
}

// cell converts a chart coordinate to a canvas cell.
func (r *raster) cell(p geom.Point) canvas.Point {
	x := int(math.Round((p.X - r.minX) / r.spanX * float64(r.w-1)))
	y := int(math.Round((p.Y - r.minY) / r.spanY * float64(r.h-1)))
	return canvas.Point{X: r.ox + x, Y: r.oy + y}
}

func (r *raster) set(p canvas.Point, ru rune, st lipgloss.Style) {
	if p.X < 0 || p.Y < 0 || p.X >= r.cw || p.Y >= r.ch {
		return
	}
	r.c.SetCell(p, canvas.NewCellWithStyle(ru, st))
}

func (r *raster) dot(p geom.Point, ru rune, st lipgloss.Style) {
	r.set(r.cell(p), ru, st)
}

func (r *raster) line(a, b geom.Point, ru rune, st lipgloss.Style) {
	for _, p := range graph.GetLinePoints(r.cell(a), r.cell(b)) {
		r.set(p, ru, st)
	}
}

func (r *raster) lines(ls []geom.Line, ru rune, st lipgloss.Style) {
	for _, l := range ls {
		r.line(geom.Point{X: l.X1, Y: l.Y1}, geom.Point{X: l.X2, Y: l.Y2}, ru, st)
	}
}

// polyline draws consecutive segments through pts.
func (r *raster) polyline(pts []geom.Point, ru rune, st lipgloss.Style) {
	for i := 1; i < len(pts); i++ {
		r.line(pts[i-1], pts[i], ru, st)
	}
}

// fillBelow shades every cell between the segment through pts and the
// baseline row.
func (r *raster) fillBelow(pts []geom.Point, baseline float64, ru rune, st lipgloss.Style) {
	bottom := r.cell(geom.Point{X: r.minX, Y: baseline}).Y
	for i := 1; i < len(pts); i++ {
		for _, p := range graph.GetLinePoints(r.cell(pts[i-1]), r.cell(pts[i])) {
			for y := p.Y + 1; y <= bottom; y++ {
				r.set(canvas.Point{X: p.X, Y: y}, ru, st)
			}
		}
	}
}

// text writes s at a cell, honoring the anchor. Text is clipped to the canvas.
func (r *raster) text(at canvas.Point, s string, anchor label.Anchor, st lipgloss.Style) {
	n := utf8.RuneCountInString(s)
	switch anchor {
	case label.AnchorEnd:
		at.X -= n - 1
	case label.AnchorMiddle:
		at.X -= n / 2
	}
	if at.Y < 0 || at.Y >= r.ch {
		return
	}
	if at.X < 0 {
		at.X = 0
	}
	if over := at.X + n - r.cw; over > 0 {
		at.X -= over
		if at.X < 0 {
			return
		}
	}
	r.c.SetStringWithStyle(at, s, st)
}

func (r *raster) place(pl label.Placement, s string, st lipgloss.Style) {
	r.text(r.cell(geom.Point{X: pl.X, Y: pl.Y}), s, pl.Anchor, st)
}

func (r *raster) View() string {
	return r.c.View()
}
