package panels

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/canvas"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/livecharts/internal/chart"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/label"
	"github.com/zappabad/livecharts/internal/projection"
	"github.com/zappabad/livecharts/tui/styles"
)

// QuadrantPanel draws the quadrant chart with its fading trail.
type QuadrantPanel struct {
	chart *chart.Quadrant

	focused bool
	width   int
	height  int
}

// NewQuadrantPanel creates a panel for q.
func NewQuadrantPanel(q *chart.Quadrant) *QuadrantPanel {
	return &QuadrantPanel{chart: q}
}

// Init initializes the panel.
func (p *QuadrantPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *QuadrantPanel) Update(msg tea.Msg) (*QuadrantPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *QuadrantPanel) View() string {
	g := p.chart.Geometry()
	w, h := p.width-4, p.height-4
	if w < 10 || h < 5 {
		return p.frame(g, "")
	}

	const size = projection.QuadrantSize
	r := newRaster(w, h, canvas.Point{}, w, h, 0, 0, size, size)

	r.lines(g.GridLines, '·', styles.GridStyle)
	r.line(geom.Point{X: size / 2, Y: 0}, geom.Point{X: size / 2, Y: size}, '│', styles.ChartAxisStyle)
	r.line(geom.Point{X: 0, Y: size / 2}, geom.Point{X: size, Y: size / 2}, '─', styles.ChartAxisStyle)
	r.dot(geom.Point{X: size / 2, Y: size / 2}, '┼', styles.ChartAxisStyle)

	for _, t := range chart.QuadrantTitles {
		r.text(r.cell(t.Point), t.Text, label.AnchorMiddle, styles.MutedStyle)
	}

	for _, m := range g.Trail {
		r.dot(m.Screen, trailRune(m.Radius), styles.TrailStyle(m.Opacity))
	}
	r.dot(g.Screen, '●', styles.PointStyle)
	r.place(g.Label, g.Text, styles.ValueLabelStyle)

	return p.frame(g, r.View())
}

// trailRune grows with the mark radius.
func trailRune(radius float64) rune {
	switch {
	case radius < 2:
		return '·'
	case radius < 2.5:
		return '∘'
	default:
		return '○'
	}
}

func (p *QuadrantPanel) frame(g chart.QuadrantGeometry, body string) string {
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}
	title := styles.RenderTitle(fmt.Sprintf("Quadrant %d (%s)", g.Quadrant, g.Mapping), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *QuadrantPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *QuadrantPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
