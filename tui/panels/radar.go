package panels

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/livecharts/internal/chart"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/label"
	"github.com/zappabad/livecharts/internal/projection"
	"github.com/zappabad/livecharts/tui/styles"
)

// RadarPanel draws the radar chart with level rings, spokes and the value
// polygon. left/right highlight one attribute.
type RadarPanel struct {
	chart  *chart.Radar
	cursor int

	focused bool
	width   int
	height  int
}

// NewRadarPanel creates a panel for r.
func NewRadarPanel(r *chart.Radar) *RadarPanel {
	return &RadarPanel{chart: r, cursor: -1}
}

// Init initializes the panel.
func (p *RadarPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *RadarPanel) Update(msg tea.Msg) (*RadarPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		n := len(p.chart.Data())
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("left", "h"))):
			p.cursor = moveCursor(p.cursor, -1, n)
		case key.Matches(msg, key.NewBinding(key.WithKeys("right", "l"))):
			p.cursor = moveCursor(p.cursor, 1, n)
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			p.cursor = -1
		}
	}
	return p, nil
}

// View renders the panel.
func (p *RadarPanel) View() string {
	g := p.chart.Geometry()
	w, h := p.width-4, p.height-4
	if w < 10 || h < 5 {
		return p.frame("")
	}

	// Axis labels sit outside the outer ring, so the domain keeps a margin.
	pad := g.Radius * (label.RadialFactor - 1) * 2
	r := newRaster(w, h, canvas.Point{}, w, h, -pad, -pad, g.Size+pad, g.Size+pad)

	k := len(g.Vertices)
	for _, radius := range g.Levels {
		ring := make([]geom.Point, 0, k+1)
		for _, s := range projection.AxisSpokes(k, g.Center, radius) {
			ring = append(ring, geom.Point{X: s.X2, Y: s.Y2})
		}
		if len(ring) > 0 {
			ring = append(ring, ring[0])
		}
		r.polyline(ring, '·', styles.GridStyle)
	}
	for _, a := range g.Axes {
		r.lines([]geom.Line{a.Spoke}, '·', styles.ChartAxisStyle)
	}

	r.polyline(g.Polygon, '•', styles.LineStyle)
	for i, v := range g.Vertices {
		ru := '●'
		if i == p.cursor {
			ru = '◆'
		}
		r.dot(v.Point, ru, styles.PointStyle)
	}

	for _, ll := range g.LevelLabels {
		r.text(r.cell(ll.Point), ll.Text, label.AnchorMiddle, styles.MutedStyle)
	}
	for _, a := range g.Axes {
		r.place(a.Label, a.Text, styles.ChartLabelStyle)
	}

	if p.cursor >= 0 && p.cursor < k {
		v := g.Vertices[p.cursor]
		c := r.cell(v.Point)
		c.Y--
		r.text(c, v.Text, label.AnchorMiddle, styles.ValueLabelStyle)
	}

	return p.frame(r.View())
}

func (p *RadarPanel) frame(body string) string {
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}
	title := styles.RenderTitle("Radar: attributes", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *RadarPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *RadarPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
