package panels

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/livecharts/internal/chart"
	"github.com/zappabad/livecharts/internal/geom"
	"github.com/zappabad/livecharts/internal/label"
	"github.com/zappabad/livecharts/tui/styles"
)

// yAxisWidth is the number of cells reserved for value axis labels.
const yAxisWidth = 5

// AreaPanel draws the area chart. left/right move a cursor between points
// and the point under the cursor shows its value label.
type AreaPanel struct {
	chart  *chart.Area
	cursor int

	focused bool
	width   int
	height  int
}

// NewAreaPanel creates a panel for a.
func NewAreaPanel(a *chart.Area) *AreaPanel {
	return &AreaPanel{chart: a, cursor: -1}
}

// Init initializes the panel.
func (p *AreaPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *AreaPanel) Update(msg tea.Msg) (*AreaPanel, tea.Cmd) {
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
func (p *AreaPanel) View() string {
	g := p.chart.Geometry()
	w, h := p.width-4, p.height-4
	if w < yAxisWidth+2 || h < 3 {
		return p.frame("")
	}

	r := newRaster(w, h, canvas.Point{X: yAxisWidth, Y: 0}, w-yAxisWidth, h-1,
		0, 0, g.Inner.Width, g.Inner.Height)

	r.lines(g.GridLines, '┈', styles.GridStyle)

	pts := make([]geom.Point, len(g.Points))
	for i, pt := range g.Points {
		pts[i] = pt.Point
	}
	r.fillBelow(pts, g.Inner.Height, '░', styles.FillStyle)
	r.polyline(pts, '•', styles.LineStyle)
	for i, pt := range g.Points {
		ru := '●'
		if i == p.cursor {
			ru = '◆'
		}
		r.dot(pt.Point, ru, styles.PointStyle)
	}

	for _, yl := range g.YLabels {
		row := r.cell(geom.Point{Y: yl.Y}).Y
		r.text(canvas.Point{X: yAxisWidth - 2, Y: row}, yl.Text, label.AnchorEnd, styles.ChartLabelStyle)
	}
	// Category labels are skipped when they would collide.
	nextFree := 0
	for _, xl := range g.XLabels {
		c := r.cell(geom.Point{X: xl.X})
		start := c.X - len(xl.Text)/2
		if start < nextFree {
			continue
		}
		r.text(canvas.Point{X: c.X, Y: h - 1}, xl.Text, label.AnchorMiddle, styles.ChartLabelStyle)
		nextFree = start + len(xl.Text) + 1
	}

	if p.cursor >= 0 && p.cursor < len(g.Points) {
		pt := g.Points[p.cursor]
		r.place(pt.Label, pt.Text, styles.ValueLabelStyle)
	}

	return p.frame(r.View())
}

func (p *AreaPanel) frame(body string) string {
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}
	g := p.chart.Geometry()
	title := styles.RenderTitle(fmt.Sprintf("Area: %s by %s", g.YTitle, g.XTitle), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *AreaPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *AreaPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Cursor returns the highlighted point index, or -1.
func (p *AreaPanel) Cursor() int {
	return p.cursor
}

func moveCursor(cur, delta, n int) int {
	if n == 0 {
		return -1
	}
	if cur < 0 {
		if delta > 0 {
			return 0
		}
		return n - 1
	}
	return (cur + delta + n) % n
}
