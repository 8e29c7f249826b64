package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/livecharts/internal/chart"
	"github.com/zappabad/livecharts/internal/history"
	"github.com/zappabad/livecharts/internal/sim"
	"github.com/zappabad/livecharts/tui/styles"
)

// ActivityPanel shows the active chart's mode and trail followed by the
// most recent updates from every chart.
type ActivityPanel struct {
	chart   chart.Chart
	updates []sim.Update

	focused bool
	width   int
	height  int
}

// NewActivityPanel creates a new activity panel.
func NewActivityPanel() *ActivityPanel {
	return &ActivityPanel{}
}

// Init initializes the panel.
func (p *ActivityPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ActivityPanel) Update(msg tea.Msg) (*ActivityPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *ActivityPanel) View() string {
	var content strings.Builder

	if p.chart != nil {
		modeStyle := styles.ModeManualStyle
		if p.chart.Mode() == sim.ModeAuto {
			modeStyle = styles.ModeAutoStyle
		}
		content.WriteString(styles.HeaderStyle.Render("Mode "))
		content.WriteString(modeStyle.Render(p.chart.Mode().String()))
		if d := p.chart.DroppedEvents(); d > 0 {
			content.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  dropped %d", d)))
		}
		content.WriteString("\n")

		content.WriteString(styles.HeaderStyle.Render("Trail"))
		content.WriteString("\n")
		trail := p.chart.History()
		if len(trail) == 0 {
			content.WriteString(styles.MutedStyle.Render("  empty"))
			content.WriteString("\n")
		}
		for i := len(trail) - 1; i >= 0; i-- {
			content.WriteString(formatEntry(trail[i], i == len(trail)-1))
			content.WriteString("\n")
		}
	}

	content.WriteString(styles.HeaderStyle.Render("Updates"))
	visible := p.height - 4 - strings.Count(content.String(), "\n") - 1
	start := len(p.updates) - visible
	if start < 0 {
		start = 0
	}
	for i := len(p.updates) - 1; i >= start; i-- {
		content.WriteString("\n")
		content.WriteString(formatUpdate(p.updates[i]))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}
	title := styles.RenderTitle("Activity", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// formatEntry renders one trail entry; the latest one is highlighted.
func formatEntry(e history.Entry, latest bool) string {
	id := e.ID
	if len(id) > 8 {
		id = id[:8]
	}
	rowStyle := styles.RowStyle
	if latest {
		rowStyle = styles.SelectedRowStyle
	}
	return fmt.Sprintf("  %s %s",
		styles.TimeStyle.Render(id),
		rowStyle.Render(fmt.Sprintf("(%.1f, %.1f)", e.X, e.Y)),
	)
}

func formatUpdate(u sim.Update) string {
	mark := " "
	if u.Recorded {
		mark = "+"
	}
	return fmt.Sprintf("%s %-8s %-9s %s",
		styles.TimeStyle.Render(fmt.Sprintf("#%d", u.Seq)),
		u.Chart,
		u.Source,
		styles.RowStyle.Render(mark+fmt.Sprintf("(%.1f, %.1f)", u.Point.X, u.Point.Y)),
	)
}

// SetFocus sets the focus state of the panel.
func (p *ActivityPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ActivityPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetChart selects the chart whose status is shown.
func (p *ActivityPanel) SetChart(c chart.Chart) {
	p.chart = c
}

// SetUpdates replaces the update log, oldest first.
func (p *ActivityPanel) SetUpdates(updates []sim.Update) {
	p.updates = updates
}

// UpdateMsg carries one chart update into the program.
type UpdateMsg struct {
	Update sim.Update
}
