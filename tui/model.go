package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/zappabad/livecharts/internal/chart"
	"github.com/zappabad/livecharts/internal/logging"
	"github.com/zappabad/livecharts/internal/session"
	"github.com/zappabad/livecharts/internal/sim"
	"github.com/zappabad/livecharts/tui/panels"
	"github.com/zappabad/livecharts/tui/styles"
)

// activityRows is how many recent updates the activity panel keeps.
const activityRows = 30

// Model is the main TUI application model.
type Model struct {
	session *session.Session
	charts  []chart.Chart
	active  int
	editing bool

	// Panels
	quadrantPanel *panels.QuadrantPanel
	areaPanel     *panels.AreaPanel
	radarPanel    *panels.RadarPanel
	propertyPanel *panels.PropertyInputPanel
	activityPanel *panels.ActivityPanel

	keys   KeyMap
	help   help.Model
	logger *log.Logger

	// Window dimensions
	width  int
	height int

	statusMsg string
	ready     bool
}

// NewModel creates a new TUI model over s.
func NewModel(s *session.Session, logger *log.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	h := help.New()
	h.Styles.ShortKey = styles.StatusBarKeyStyle
	h.Styles.ShortDesc = styles.StatusBarDescStyle
	h.Styles.FullKey = styles.StatusBarKeyStyle
	h.Styles.FullDesc = styles.StatusBarDescStyle
	m := &Model{
		session:       s,
		charts:        s.Charts(),
		quadrantPanel: panels.NewQuadrantPanel(s.Quadrant),
		areaPanel:     panels.NewAreaPanel(s.Area),
		radarPanel:    panels.NewRadarPanel(s.Radar),
		propertyPanel: panels.NewPropertyInputPanel(),
		activityPanel: panels.NewActivityPanel(),
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger.With("component", "tui"),
	}
	m.propertyPanel.SetValues(s.Quadrant.Properties())
	m.activityPanel.SetChart(m.Active())
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.quadrantPanel.Init(),
		m.areaPanel.Init(),
		m.radarPanel.Init(),
		m.propertyPanel.Init(),
		m.activityPanel.Init(),
		m.listenUpdates(),
	)
}

// Active returns the chart on screen.
func (m *Model) Active() chart.Chart {
	return m.charts[m.active]
}

// Select shows the chart of kind k. Unknown kinds are ignored.
func (m *Model) Select(k chart.Kind) {
	for i, c := range m.charts {
		if c.Kind() == k {
			m.setActive(i)
			return
		}
	}
}

// Editing reports whether key presses go to the property inputs.
func (m *Model) Editing() bool {
	return m.editing
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m, m.updateEditing(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

	case panels.UpdateMsg:
		m.refresh()
		cmds = append(cmds, m.listenUpdates())

	case panels.PropertySubmitMsg:
		ok := m.session.Quadrant.UpdatePropertyText(msg.Key, msg.Text)
		m.propertyPanel.SetRejected(!ok)
		if ok {
			m.statusMsg = fmt.Sprintf("%s set to %s", msg.Key, msg.Text)
		} else {
			m.statusMsg = fmt.Sprintf("%s: %q rejected", msg.Key, msg.Text)
		}
		m.logger.Debug("property submit", "key", msg.Key, "text", msg.Text, "accepted", ok)
		m.refresh()
	}

	m.updateActivePanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	c := m.Active()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.Next):
		m.setActive(m.active + 1)
	case key.Matches(msg, m.keys.Prev):
		m.setActive(m.active - 1)

	case key.Matches(msg, m.keys.Mode):
		next := c.Mode().Toggle()
		c.SetMode(next)
		m.statusMsg = fmt.Sprintf("%s: %s", c.Name(), next)

	case key.Matches(msg, m.keys.Randomize):
		c.Randomize()

	case key.Matches(msg, m.keys.Clear):
		c.ClearHistory()
		m.statusMsg = fmt.Sprintf("%s: trail cleared", c.Name())

	case key.Matches(msg, m.keys.Edit):
		if c.Kind() != chart.KindQuadrant {
			return nil, true
		}
		if c.Mode() == sim.ModeAuto {
			m.statusMsg = "switch to manual to edit properties"
			return nil, true
		}
		m.editing = true
		m.propertyPanel.SetFocus(true)
		return textinput.Blink, true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		return nil, false
	}
	m.refresh()
	return nil, true
}

func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "ctrl+c":
		return tea.Quit
	case key.Matches(msg, m.keys.Done):
		m.editing = false
		m.propertyPanel.SetFocus(false)
		m.propertyPanel.SetRejected(false)
		return nil
	}
	var cmd tea.Cmd
	m.propertyPanel, cmd = m.propertyPanel.Update(msg)
	return cmd
}

func (m *Model) updateActivePanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.Active().Kind() {
	case chart.KindQuadrant:
		m.quadrantPanel, cmd = m.quadrantPanel.Update(msg)
	case chart.KindArea:
		m.areaPanel, cmd = m.areaPanel.Update(msg)
	case chart.KindRadar:
		m.radarPanel, cmd = m.radarPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) setActive(i int) {
	n := len(m.charts)
	m.active = (i + n) % n
	m.activityPanel.SetChart(m.Active())
	m.logger.Debug("chart selected", "chart", m.Active().Name())
}

func (m *Model) refresh() {
	m.propertyPanel.SetValues(m.session.Quadrant.Properties())
	m.activityPanel.SetUpdates(m.session.Activity().Latest(activityRows))
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Layout:
	// ┌ tabs ─────────────────────────────────────┐
	// │         chart          │  properties      │
	// │                        │  activity        │
	// └ help ─────────────────────────────────────┘
	tabs := m.renderTabs()
	helpView := m.renderStatusBar()

	bodyHeight := m.height - lipgloss.Height(tabs) - lipgloss.Height(helpView)
	leftWidth := m.width * 2 / 3
	rightWidth := m.width - leftWidth

	m.quadrantPanel.SetFocus(!m.editing)
	m.areaPanel.SetFocus(true)
	m.radarPanel.SetFocus(true)

	var left string
	switch m.Active().Kind() {
	case chart.KindQuadrant:
		m.quadrantPanel.SetSize(leftWidth, bodyHeight)
		left = m.quadrantPanel.View()
	case chart.KindArea:
		m.areaPanel.SetSize(leftWidth, bodyHeight)
		left = m.areaPanel.View()
	case chart.KindRadar:
		m.radarPanel.SetSize(leftWidth, bodyHeight)
		left = m.radarPanel.View()
	}

	var right string
	if m.Active().Kind() == chart.KindQuadrant {
		propHeight := 9
		m.propertyPanel.SetSize(rightWidth, propHeight)
		m.activityPanel.SetSize(rightWidth, bodyHeight-propHeight)
		right = lipgloss.JoinVertical(lipgloss.Left, m.propertyPanel.View(), m.activityPanel.View())
	} else {
		m.activityPanel.SetSize(rightWidth, bodyHeight)
		right = m.activityPanel.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, helpView)
}

func (m *Model) renderTabs() string {
	var tabs []string
	for i, c := range m.charts {
		style := styles.TabStyle
		if i == m.active {
			style = styles.ActiveTabStyle
		}
		name := strings.ToUpper(string(c.Kind())[:1]) + string(c.Kind())[1:]
		tabs = append(tabs, style.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderStatusBar() string {
	status := ""
	if m.statusMsg != "" {
		status = " │ " + m.statusMsg
	}
	return styles.StatusBarStyle.Width(m.width).Render(m.help.View(m.keys) + status)
}

func (m *Model) listenUpdates() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.session.Updates()
		if !ok {
			return nil
		}
		return panels.UpdateMsg{Update: ev}
	}
}
