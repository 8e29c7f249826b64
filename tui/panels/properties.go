package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/livecharts/internal/dataset"
	"github.com/zappabad/livecharts/tui/styles"
)

// PropertyInputPanel edits the four quadrant weights. up/down move between
// fields and enter submits the current field.
type PropertyInputPanel struct {
	inputs       []textinput.Model
	current      int
	values       dataset.PropertySet
	lastRejected bool

	focused bool
	width   int
	height  int
}

// NewPropertyInputPanel creates a new property input panel.
func NewPropertyInputPanel() *PropertyInputPanel {
	inputs := make([]textinput.Model, len(dataset.Properties))
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = "0-100"
		in.Width = 8
		in.CharLimit = 8
		inputs[i] = in
	}
	return &PropertyInputPanel{inputs: inputs}
}

// Init initializes the panel.
func (p *PropertyInputPanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the panel.
func (p *PropertyInputPanel) Update(msg tea.Msg) (*PropertyInputPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("down"))):
			p.setCurrent(p.current + 1)
			return p, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("up"))):
			p.setCurrent(p.current - 1)
			return p, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			return p, p.submit()
		}
	}

	var cmd tea.Cmd
	p.inputs[p.current], cmd = p.inputs[p.current].Update(msg)
	return p, cmd
}

func (p *PropertyInputPanel) setCurrent(i int) {
	n := len(p.inputs)
	p.current = (i + n) % n
	p.syncFocus()
}

func (p *PropertyInputPanel) syncFocus() {
	for i := range p.inputs {
		if p.focused && i == p.current {
			p.inputs[i].Focus()
		} else {
			p.inputs[i].Blur()
		}
	}
}

func (p *PropertyInputPanel) submit() tea.Cmd {
	text := strings.TrimSpace(p.inputs[p.current].Value())
	if text == "" {
		return nil
	}
	msg := PropertySubmitMsg{
		Key:  dataset.Properties[p.current],
		Text: text,
	}
	p.inputs[p.current].SetValue("")
	return func() tea.Msg { return msg }
}

// View renders the panel.
func (p *PropertyInputPanel) View() string {
	var content strings.Builder

	for i, prop := range dataset.Properties {
		labelStyle := styles.LabelStyle
		inputStyle := styles.InputStyle
		if i == p.current && p.focused {
			labelStyle = labelStyle.Foreground(styles.PrimaryColor)
			inputStyle = styles.FocusedInputStyle
		}
		name := labelStyle.Render(fmt.Sprintf("P%d (Q%d) %6.2f ", i+1, i+1, p.values.Get(prop)))
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, name, inputStyle.Render(p.inputs[i].View())))
		content.WriteString("\n")
	}

	if p.lastRejected {
		content.WriteString(styles.ErrorStyle.Render("value must be a number in [0, 100]"))
	} else if p.focused {
		content.WriteString(styles.MutedStyle.Render("enter apply · esc done"))
	} else {
		content.WriteString(styles.MutedStyle.Render("e to edit (manual mode)"))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}
	title := styles.RenderTitle("Properties", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *PropertyInputPanel) SetFocus(focused bool) {
	p.focused = focused
	p.syncFocus()
}

// SetSize sets the panel dimensions.
func (p *PropertyInputPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetValues shows the chart's current weights.
func (p *PropertyInputPanel) SetValues(s dataset.PropertySet) {
	p.values = s
}

// SetRejected flags the last submission as rejected.
func (p *PropertyInputPanel) SetRejected(rejected bool) {
	p.lastRejected = rejected
}

// Current returns the selected property.
func (p *PropertyInputPanel) Current() dataset.Property {
	return dataset.Properties[p.current]
}

// PropertySubmitMsg is sent when the user submits a property value.
type PropertySubmitMsg struct {
	Key  dataset.Property
	Text string
}
