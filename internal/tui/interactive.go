// Package tui is an interactive terminal calculator over the formula catalog.
package tui

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/config"
	"github.com/san-kum/sonarlab/internal/formula"
	"github.com/san-kum/sonarlab/internal/sweep"
	"github.com/san-kum/sonarlab/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const previewSteps = 40

type state int

const (
	stateMenu state = iota
	stateForm
)

type model struct {
	state  state
	cursor int
	names  []string

	reg    *catalog.Registry
	cfg    *config.Config
	runner *sweep.Runner

	spec        *formula.Spec
	args        []float64
	paramCursor int
	editing     bool
	editBuf     string

	result  formula.Result
	err     error
	preview []float64

	presets   []string
	presetIdx int

	width  int
	height int
}

func NewCalculator(reg *catalog.Registry, cfg *config.Config) *model {
	return &model{
		state:     stateMenu,
		names:     reg.List(),
		reg:       reg,
		cfg:       cfg,
		runner:    sweep.NewRunner(reg, cfg.Sweep.Workers),
		presets:   cfg.ListPresets(),
		presetIdx: -1,
		width:     80,
		height:    24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateForm:
		return m.formKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.names) == 0 {
			return m, nil
		}
		s, err := m.reg.Lookup(m.names[m.cursor])
		if err != nil {
			m.err = err
			return m, nil
		}
		m.spec = s
		m.args = s.Defaults()
		m.paramCursor = 0
		m.presetIdx = -1
		m.preview = nil
		m.state = stateForm
		m.evaluate()
	}
	return m, nil
}

func (m model) formKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			v, err := strconv.ParseFloat(m.editBuf, 64)
			if err == nil {
				m.args[m.paramCursor] = v
				m.preview = nil
				m.evaluate()
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 {
				c := s[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
					m.editBuf += s
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
		m.spec = nil
		m.err = nil
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.args)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		if len(m.args) > 0 {
			m.editing = true
			m.editBuf = strconv.FormatFloat(m.args[m.paramCursor], 'g', -1, 64)
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(1)
	case "d":
		m.args = m.spec.Defaults()
		m.presetIdx = -1
		m.preview = nil
		m.evaluate()
	case "p":
		m.cyclePreset()
	case "s":
		m.sweepPreview()
	}
	return m, nil
}

// stepFor is the left/right increment for a parameter.
func stepFor(p formula.Param) float64 {
	if p.Range != nil && p.Range.Max > p.Range.Min {
		return (p.Range.Max - p.Range.Min) / 50
	}
	if p.Default != 0 {
		return math.Abs(p.Default) / 20
	}
	return 1
}

func (m *model) nudge(dir float64) {
	if len(m.args) == 0 {
		return
	}
	m.args[m.paramCursor] += dir * stepFor(m.spec.Params[m.paramCursor])
	m.preview = nil
	m.evaluate()
}

func (m *model) cyclePreset() {
	if len(m.presets) == 0 {
		return
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	env, ok := m.cfg.Preset(m.presets[m.presetIdx])
	if !ok {
		return
	}
	m.args = catalog.BindRoles(m.spec, env.Roles())
	m.preview = nil
	m.evaluate()
}

func (m *model) evaluate() {
	m.result, m.err = m.spec.Evaluate(m.args...)
}

// sweepBounds is the declared window of a parameter, or a band around the
// current value when none is declared.
func sweepBounds(p formula.Param, current float64) (float64, float64) {
	if p.Range != nil && p.Range.Max > p.Range.Min {
		return p.Range.Min, p.Range.Max
	}
	if current == 0 {
		return 0, 10
	}
	return current / 2, current * 1.5
}

func (m *model) sweepPreview() {
	if len(m.args) == 0 {
		return
	}
	p := m.spec.Params[m.paramCursor]
	from, to := sweepBounds(p, m.args[m.paramCursor])

	fixed := make(map[string]float64, len(m.args))
	for i, q := range m.spec.Params {
		fixed[q.Name] = m.args[i]
	}
	delete(fixed, p.Name)

	res, err := m.runner.Run(context.Background(), sweep.Request{
		Formula: m.spec.Name,
		Param:   p.Name,
		From:    from,
		To:      to,
		Steps:   previewSteps,
		Fixed:   fixed,
	})
	if err != nil {
		m.err = err
		m.preview = nil
		return
	}
	m.preview = res.Series(0)
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateForm:
		return m.viewForm()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("s o n a r l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	visible := m.height - 9
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.names))

	for i := start; i < end; i++ {
		name := m.names[i]
		category := ""
		if s, err := m.reg.Lookup(name); err == nil {
			category = s.Category
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-44s", name)) + dim.Render(category) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-44s", name)) + dimmer.Render(category) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("      %d/%d   ↑↓ select   enter open   q quit", m.cursor+1, len(m.names))) + "\n")

	return b.String()
}

func (m model) viewForm() string {
	var b strings.Builder
	s := m.spec

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(s.Name) + "  " + dim.Render(s.Category) + "\n")
	if s.Summary != "" {
		b.WriteString("      " + dim.Render(s.Summary) + "\n")
	}
	if m.presetIdx >= 0 {
		b.WriteString("      " + dim.Render("preset ") + magenta.Render(m.presets[m.presetIdx]) + "\n")
	}
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	for i, p := range s.Params {
		val := fmt.Sprintf("%12s", viz.FormatValue(m.args[i]))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%12s", m.editBuf+"▋")
		}
		unit := dimmer.Render(fmt.Sprintf(" %-8s", p.Unit))
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-22s", p.Name)) + magenta.Render(val) + unit + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-22s", p.Name)) + dim.Render(val) + unit + "\n")
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString("      " + red.Render(m.err.Error()) + "\n")
	} else {
		for i, o := range s.Outputs {
			if i < len(m.result.Outputs) {
				b.WriteString(fmt.Sprintf("      %s %s %s\n",
					dim.Render(fmt.Sprintf("%-22s", o.Name)),
					white.Render(fmt.Sprintf("%12s", viz.FormatValue(m.result.Outputs[i]))),
					dimmer.Render(o.Unit)))
			}
		}
		for _, d := range m.result.Diagnostics {
			b.WriteString("      " + yellow.Render("! "+d.String()) + "\n")
		}
	}

	if len(m.preview) > 0 {
		b.WriteString(fmt.Sprintf("\n      %s %s\n", dim.Render(s.Params[m.paramCursor].Name), viz.Sparkline(m.preview, previewSteps)))
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  p preset  d defaults  s sweep  esc back") + "\n")

	return b.String()
}

func RunInteractive(reg *catalog.Registry, cfg *config.Config) error {
	p := tea.NewProgram(NewCalculator(reg, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
