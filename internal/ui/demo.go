package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/miness/jloglib/jll"
)

// Demo styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true).
			PaddingLeft(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			PaddingLeft(1)

	logLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			PaddingLeft(2)

	filteredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Italic(true).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			PaddingLeft(1)
)

// DemoModel is an interactive playground for the logger. Every submitted
// message goes through a real Logger whose console output is captured
// into a buffer and rendered in the view, so the effect of the current
// settings is visible immediately.
type DemoModel struct {
	input    textinput.Model
	settings *jll.Settings
	logger   *jll.Logger
	buf      *bytes.Buffer
	lines    []string
	level    jll.LogLevel
	width    int
	height   int
}

// NewDemoModel creates a playground over its own settings store, so
// experiments never touch the shared facade instances.
func NewDemoModel() DemoModel {
	settings := jll.NewSettings()
	utils := jll.NewUtils(settings)
	logger := jll.NewLogger(settings, utils)

	buf := &bytes.Buffer{}
	logger.SetOutput(buf)

	ti := textinput.New()
	ti.Placeholder = "Type a message and press enter to log it"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return DemoModel{
		input:    ti,
		settings: settings,
		logger:   logger,
		buf:      buf,
		level:    jll.LevelMedium,
	}
}

// Init initializes the model
func (m DemoModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the model
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.level = nextLevel(m.level)
			return m, nil
		case "ctrl+l":
			m.settings.SetLogLevel(nextLevel(m.settings.LogLevel()))
			return m, nil
		case "ctrl+s":
			m.settings.SetAllowSubLogLevels(!m.settings.AllowsSubLogLevels())
			return m, nil
		case "ctrl+d":
			m.settings.SetPrintDate(!m.settings.PrintsDate())
			return m, nil
		case "ctrl+t":
			m.settings.SetPrintTime(!m.settings.PrintsTime())
			return m, nil
		case "ctrl+a":
			m.settings.SetPrintApplicationName(!m.settings.PrintsApplicationName())
			return m, nil
		case "enter":
			message := strings.TrimSpace(m.input.Value())
			if message != "" {
				m.logger.LogAt(message, m.level)
				m.collectOutput(message)
				m.input.SetValue("")
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// collectOutput moves whatever the log call produced from the capture
// buffer into the rendered history. A call that produced nothing was
// rejected by the filter, which is worth showing too.
func (m *DemoModel) collectOutput(message string) {
	out := m.buf.String()
	m.buf.Reset()
	if out == "" {
		m.lines = append(m.lines, filteredStyle.Render(
			fmt.Sprintf("(filtered: %q at %s)", message, m.level)))
		return
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		m.lines = append(m.lines, logLineStyle.Render(line))
	}
}

// View renders the model
func (m DemoModel) View() string {
	cfg := m.settings.Config()

	var b strings.Builder
	b.WriteString(titleStyle.Render("jll playground") + "\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"filter %s (sub-levels %s) | message level %s | date %s | time %s | app name %s",
		cfg.LogLevel, onOff(cfg.AllowSubLogLevels), m.level,
		onOff(cfg.PrintDate), onOff(cfg.PrintTime), onOff(cfg.PrintApplicationName))) + "\n\n")

	lines := m.lines
	if max := m.height - 7; max > 0 && len(lines) > max {
		lines = lines[len(lines)-max:]
	}
	for _, line := range lines {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(helpStyle.Render(
		"enter: log | tab: message level | ctrl+l: filter level | ctrl+s: sub-levels | ctrl+d/t/a: date/time/app name | esc: quit"))
	return b.String()
}

func nextLevel(level jll.LogLevel) jll.LogLevel {
	switch level {
	case jll.LevelLow:
		return jll.LevelMedium
	case jll.LevelMedium:
		return jll.LevelHigh
	default:
		return jll.LevelLow
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
