package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ctypes/platform"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const listHeight = 14

type browserModel struct {
	reg      *platform.Registry
	names    []string
	matches  []string
	filter   textinput.Model
	selected int
	offset   int
}

func newBrowserModel(reg *platform.Registry) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "filter types"
	ti.Prompt = "/ "
	ti.Width = 30
	ti.Focus()

	m := &browserModel{reg: reg, names: reg.Names(), filter: ti}
	m.refilter()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) refilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.matches = m.matches[:0]
	for _, name := range m.names {
		if q == "" || strings.Contains(strings.ToLower(name), q) {
			m.matches = append(m.matches, name)
		}
	}
	m.selected, m.offset = 0, 0
}

func (m *browserModel) move(delta int) {
	m.selected += delta
	m.selected = max(0, min(m.selected, len(m.matches)-1))
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+listHeight {
		m.offset = m.selected - listHeight + 1
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "ctrl+p":
			m.move(-1)
			return m, nil
		case "down", "ctrl+n":
			m.move(1)
			return m, nil
		case "pgup":
			m.move(-listHeight)
			return m, nil
		case "pgdown":
			m.move(listHeight)
			return m, nil
		}
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ctypes"))
	fmt.Fprintf(&b, " %s  %d-bit %s endian  %d types\n\n", m.reg.Profile(), m.reg.Bits(), m.reg.Order(), len(m.names))
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	var list strings.Builder
	end := min(m.offset+listHeight, len(m.matches))
	for i := m.offset; i < end; i++ {
		line := fmt.Sprintf("%-24s", m.matches[i])
		if i == m.selected {
			list.WriteString(selectedStyle.Render("> " + line))
		} else {
			list.WriteString("  " + line)
		}
		list.WriteString("\n")
	}
	if len(m.matches) == 0 {
		list.WriteString("  no matching types\n")
	}

	detail := ""
	if len(m.matches) > 0 {
		name := m.matches[m.selected]
		plain := options{}
		detail = detailStyle.Render(describe(name, m.reg.MustLookup(name)).text(plain))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", detail))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • esc quit"))
	return b.String()
}

func runInteractive(reg *platform.Registry) error {
	p := tea.NewProgram(newBrowserModel(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
