package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F87AF")).
			Padding(0, 1)

	atomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F87AF"))

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// row is one visible line of the tree.
type row struct {
	node  *node
	depth int
}

type dumpModel struct {
	filename  string
	roots     []*node
	collapsed map[*node]bool
	rows      []row
	selected  int
	viewport  viewport.Model
	ready     bool
}

func newDumpModel(filename string, roots []*node) *dumpModel {
	m := &dumpModel{
		filename:  filename,
		roots:     roots,
		collapsed: make(map[*node]bool),
	}
	m.rebuild()
	return m
}

func (m *dumpModel) rebuild() {
	m.rows = m.rows[:0]
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		m.rows = append(m.rows, row{node: n, depth: depth})
		if m.collapsed[n] {
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	for _, root := range m.roots {
		walk(root, 0)
	}
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
}

func (m *dumpModel) Init() tea.Cmd {
	return nil
}

func (m *dumpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 3
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.rows)-1 {
				m.selected++
			}
		case "enter", " ":
			n := m.rows[m.selected].node
			if len(n.children) > 0 {
				m.collapsed[n] = !m.collapsed[n]
				m.rebuild()
			}
		}
	}

	if m.ready {
		m.viewport.SetContent(m.renderRows())
		m.scrollToSelected()
	}
	return m, nil
}

func (m *dumpModel) renderRows() string {
	var b strings.Builder
	for i, r := range m.rows {
		marker := "  "
		if len(r.node.children) > 0 {
			marker = "- "
			if m.collapsed[r.node] {
				marker = "+ "
			}
		}
		line := strings.Repeat("  ", r.depth) + marker + r.node.label
		switch {
		case i == m.selected:
			line = selectedStyle.Render(line)
		case len(r.node.children) > 0:
			line = branchStyle.Render(line)
		default:
			line = atomStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *dumpModel) scrollToSelected() {
	if m.selected < m.viewport.YOffset {
		m.viewport.SetYOffset(m.selected)
	}
	if bottom := m.viewport.YOffset + m.viewport.Height - 1; m.selected > bottom {
		m.viewport.SetYOffset(m.selected - m.viewport.Height + 1)
	}
}

func (m *dumpModel) View() string {
	if !m.ready {
		return "loading..."
	}
	title := titleStyle.Render(fmt.Sprintf("atomdump: %s (%d atoms)", m.filename, len(m.roots)))
	help := helpStyle.Render("up/down: move • enter: collapse/expand • q: quit")
	return title + "\n" + m.viewport.View() + "\n" + help
}

func runInteractive(filename string, roots []*node) error {
	p := tea.NewProgram(newDumpModel(filename, roots), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
