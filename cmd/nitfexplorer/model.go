package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nitfgo/nitfgo/codec"
	"github.com/nitfgo/nitfgo/internal/mmfile"
	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/registry"
)

// Model is the nitfexplorer TUI's root model: a flattened, expandable
// segment/TRE tree on the left and a detail pane on the right, mirroring
// hiveexplorer's split-pane layout at a scale that fits NITF's shallower
// structure (no dedicated keytree/valuetable subpackages needed; see
// DESIGN.md's cmd/nitfexplorer notes).
type Model struct {
	path   string
	record *record.Record
	root   *node
	rows   []*node
	cursor int

	keys KeyMap
	help help.Model

	width, height int
	showHelp      bool
	statusMessage string
	err           error

	closeFn func() error
}

// NewModel opens path, decodes it into a Record, and builds the initial
// tree with only the root expanded.
func NewModel(path string) Model {
	m := Model{
		path: path,
		keys: DefaultKeyMap(),
		help: help.New(),
	}

	data, closeFn, err := mmfile.Map(path)
	if err != nil {
		m.err = fmt.Errorf("opening %s: %w", path, err)
		return m
	}
	m.closeFn = closeFn

	r, err := codec.Read(data, registry.GetInstance())
	if err != nil {
		_ = closeFn()
		m.closeFn = nil
		m.err = fmt.Errorf("decoding %s: %w", path, err)
		return m
	}

	// codec.Read copies segment payloads and TRE bytes out of the mapped
	// slice, so the decoded record does not reference it; the mapping stays
	// open for the model's lifetime and Close unmaps it once the TUI exits.
	m.record = r
	m.root = buildTree(r)
	m.refreshRows()
	return m
}

// Close releases the memory mapping backing the decoded record. Call it
// after the Bubble Tea program returns.
func (m Model) Close() error {
	if m.closeFn == nil {
		return nil
	}
	return m.closeFn()
}

func (m *Model) refreshRows() {
	m.rows = flatten(m.root, 0, nil)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.err != nil {
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
		case key.Matches(msg, m.keys.End):
			m.cursor = len(m.rows) - 1
		case key.Matches(msg, m.keys.Right):
			m.setExpanded(true)
		case key.Matches(msg, m.keys.Left):
			m.collapseOrGoToParent()
		case key.Matches(msg, m.keys.Enter):
			m.toggleExpanded()
		case key.Matches(msg, m.keys.Copy):
			m.copySelected()
		case key.Matches(msg, m.keys.Export):
			m.exportSelected()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *Model) selected() *node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor]
}

func (m *Model) setExpanded(expanded bool) {
	n := m.selected()
	if n == nil || len(n.children) == 0 {
		return
	}
	n.expanded = expanded
	m.refreshRows()
}

func (m *Model) toggleExpanded() {
	n := m.selected()
	if n == nil || len(n.children) == 0 {
		return
	}
	n.expanded = !n.expanded
	m.refreshRows()
}

// collapseOrGoToParent collapses the selected node if it is expanded with
// children; otherwise moves the cursor to the nearest preceding row with a
// smaller depth (its parent in the flattened list).
func (m *Model) collapseOrGoToParent() {
	n := m.selected()
	if n == nil {
		return
	}
	if n.expanded && len(n.children) > 0 {
		n.expanded = false
		m.refreshRows()
		return
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if m.rows[i].depth < n.depth {
			m.cursor = i
			return
		}
	}
}

func (m *Model) copySelected() {
	n := m.selected()
	if n == nil {
		return
	}
	text := n.yankText
	if text == "" {
		text = n.label
	}
	if err := yank(text); err != nil {
		m.statusMessage = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.statusMessage = "copied to clipboard"
}

func (m *Model) exportSelected() {
	n := m.selected()
	if n == nil || n.yankText == "" {
		m.statusMessage = "nothing exportable here"
		return
	}
	if err := yank(n.yankText); err != nil {
		m.statusMessage = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.statusMessage = "exported to clipboard"
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("nitfexplorer: %v\n\npress any key to exit\n", m.err)
	}
	if m.width == 0 {
		return "loading...\n"
	}

	header := headerStyle.Width(m.width).Render(fmt.Sprintf("nitfexplorer — %s", m.path))

	treeWidth := m.width * 3 / 5
	detailWidth := m.width - treeWidth - 1
	bodyHeight := m.height - 4
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	tree := m.renderTree(treeWidth, bodyHeight)
	detail := m.renderDetail(detailWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, tree, detail)

	status := m.statusMessage
	if status == "" {
		status = fmt.Sprintf("%d/%d rows", m.cursor+1, len(m.rows))
	}
	footer := statusStyle.Width(m.width).Render(status)

	help := ""
	if m.showHelp {
		help = helpStyle.Width(m.width).Render(m.help.FullHelpView(m.keys.FullHelp()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer, help)
}

func (m Model) renderTree(width, height int) string {
	start, end := m.visibleRange(height)
	var b strings.Builder
	for i := start; i < end && i < len(m.rows); i++ {
		row := m.rows[i]
		line := strings.Repeat("  ", row.depth) + treeGlyph(row) + row.label
		if len(line) > width {
			line = line[:width]
		}
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Width(width).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Width(width).Render(line))
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func treeGlyph(n *node) string {
	if len(n.children) == 0 {
		return "  "
	}
	if n.expanded {
		return "▾ "
	}
	return "▸ "
}

// visibleRange computes which rows fit in height, keeping the cursor
// visible (scrolling the minimum amount necessary).
func (m Model) visibleRange(height int) (int, int) {
	if len(m.rows) == 0 {
		return 0, 0
	}
	offset := 0
	if m.cursor >= height {
		offset = m.cursor - height + 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return offset, end
}

func (m Model) renderDetail(width, height int) string {
	n := m.selected()
	text := ""
	if n != nil {
		if n.detail != "" {
			text = n.detail
		} else {
			text = n.label
		}
	}
	return detailStyle.Width(width - 2).Height(height - 2).Render(text)
}
