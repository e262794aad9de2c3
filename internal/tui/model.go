// Package tui renders an emoji picker in the terminal. It is the host
// layer of the core picker: it queries sections and items, and forwards
// exactly two kinds of input back into it — "user picked item at
// position" and "visible sections changed due to scroll".
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runger/emopick/internal/picker"
)

// mode represents the current state of the picker's input machine.
type mode int

const (
	modeBrowse mode = iota // Grid navigation
	modeSearch             // Typing into the search field
)

// rowKind distinguishes grid rows.
type rowKind int

const (
	rowHeader rowKind = iota
	rowItems
)

// row is one renderable grid line: a section header or a run of items.
type row struct {
	kind    rowKind
	section int
	start   int // first item offset for rowItems
}

// position addresses one emoji in the index.
type position struct {
	section int
	offset  int
}

// Layout holds the renderer knobs consumed from configuration.
type Layout struct {
	Columns     int
	ShowHeaders bool
}

// Model is the Bubble Tea model for the emoji picker TUI.
type Model struct {
	picker *picker.Picker
	layout Layout

	mode   mode
	cursor position
	rows   []row // Precomputed grid rows over the full index
	top    int   // First visible row

	input    textinput.Model
	filtered []position // Matches for the current query, index order

	width  int
	height int

	// result holds the picked glyph after the user presses Enter.
	result    string
	cancelled bool
}

// New creates a picker model over a built core picker.
func New(p *picker.Picker, layout Layout) Model {
	if layout.Columns < 1 {
		layout.Columns = 8
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 64

	m := Model{
		picker: p,
		layout: layout,
		input:  ti,
	}
	m.rows = buildRows(p, layout)
	return m
}

// buildRows lays the whole index out as grid rows: one header row per
// section (when enabled) followed by its item rows.
func buildRows(p *picker.Picker, layout Layout) []row {
	var rows []row
	for sec := 0; sec < p.SectionCount(); sec++ {
		if layout.ShowHeaders {
			rows = append(rows, row{kind: rowHeader, section: sec})
		}
		for start := 0; start < p.ItemCount(sec); start += layout.Columns {
			rows = append(rows, row{kind: rowItems, section: sec, start: start})
		}
	}
	return rows
}

// Result returns the picked glyph, or "" when nothing was picked.
func (m Model) Result() string {
	return m.result
}

// Cancelled reports whether the user dismissed without picking.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		m.reportVisible()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeSearch {
		return m.handleSearchKey(msg)
	}

	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		return m.pick(m.cursor)

	case tea.KeyLeft:
		m.moveCursor(-1)
	case tea.KeyRight:
		m.moveCursor(1)
	case tea.KeyUp:
		m.moveCursorRow(-1)
	case tea.KeyDown:
		m.moveCursorRow(1)

	case tea.KeyTab:
		m.jumpSection(1)
	case tea.KeyShiftTab:
		m.jumpSection(-1)

	case tea.KeyRunes:
		if string(msg.Runes) == "/" {
			m.mode = modeSearch
			m.input.Focus()
			return m, textinput.Blink
		}
	}

	m.ensureCursorVisible()
	m.reportVisible()
	return m, nil
}

// handleSearchKey processes input while the search field is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Reset()
		m.input.Blur()
		m.filtered = nil
		return m, nil

	case tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		if len(m.filtered) > 0 {
			return m.pick(m.filtered[0])
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = m.filter(m.input.Value())
	return m, cmd
}

// pick reports the position to the core and quits when the dismiss
// hint says so.
func (m Model) pick(pos position) (tea.Model, tea.Cmd) {
	if m.picker.SectionCount() == 0 {
		return m, nil
	}
	m.picker.ReportPick(pos.section, pos.offset)
	if sel := m.picker.State().Selected(); sel != nil {
		m.result = sel.Glyph
	}
	if m.picker.ShouldDismiss() {
		return m, tea.Quit
	}
	return m, nil
}

// filter returns positions whose identifier contains the query,
// case-insensitive, in index order.
func (m Model) filter(query string) []position {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []position
	for sec := 0; sec < m.picker.SectionCount(); sec++ {
		for off := 0; off < m.picker.ItemCount(sec); off++ {
			if strings.Contains(m.picker.Item(sec, off).ID, query) {
				out = append(out, position{section: sec, offset: off})
			}
		}
	}
	return out
}

// moveCursor advances the cursor by delta items, crossing section
// boundaries.
func (m *Model) moveCursor(delta int) {
	sec, off := m.cursor.section, m.cursor.offset+delta
	for off < 0 && sec > 0 {
		sec--
		off += m.picker.ItemCount(sec)
	}
	for off >= m.picker.ItemCount(sec) && sec < m.picker.SectionCount()-1 {
		off -= m.picker.ItemCount(sec)
		sec++
	}
	m.cursor = clampPosition(m.picker, position{section: sec, offset: off})
}

// moveCursorRow moves the cursor a full grid row up or down.
func (m *Model) moveCursorRow(delta int) {
	m.moveCursor(delta * m.layout.Columns)
}

// jumpSection moves the cursor to the first item of an adjacent section.
func (m *Model) jumpSection(delta int) {
	if m.picker.SectionCount() == 0 {
		return
	}
	sec := m.cursor.section + delta
	if sec < 0 {
		sec = 0
	}
	if sec >= m.picker.SectionCount() {
		sec = m.picker.SectionCount() - 1
	}
	m.cursor = position{section: sec, offset: 0}
}

// clampPosition bounds a position to the index. An empty index pins
// the cursor at the origin.
func clampPosition(p *picker.Picker, pos position) position {
	if p.SectionCount() == 0 {
		return position{}
	}
	if pos.section < 0 {
		pos.section = 0
	}
	if pos.section >= p.SectionCount() {
		pos.section = p.SectionCount() - 1
	}
	if pos.offset < 0 {
		pos.offset = 0
	}
	if n := p.ItemCount(pos.section); pos.offset >= n {
		pos.offset = n - 1
	}
	return pos
}

// cursorRow returns the grid row index holding the cursor.
func (m Model) cursorRow() int {
	for i, r := range m.rows {
		if r.kind != rowItems || r.section != m.cursor.section {
			continue
		}
		if m.cursor.offset >= r.start && m.cursor.offset < r.start+m.layout.Columns {
			return i
		}
	}
	return 0
}

// visibleRowCount returns how many grid rows fit on screen.
func (m Model) visibleRowCount() int {
	// 1 row for the search line, 1 row for the status line
	const chrome = 2
	h := m.height - chrome
	if h < 1 {
		h = 12 // Sensible default before first WindowSizeMsg
	}
	return h
}

// ensureCursorVisible scrolls the viewport to keep the cursor row on
// screen.
func (m *Model) ensureCursorVisible() {
	cur := m.cursorRow()
	visible := m.visibleRowCount()
	if cur < m.top {
		m.top = cur
	}
	if cur >= m.top+visible {
		m.top = cur - visible + 1
	}
	if m.top < 0 {
		m.top = 0
	}
}

// reportVisible derives the set of sections with at least one row on
// screen and forwards it to the core, smallest first.
func (m Model) reportVisible() {
	seen := map[int]bool{}
	var visible []int
	end := m.top + m.visibleRowCount()
	for i := m.top; i < end && i < len(m.rows); i++ {
		sec := m.rows[i].section
		if !seen[sec] {
			seen[sec] = true
			visible = append(visible, sec)
		}
	}
	// Rows are in section order, so visible is already ascending.
	m.picker.ReportVisibleSections(visible)
}
