package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cellWidth is the rendered width of one grid cell. Most emoji render
// two columns wide; one more for breathing room.
const cellWidth = 3

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	activeHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	cursorStyle       = lipgloss.NewStyle().Background(lipgloss.Color("62"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	queryStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewSearch())
	b.WriteRune('\n')

	if m.mode == modeSearch && m.input.Value() != "" {
		b.WriteString(m.viewFiltered())
	} else {
		b.WriteString(m.viewGrid())
	}
	b.WriteRune('\n')

	b.WriteString(m.viewStatus())
	return b.String()
}

// viewSearch renders the search line.
func (m Model) viewSearch() string {
	if m.mode == modeSearch {
		return m.input.View()
	}
	return queryStyle.Render("/ to search")
}

// viewGrid renders the visible slice of grid rows.
func (m Model) viewGrid() string {
	var lines []string
	active := m.picker.State().ActiveSection()
	end := m.top + m.visibleRowCount()

	for i := m.top; i < end && i < len(m.rows); i++ {
		r := m.rows[i]
		switch r.kind {
		case rowHeader:
			label := m.picker.CategoryHeader(r.section).Label()
			if r.section == active {
				lines = append(lines, activeHeaderStyle.Render(" "+label+" "))
			} else {
				lines = append(lines, headerStyle.Render(label))
			}
		case rowItems:
			lines = append(lines, m.viewItemRow(r))
		}
	}
	return strings.Join(lines, "\n")
}

// viewItemRow renders one run of glyph cells.
func (m Model) viewItemRow(r row) string {
	var b strings.Builder
	count := m.picker.ItemCount(r.section)
	for off := r.start; off < r.start+m.layout.Columns && off < count; off++ {
		cell := padGlyph(m.picker.Item(r.section, off).Glyph)
		if m.mode == modeBrowse && r.section == m.cursor.section && off == m.cursor.offset {
			b.WriteString(cursorStyle.Render(cell))
		} else {
			b.WriteString(cell)
		}
	}
	return b.String()
}

// viewFiltered renders search matches as a single flat grid.
func (m Model) viewFiltered() string {
	if len(m.filtered) == 0 {
		return statusStyle.Render("No matches")
	}
	var lines []string
	var b strings.Builder
	for i, pos := range m.filtered {
		cell := padGlyph(m.picker.Item(pos.section, pos.offset).Glyph)
		if i == 0 {
			b.WriteString(cursorStyle.Render(cell))
		} else {
			b.WriteString(cell)
		}
		if (i+1)%m.layout.Columns == 0 {
			lines = append(lines, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// viewStatus renders the status line: active category and counts.
func (m Model) viewStatus() string {
	if m.picker.SectionCount() == 0 {
		return statusStyle.Render("empty catalog")
	}
	active := m.picker.State().ActiveSection()
	label := m.picker.CategoryHeader(active).Label()
	return statusStyle.Render(fmt.Sprintf("%s · %d/%d · enter pick · esc cancel",
		label, active+1, m.picker.SectionCount()))
}

// padGlyph pads a glyph to the fixed cell width, accounting for
// double-width emoji.
func padGlyph(glyph string) string {
	w := runewidth.StringWidth(glyph)
	if w >= cellWidth {
		return glyph + " "
	}
	return glyph + strings.Repeat(" ", cellWidth-w)
}
