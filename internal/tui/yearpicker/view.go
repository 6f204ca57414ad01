package yearpicker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// yearListHeight is the number of years shown at once in the year list.
const yearListHeight = 10

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	content.WriteString(m.styles.header.Render(m.header().Render(m.bundle.Background)))
	content.WriteString("\n")

	if m.err != nil {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	switch m.viewMode {
	case ViewYears:
		content.WriteString(m.renderYearList())
	default:
		content.WriteString(m.grid().Render())
	}
	content.WriteString("\n")

	content.WriteString(m.renderStatus())
	content.WriteString("\n")
	content.WriteString(lipgloss.PlaceHorizontal(gridWidth(), lipgloss.Center, m.pager.View()))
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

// renderErrorBanner renders the last error
func (m Model) renderErrorBanner() string {
	return m.styles.errorBanner.Render("⚠ " + m.err.Error())
}

// renderStatus shows the focused and selected dates
func (m Model) renderStatus() string {
	selected := "none"
	if sel, ok := m.ctrl.SelectedDate(); ok {
		selected = sel.String()
	}
	line := fmt.Sprintf("Focused %s  •  Selected %s  •  Theme %s", m.cursor, selected, m.themeName)
	return m.styles.status.Render(line)
}

// renderYearList renders a scrolling window of years around the cursor
func (m Model) renderYearList() string {
	seq := m.ctrl.Sequencer()
	total := seq.YearsCount()
	current := m.ctrl.CurrentDate().Year

	start := m.yearCursor - yearListHeight/2
	if start > total-yearListHeight {
		start = total - yearListHeight
	}
	if start < 0 {
		start = 0
	}
	end := start + yearListHeight
	if end > total {
		end = total
	}

	var items []string
	if start > 0 {
		items = append(items, m.styles.muted.Render("▲ More above"))
	}
	for i := start; i < end; i++ {
		year := seq.YearFromIndex(i).Year
		label := strconv.Itoa(year)
		switch {
		case i == m.yearCursor:
			items = append(items, m.styles.listCursor.Render(label))
		case year == current:
			items = append(items, m.styles.listCurrent.Render(label))
		default:
			items = append(items, m.styles.listItem.Render(label))
		}
	}
	if end < total {
		items = append(items, m.styles.muted.Render("▼ More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderFooter renders the key help
func (m Model) renderFooter() string {
	return m.styles.footer.Render(m.help.View(m.keys))
}
