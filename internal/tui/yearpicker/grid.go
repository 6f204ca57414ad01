package yearpicker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
	"github.com/alexisbeaulieu97/yearpick/internal/style"
)

const (
	monthsPerRow = 3
	weekRows     = 6
	cellWidth    = 4
	monthWidth   = 7 * cellWidth
	monthGap     = 2
)

var weekdayLabels = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// CellState is the presentation state of a day cell.
type CellState int

const (
	CellEnabled CellState = iota
	CellDisabled
	CellCurrent
	CellSelected
)

// MonthGrid renders the twelve months of one year.
type MonthGrid struct {
	Year     int
	Range    calendar.Range
	Current  calendar.Date
	Selected *calendar.Date
	Focus    calendar.Date
	Bundle   style.Bundle
	Muted    style.Color
}

// State returns the state d is drawn in. Selected wins over current, which
// wins over disabled.
func (g MonthGrid) State(d calendar.Date) CellState {
	switch {
	case g.Selected != nil && *g.Selected == d:
		return CellSelected
	case d == g.Current:
		return CellCurrent
	case !g.Range.Contains(d):
		return CellDisabled
	default:
		return CellEnabled
	}
}

// Tap returns d when it is selectable. Out-of-range dates are never reported.
func (g MonthGrid) Tap(d calendar.Date) (calendar.Date, bool) {
	if !g.Range.Contains(d) {
		return calendar.Date{}, false
	}
	return d, true
}

func (g MonthGrid) cell(state CellState) style.Cell {
	switch state {
	case CellSelected:
		return g.Bundle.Selected
	case CellCurrent:
		return g.Bundle.Current
	case CellDisabled:
		return g.Bundle.Disabled
	default:
		return g.Bundle.Enabled
	}
}

// focusCell marks the cursor with the highlight colour. A selected cell
// keeps its fill.
func (g MonthGrid) focusCell(c style.Cell) style.Cell {
	if c.Shape.Kind == style.ShapeCircleFilled {
		c.Text.Weight = style.WeightBold
		return c
	}
	c.Shape = style.Shape{Kind: style.ShapeCircleFilled, Fill: g.Bundle.Highlight}
	return c
}

// Render draws the year as rows of monthsPerRow months.
func (g MonthGrid) Render() string {
	var rows []string
	for first := time.January; first <= time.December; first += monthsPerRow {
		var months []string
		for m := first; m < first+monthsPerRow && m <= time.December; m++ {
			if len(months) > 0 {
				months = append(months, strings.Repeat(" ", monthGap))
			}
			months = append(months, g.renderMonth(m))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, months...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g MonthGrid) renderMonth(month time.Month) string {
	bg := g.Bundle.Background

	title := g.Bundle.LeadingLabel
	title.Weight = style.WeightBold
	titleStyle := title.Lipgloss(bg).Width(monthWidth).Align(lipgloss.Center)
	if g.Focus.Year == g.Year && g.Focus.Month == month {
		titleStyle = titleStyle.Background(g.Bundle.Splash.Flatten(bg))
	}

	mutedStyle := lipgloss.NewStyle().Foreground(g.Muted.Flatten(bg))
	var weekdays strings.Builder
	for _, label := range weekdayLabels {
		weekdays.WriteString(mutedStyle.Render(" " + label + " "))
	}

	lines := []string{titleStyle.Render(month.String()), weekdays.String()}

	days := calendar.DaysInMonth(g.Year, month)
	// Monday-first column of the 1st.
	offset := (int(calendar.New(g.Year, month, 1).Weekday()) + 6) % 7
	blank := strings.Repeat(" ", cellWidth)

	day := 1 - offset
	for row := 0; row < weekRows; row++ {
		var line strings.Builder
		for col := 0; col < 7; col++ {
			if day < 1 || day > days {
				line.WriteString(blank)
			} else {
				line.WriteString(g.renderDay(calendar.New(g.Year, month, day)))
			}
			day++
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

func (g MonthGrid) renderDay(d calendar.Date) string {
	c := g.cell(g.State(d))
	if d == g.Focus {
		c = g.focusCell(c)
	}
	return c.Render(fmt.Sprintf("%2d", d.Day), g.Bundle.Background)
}

// Header is the year label with previous/next controls.
type Header struct {
	Label    string
	Centered bool
	Width    int
	Text     style.TextStyle
	NavColor style.Color
	NavSize  int
	CanPrev  bool
	CanNext  bool
}

// arrows returns heavier glyphs for larger navigation sizes.
func (h Header) arrows() (string, string) {
	if h.NavSize >= style.DefaultNavSize {
		return "◀", "▶"
	}
	return "‹", "›"
}

// Render draws the header over bg.
func (h Header) Render(bg style.Color) string {
	prev, next := h.arrows()
	nav := func(glyph string, enabled bool) string {
		c := h.NavColor
		if !enabled {
			c = c.WithAlpha(style.DisabledOpacity)
		}
		return lipgloss.NewStyle().Foreground(c.Flatten(bg)).Render(glyph)
	}

	line := nav(prev, h.CanPrev) + "  " + h.Text.Lipgloss(bg).Render(h.Label) + "  " + nav(next, h.CanNext)
	if !h.Centered || h.Width <= 0 {
		return line
	}
	return lipgloss.PlaceHorizontal(h.Width, lipgloss.Center, line)
}

// gridWidth is the rendered width of a full MonthGrid.
func gridWidth() int {
	return monthsPerRow*monthWidth + (monthsPerRow-1)*monthGap
}
