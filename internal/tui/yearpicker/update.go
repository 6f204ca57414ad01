package yearpicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yearpick/internal/picker"
	"github.com/alexisbeaulieu97/yearpick/internal/theme"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Host messages
	case InputsUpdatedMsg:
		if err := m.ctrl.OnInputsUpdated(m.inputs, msg.Inputs); err != nil {
			m.log.Warn("inputs update rejected", "error", err.Error())
			m.err = err
			return m, nil
		}
		m.inputs = msg.Inputs
		m.err = nil
		m.resetPager()
		m.alignCursor()
		return m.applyEvents()

	case ThemeChangedMsg:
		if _, ok := theme.Get(msg.Name); ok {
			m.applyTheme(msg.Name)
		}
		return m, nil

	// Error messages
	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ClearErrorMsg:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewYears:
		return m.handleYearListKeys(msg)
	default:
		return m.handleCalendarKeys(msg)
	}
}

// handleCalendarKeys handles keys on the month grid
func (m Model) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.err = nil
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.hasResult = false
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(theme.Next(m.themeName))
		m.log.Debug("theme changed", "theme", m.themeName)
		return m, nil

	// Paging
	case key.Matches(msg, m.keys.PrevYear):
		m.ctrl.Previous()
		return m.applyEvents()

	case key.Matches(msg, m.keys.NextYear):
		m.ctrl.Next()
		return m.applyEvents()

	case key.Matches(msg, m.keys.Today):
		today := m.ctrl.CurrentDate()
		m.ctrl.OnPageNavigated(m.ctrl.Sequencer().IndexFromYear(today.Year))
		m.cursor = m.ctrl.Range().Clamp(today)
		m.alignCursor()
		return m, nil

	case key.Matches(msg, m.keys.YearList):
		m.ctrl.OnLeadingDateTap()
		return m.applyEvents()

	// Day cursor
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1)

	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1)

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-7)

	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(7)

	// Selection
	case key.Matches(msg, m.keys.Tap):
		if d, ok := m.grid().Tap(m.cursor); ok {
			m.ctrl.OnDateTapped(d.Time())
		}
		return m.applyEvents()

	case key.Matches(msg, m.keys.Confirm):
		sel, ok := m.ctrl.SelectedDate()
		if !ok {
			return m, nil
		}
		m.result = sel
		m.hasResult = true
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleYearListKeys handles keys in the year list
func (m Model) handleYearListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := m.ctrl.Sequencer().YearsCount() - 1

	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.YearList):
		m.ctrl.OnLeadingDateTap()
		return m.applyEvents()

	case msg.String() == "esc", msg.String() == "q":
		m.viewMode = ViewCalendar
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.PrevYear):
		if m.yearCursor > 0 {
			m.yearCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.NextYear):
		if m.yearCursor < last {
			m.yearCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Tap):
		m.ctrl.OnPageNavigated(m.yearCursor)
		m.alignCursor()
		m.viewMode = ViewCalendar
		return m, nil
	}

	return m, nil
}

// moveCursor shifts the focused day by delta days. Crossing into another
// year pages the controller; the cursor stops at the first and last page.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	next := m.cursor.AddDays(delta)
	year := m.ctrl.DisplayedYear().Year

	switch {
	case next.Year == year:
		m.cursor = next
		return m, nil
	case next.Year > year:
		if !m.ctrl.Next() {
			return m, nil
		}
	default:
		if !m.ctrl.Previous() {
			return m, nil
		}
	}

	m.cursor = next
	return m.applyEvents()
}

// applyEvents reacts to everything the controller emitted since the last call.
func (m Model) applyEvents() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	for _, e := range m.events.drain() {
		switch e := e.(type) {
		case picker.PageJumpRequested:
			m.log.Debug("page jump", "index", e.Index, "animated", e.Animated)
			m.alignCursor()

		case picker.DateSelected:
			m.cursor = e.Date
			m.alignCursor()
			if m.confirmOnSelect {
				m.result = e.Date
				m.hasResult = true
				m.quitting = true
				cmds = append(cmds, tea.Quit)
			}

		case picker.LeadingDateTapped:
			m.toggleYearList()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) toggleYearList() {
	if m.viewMode == ViewYears {
		m.viewMode = ViewCalendar
		return
	}
	m.viewMode = ViewYears
	m.yearCursor = m.ctrl.Sequencer().Clamp(m.ctrl.PageIndex())
}
