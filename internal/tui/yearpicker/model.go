package yearpicker

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
	"github.com/alexisbeaulieu97/yearpick/internal/logger"
	"github.com/alexisbeaulieu97/yearpick/internal/picker"
	"github.com/alexisbeaulieu97/yearpick/internal/style"
	"github.com/alexisbeaulieu97/yearpick/internal/theme"
)

// maxDots is the page count above which the paginator switches to "n/m".
const maxDots = 15

// Model is the year picker model
type Model struct {
	// Core data
	ctrl   *picker.Controller
	inputs picker.Inputs
	events *eventQueue

	// UI state
	viewMode   ViewMode
	cursor     calendar.Date
	yearCursor int

	// Styling
	themeName string
	theme     theme.Theme
	overrides style.Overrides
	bundle    style.Bundle
	styles    styles

	// Components
	keys  keyMap
	help  help.Model
	pager paginator.Model

	// Outcome
	result    calendar.Date
	hasResult bool
	quitting  bool
	err       error

	// Dimensions
	width  int
	height int

	// Configuration
	confirmOnSelect bool
	log             *logger.Logger
}

// Option customises a Model.
type Option func(*Model)

// WithTheme selects the starting theme. Unknown names use the default.
func WithTheme(name string) Option {
	return func(m *Model) {
		if _, ok := theme.Get(name); ok {
			m.themeName = name
		}
	}
}

// WithOverrides sets the caller-supplied style overrides.
func WithOverrides(o style.Overrides) Option {
	return func(m *Model) {
		m.overrides = o
	}
}

// WithConfirmOnSelect quits as soon as a date is tapped.
func WithConfirmOnSelect(confirm bool) Option {
	return func(m *Model) {
		m.confirmOnSelect = confirm
	}
}

// WithLogger attaches a logger.
func WithLogger(l *logger.Logger) Option {
	return func(m *Model) {
		m.log = l.WithFields(map[string]any{"component": "tui"})
	}
}

// NewModel creates a model around ctrl. in must be the inputs ctrl was built
// from; later InputsUpdatedMsg values are diffed against it.
func NewModel(ctrl *picker.Controller, in picker.Inputs, opts ...Option) Model {
	p := paginator.New()
	p.Type = paginator.Dots

	m := Model{
		ctrl:      ctrl,
		inputs:    in,
		events:    &eventQueue{},
		viewMode:  ViewCalendar,
		themeName: theme.DefaultName,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		pager:     p,
		width:     80,
		height:    24,
	}
	for _, opt := range opts {
		opt(&m)
	}

	ctrl.Subscribe(m.events.push)

	m.applyTheme(m.themeName)
	m.resetPager()
	m.cursor = m.initialFocus()

	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// Result returns the date confirmed on exit.
func (m Model) Result() (calendar.Date, bool) {
	return m.result, m.hasResult
}

// Cursor returns the focused day.
func (m Model) Cursor() calendar.Date {
	return m.cursor
}

// ThemeName returns the active theme.
func (m Model) ThemeName() string {
	return m.themeName
}

// GetViewMode returns the current view mode
func (m Model) GetViewMode() ViewMode {
	return m.viewMode
}

// Err returns the error shown in the banner, if any.
func (m Model) Err() error {
	return m.err
}

// Helper Methods

func (m *Model) applyTheme(name string) {
	m.themeName = name
	m.theme = theme.MustGet(name)
	m.bundle = style.Resolve(m.overrides, m.theme.Palette())
	m.styles = newStyles(m.theme, m.bundle)
	m.pager.ActiveDot = m.styles.activeDot.Render("•")
	m.pager.InactiveDot = m.styles.inactiveDot.Render("•")
}

func (m *Model) resetPager() {
	seq := m.ctrl.Sequencer()
	m.pager.SetTotalPages(seq.YearsCount())
	if seq.YearsCount() > maxDots {
		m.pager.Type = paginator.Arabic
	} else {
		m.pager.Type = paginator.Dots
	}
	m.pager.Page = seq.Clamp(m.ctrl.PageIndex())
}

// initialFocus prefers the selection, then today, then the displayed date,
// whichever lies in the displayed year.
func (m *Model) initialFocus() calendar.Date {
	year := m.ctrl.DisplayedYear().Year
	if sel, ok := m.ctrl.SelectedDate(); ok && sel.Year == year {
		return sel
	}
	if cur := m.ctrl.CurrentDate(); cur.Year == year {
		return cur
	}
	return m.ctrl.DisplayedYear()
}

// alignCursor moves the cursor into the displayed year, keeping its month
// and day where the calendar allows.
func (m *Model) alignCursor() {
	year := m.ctrl.DisplayedYear().Year
	if m.cursor.Year != year {
		m.cursor = m.cursor.WithYear(year)
	}
	m.pager.Page = m.ctrl.Sequencer().Clamp(m.ctrl.PageIndex())
}

func (m *Model) grid() MonthGrid {
	g := MonthGrid{
		Year:    m.ctrl.DisplayedYear().Year,
		Range:   m.ctrl.Range(),
		Current: m.ctrl.CurrentDate(),
		Focus:   m.cursor,
		Bundle:  m.bundle,
		Muted:   m.theme.MutedColor(),
	}
	if sel, ok := m.ctrl.SelectedDate(); ok {
		g.Selected = &sel
	}
	return g
}

func (m *Model) header() Header {
	seq := m.ctrl.Sequencer()
	idx := m.ctrl.PageIndex()
	return Header{
		Label:    strconv.Itoa(m.ctrl.DisplayedYear().Year),
		Centered: true,
		Width:    gridWidth(),
		Text:     m.bundle.LeadingLabel,
		NavColor: m.bundle.NavColor,
		NavSize:  m.bundle.NavSize,
		CanPrev:  seq.CanPrevious(idx),
		CanNext:  seq.CanNext(idx),
	}
}
