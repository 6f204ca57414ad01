package yearpicker

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the picker.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Dismiss    key.Binding

	// Paging
	PrevYear key.Binding
	NextYear key.Binding
	Today    key.Binding
	YearList key.Binding

	// Day cursor
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	// Selection
	Tap     key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Dismiss error"),
		),

		PrevYear: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[/pgup", "Previous year"),
		),
		NextYear: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]/pgdown", "Next year"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Today"),
		),
		YearList: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Year list"),
		),

		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous week"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next week"),
		),

		Tap: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Select day"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Confirm and exit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevYear, k.NextYear, k.Tap, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevYear, k.NextYear, k.Today, k.YearList},
		{k.Tap, k.Confirm},
		{k.CycleTheme, k.Dismiss, k.Help, k.Quit},
	}
}
