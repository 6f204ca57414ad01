package yearpicker

import (
	"github.com/alexisbeaulieu97/yearpick/internal/picker"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewCalendar ViewMode = iota
	ViewYears
)

// InputsUpdatedMsg replaces the host inputs, e.g. after the config file changed.
type InputsUpdatedMsg struct {
	Inputs picker.Inputs
}

// ThemeChangedMsg switches to the named theme.
type ThemeChangedMsg struct {
	Name string
}

// ErrorMsg shows an error banner.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}

// eventQueue collects controller events raised during a single Update so
// they can be applied to the model once the controller call returns.
type eventQueue struct {
	events []picker.Event
}

func (q *eventQueue) push(e picker.Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) drain() []picker.Event {
	out := q.events
	q.events = nil
	return out
}
