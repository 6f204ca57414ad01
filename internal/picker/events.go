package picker

import (
	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
)

// Event is emitted by the Controller after a transition.
type Event interface {
	event()
}

// DateSelected is emitted for every tapped date, including repeats.
type DateSelected struct {
	Date calendar.Date
}

// PageJumpRequested asks the page view to show Index. Animated is false for
// jumps caused by input updates and true for user navigation.
type PageJumpRequested struct {
	Index    int
	Animated bool
}

// LeadingDateTapped is emitted when the header label is activated.
type LeadingDateTapped struct{}

func (DateSelected) event()      {}
func (PageJumpRequested) event() {}
func (LeadingDateTapped) event() {}

type subscriber struct {
	id int
	fn func(Event)
}
