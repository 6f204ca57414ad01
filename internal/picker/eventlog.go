package picker

import (
	"github.com/alexisbeaulieu97/yearpick/internal/logger"
)

// EventType returns the name an event is logged under.
func EventType(e Event) string {
	switch e.(type) {
	case DateSelected:
		return "date_selected"
	case PageJumpRequested:
		return "page_jump_requested"
	case LeadingDateTapped:
		return "leading_date_tapped"
	default:
		return "unknown"
	}
}

// LogEvents writes every event c emits as a structured log entry until the
// returned func is called.
func LogEvents(c *Controller, log *logger.Logger) func() {
	return c.Subscribe(func(e Event) {
		fields := []any{"event_type", EventType(e)}
		switch payload := e.(type) {
		case DateSelected:
			fields = append(fields, "date", payload.Date.String())
		case PageJumpRequested:
			fields = append(fields, "index", payload.Index, "animated", payload.Animated)
		}
		log.Info("picker event", fields...)
	})
}
