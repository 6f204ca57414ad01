package picker

import (
	"time"

	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
	"github.com/alexisbeaulieu97/yearpick/internal/logger"
	apperrors "github.com/alexisbeaulieu97/yearpick/pkg/errors"
)

// Inputs are the host-supplied values the controller is configured from.
// Time-of-day components are ignored everywhere.
type Inputs struct {
	MinDate      time.Time
	MaxDate      time.Time
	InitialDate  *time.Time
	CurrentDate  *time.Time
	SelectedDate *time.Time
}

// Option customises a Controller.
type Option func(*Controller)

// WithClock sets the source of "today".
func WithClock(c Clock) Option {
	return func(ctrl *Controller) {
		if c != nil {
			ctrl.clock = c
		}
	}
}

// WithLogger attaches a logger for transition tracing.
func WithLogger(l *logger.Logger) Option {
	return func(ctrl *Controller) {
		ctrl.log = l.WithFields(map[string]any{"component": "picker"})
	}
}

// WithOnDateSelected registers fn as a DateSelected subscriber.
func WithOnDateSelected(fn func(calendar.Date)) Option {
	return func(ctrl *Controller) {
		if fn == nil {
			return
		}
		ctrl.Subscribe(func(e Event) {
			if sel, ok := e.(DateSelected); ok {
				fn(sel.Date)
			}
		})
	}
}

// WithOnLeadingDateTap registers fn as a LeadingDateTapped subscriber.
func WithOnLeadingDateTap(fn func()) Option {
	return func(ctrl *Controller) {
		if fn == nil {
			return
		}
		ctrl.Subscribe(func(e Event) {
			if _, ok := e.(LeadingDateTapped); ok {
				fn()
			}
		})
	}
}

// Controller owns the displayed year and the selected date. It is driven
// synchronously from a single goroutine and is not safe for concurrent use.
type Controller struct {
	rng       calendar.Range
	seq       Sequencer
	displayed calendar.Date
	selected  *calendar.Date
	current   *calendar.Date

	clock  Clock
	log    *logger.Logger
	subs   []subscriber
	nextID int
}

// New validates the range and initial date and builds a Controller.
//
// The selected date is taken as given without a range check.
func New(in Inputs, opts ...Option) (*Controller, error) {
	c := &Controller{clock: RealClock{}}
	for _, opt := range opts {
		opt(c)
	}

	rng, err := calendar.NewRange(calendar.DateOnly(in.MinDate), calendar.DateOnly(in.MaxDate))
	if err != nil {
		c.log.Error(err, "invalid range")
		return nil, err
	}

	if initial := calendar.DateOnlyPtr(in.InitialDate); initial != nil {
		if initial.Before(rng.Min) {
			err := apperrors.NewOutOfRangeError(*initial, apperrors.BoundMin, rng.Min)
			c.log.Error(err, "initial date out of range")
			return nil, err
		}
		if initial.After(rng.Max) {
			err := apperrors.NewOutOfRangeError(*initial, apperrors.BoundMax, rng.Max)
			c.log.Error(err, "initial date out of range")
			return nil, err
		}
	}

	c.rng = rng
	c.seq = NewSequencer(rng)
	c.displayed = c.dateOrToday(in.InitialDate)
	c.selected = calendar.DateOnlyPtr(in.SelectedDate)
	c.current = calendar.DateOnlyPtr(in.CurrentDate)

	c.log.Debug("initialized",
		"range", rng.String(),
		"displayed", c.displayed.String(),
		"page", c.PageIndex(),
	)
	return c, nil
}

// Range returns the configured range.
func (c *Controller) Range() calendar.Range { return c.rng }

// Sequencer returns the page sequencer for the current range.
func (c *Controller) Sequencer() Sequencer { return c.seq }

// DisplayedYear returns the date whose year is on screen.
func (c *Controller) DisplayedYear() calendar.Date { return c.displayed }

// SelectedDate returns the selection, if any.
func (c *Controller) SelectedDate() (calendar.Date, bool) {
	if c.selected == nil {
		return calendar.Date{}, false
	}
	return *c.selected, true
}

// CurrentDate returns the date highlighted as "today".
func (c *Controller) CurrentDate() calendar.Date {
	if c.current != nil {
		return *c.current
	}
	return calendar.DateOnly(c.clock.Now())
}

// PageIndex returns the page of the displayed year.
func (c *Controller) PageIndex() int {
	return c.seq.InitialPageIndex(c.displayed)
}

// Subscribe registers fn for every emitted event. Events are delivered
// synchronously in registration order. The returned func unsubscribes.
func (c *Controller) Subscribe(fn func(Event)) func() {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// OnPageNavigated shows the year of page index.
func (c *Controller) OnPageNavigated(index int) {
	c.displayed = c.seq.YearFromIndex(index)
	c.log.Debug("page navigated", "transition", "page", "index", index, "year", c.displayed.Year)
}

// OnDateTapped selects date and emits DateSelected, even if it was already selected.
func (c *Controller) OnDateTapped(date time.Time) {
	d := calendar.DateOnly(date)
	c.selected = &d
	c.log.Debug("date tapped", "transition", "tap", "date", d.String())
	c.emit(DateSelected{Date: d})
}

// OnLeadingDateTap forwards a header label activation to subscribers.
func (c *Controller) OnLeadingDateTap() {
	c.emit(LeadingDateTapped{})
}

// Next moves one page forward. It returns false on the last page.
func (c *Controller) Next() bool {
	return c.step(c.seq.Next)
}

// Previous moves one page back. It returns false on the first page.
func (c *Controller) Previous() bool {
	return c.step(c.seq.Previous)
}

func (c *Controller) step(move func(int) int) bool {
	from := c.PageIndex()
	to := move(from)
	if to == from {
		return false
	}
	c.OnPageNavigated(to)
	c.emit(PageJumpRequested{Index: to, Animated: true})
	return true
}

// OnInputsUpdated resynchronises state after the host changed its inputs.
//
// A changed range is re-validated first; on failure nothing changes.
// A changed initial date moves the displayed year and requests an immediate
// jump. A selected date that differs from the current selection replaces it.
func (c *Controller) OnInputsUpdated(previous, current Inputs) error {
	jumped := false

	lo, hi := calendar.DateOnly(current.MinDate), calendar.DateOnly(current.MaxDate)
	if lo != c.rng.Min || hi != c.rng.Max {
		rng, err := calendar.NewRange(lo, hi)
		if err != nil {
			c.log.Error(err, "rejected range update")
			return err
		}
		c.rng = rng
		c.seq = NewSequencer(rng)
		if idx := c.PageIndex(); idx != c.seq.Clamp(idx) {
			c.displayed = c.seq.YearFromIndex(idx)
			jumped = true
		}
		c.log.Debug("range updated", "transition", "inputs", "range", rng.String())
	}

	if !sameDate(calendar.DateOnlyPtr(current.InitialDate), calendar.DateOnlyPtr(previous.InitialDate)) {
		c.displayed = c.dateOrToday(current.InitialDate)
		jumped = true
		c.log.Debug("initial date updated", "transition", "inputs", "year", c.displayed.Year)
	}

	if next := calendar.DateOnlyPtr(current.SelectedDate); !sameDate(next, c.selected) {
		c.selected = next
		c.log.Debug("selection updated", "transition", "inputs", "selected", next != nil)
	}

	c.current = calendar.DateOnlyPtr(current.CurrentDate)

	if jumped {
		c.emit(PageJumpRequested{Index: c.PageIndex(), Animated: false})
	}
	return nil
}

func (c *Controller) dateOrToday(t *time.Time) calendar.Date {
	if t != nil {
		return calendar.DateOnly(*t)
	}
	return calendar.DateOnly(c.clock.Now())
}

func (c *Controller) emit(e Event) {
	for _, s := range append([]subscriber(nil), c.subs...) {
		s.fn(e)
	}
}

func sameDate(a, b *calendar.Date) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
