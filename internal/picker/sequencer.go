package picker

import (
	"github.com/alexisbeaulieu97/yearpick/internal/calendar"
)

// Sequencer maps zero-based page indices to calendar years within a range.
// Page 0 is the year of the range minimum; the last page is the year of the maximum.
type Sequencer struct {
	rng calendar.Range
}

// NewSequencer returns a sequencer over r.
func NewSequencer(r calendar.Range) Sequencer {
	return Sequencer{rng: r}
}

// YearsCount returns the number of pages.
func (s Sequencer) YearsCount() int {
	return s.rng.YearsCount()
}

// YearFromIndex returns the page's year as a date carrying the range
// minimum's month and day. Out-of-range indices are clamped.
func (s Sequencer) YearFromIndex(index int) calendar.Date {
	index = s.Clamp(index)
	return s.rng.Min.WithYear(s.rng.Min.Year + index)
}

// IndexFromYear returns the page index for year. It is not clamped.
func (s Sequencer) IndexFromYear(year int) int {
	return year - s.rng.Min.Year
}

// InitialPageIndex returns the page showing displayed.
func (s Sequencer) InitialPageIndex(displayed calendar.Date) int {
	return s.IndexFromYear(displayed.Year)
}

// Clamp limits index to the valid page range.
func (s Sequencer) Clamp(index int) int {
	switch last := s.YearsCount() - 1; {
	case index < 0:
		return 0
	case index > last:
		return last
	default:
		return index
	}
}

// Next returns the page after index, staying put on the last page. An index
// below the range lands on the first page.
func (s Sequencer) Next(index int) int {
	if index < 0 {
		return 0
	}
	return s.Clamp(index + 1)
}

// Previous returns the page before index, staying put on the first page. An
// index above the range lands on the last page.
func (s Sequencer) Previous(index int) int {
	if last := s.YearsCount() - 1; index > last {
		return last
	}
	return s.Clamp(index - 1)
}

// CanNext reports whether a next page exists.
func (s Sequencer) CanNext(index int) bool {
	return index < s.YearsCount()-1
}

// CanPrevious reports whether a previous page exists.
func (s Sequencer) CanPrevious(index int) bool {
	return index > 0
}
