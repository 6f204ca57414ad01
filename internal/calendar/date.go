package calendar

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"

	apperrors "github.com/alexisbeaulieu97/yearpick/pkg/errors"
)

// Layout is the textual form used for dates on the command line and in config files.
const Layout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
// The zero value is not a valid date; use IsZero to detect it.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for year, month and day, normalising overflowing
// values the same way time.Date does (e.g. 2023-02-30 becomes 2023-03-02).
func New(year int, month time.Month, day int) Date {
	return DateOnly(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOnly discards the time-of-day of t, keeping the calendar date in t's location.
func DateOnly(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateOnlyPtr normalises an optional input, preserving absence.
func DateOnlyPtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := DateOnly(*t)
	return &d
}

// Parse reads a YYYY-MM-DD date.
func Parse(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	t, err := time.Parse(Layout, trimmed)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return DateOnly(t), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(value string) Date {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 when d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOnly(d.Time().AddDate(0, 0, n))
}

// WithYear moves d into year, clamping the day for short months (29 Feb).
func (d Date) WithYear(year int) Date {
	day := d.Day
	if last := DaysInMonth(year, d.Month); day > last {
		day = last
	}
	return Date{Year: year, Month: d.Month, Day: day}
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysInMonth returns the number of days in month for year.
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsLeap reports whether year is a leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// Range is an inclusive span of dates.
type Range struct {
	Min Date
	Max Date
}

// NewRange validates that min does not come after max.
func NewRange(min, max Date) (Range, error) {
	if min.After(max) {
		return Range{}, apperrors.NewRangeConfigurationError(min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Contains reports whether d lies within the range, bounds included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Min) && !d.After(r.Max)
}

// Clamp returns d moved onto the nearest bound when it falls outside the range.
func (r Range) Clamp(d Date) Date {
	switch {
	case d.Before(r.Min):
		return r.Min
	case d.After(r.Max):
		return r.Max
	default:
		return d
	}
}

// YearsCount returns the number of calendar years the range touches.
func (r Range) YearsCount() int {
	return r.Max.Year - r.Min.Year + 1
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Min, r.Max)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
