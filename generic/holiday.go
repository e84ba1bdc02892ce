package generic

import "sort"

// =============================================================================
// HOLIDAY CALENDAR - Non-working days
// =============================================================================

// Holiday is a named non-working day.
type Holiday struct {
	Date Date
	Name string
}

// HolidayCalendar answers whether a calendar day is a non-working holiday.
// Implementations must be safe for concurrent reads.
type HolidayCalendar interface {
	// IsHoliday reports whether date is a holiday.
	IsHoliday(date Date) bool

	// Holidays returns every known holiday in chronological order.
	Holidays() []Holiday
}

// SetCalendar is an immutable HolidayCalendar keyed by the canonical
// YYYY-MM-DD form of each date. Build it once and share it.
type SetCalendar struct {
	byKey    map[string]Holiday
	holidays []Holiday
}

// NewSetCalendar copies holidays into a lookup set. Later entries for the
// same date replace earlier ones.
func NewSetCalendar(holidays []Holiday) *SetCalendar {
	byKey := make(map[string]Holiday, len(holidays))
	for _, h := range holidays {
		byKey[FormatDate(h.Date)] = h
	}

	sorted := make([]Holiday, 0, len(byKey))
	for _, h := range byKey {
		sorted = append(sorted, h)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return &SetCalendar{byKey: byKey, holidays: sorted}
}

func (c *SetCalendar) IsHoliday(date Date) bool {
	_, ok := c.byKey[FormatDate(date)]
	return ok
}

// Lookup returns the holiday on date, if any.
func (c *SetCalendar) Lookup(date Date) (Holiday, bool) {
	h, ok := c.byKey[FormatDate(date)]
	return h, ok
}

func (c *SetCalendar) Holidays() []Holiday {
	out := make([]Holiday, len(c.holidays))
	copy(out, c.holidays)
	return out
}

// Len returns the number of distinct holiday dates.
func (c *SetCalendar) Len() int { return len(c.holidays) }

// NoHolidays is a calendar with no holidays, for when holidays are disabled.
type NoHolidays struct{}

func (NoHolidays) IsHoliday(Date) bool { return false }
func (NoHolidays) Holidays() []Holiday { return nil }

// IsWorkday reports whether date is neither a weekend day nor a holiday.
// A nil calendar means no holidays.
func IsWorkday(date Date, calendar HolidayCalendar) bool {
	if date.IsWeekend() {
		return false
	}
	if calendar != nil && calendar.IsHoliday(date) {
		return false
	}
	return true
}

// LookupHoliday returns the holiday on date from any calendar. Calendars
// with their own Lookup answer directly; others are scanned.
func LookupHoliday(calendar HolidayCalendar, date Date) (Holiday, bool) {
	if calendar == nil {
		return Holiday{}, false
	}
	if l, ok := calendar.(interface {
		Lookup(Date) (Holiday, bool)
	}); ok {
		return l.Lookup(date)
	}
	if !calendar.IsHoliday(date) {
		return Holiday{}, false
	}
	for _, h := range calendar.Holidays() {
		if h.Date.Equal(date) {
			return h, true
		}
	}
	return Holiday{Date: date}, true
}
