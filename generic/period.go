package generic

import "fmt"

// =============================================================================
// PERIOD - Half-open range of calendar days
// =============================================================================

// Period is the half-open range [Start, End). End itself is never part of
// the period, so a vacation day used as End is not counted as worked.
type Period struct {
	Start Date
	End   Date
}

// NewPeriod validates and creates [start, end). An equal start and end is an
// empty period, not an error.
func NewPeriod(start, end Date) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrInvalidDate
	}
	if end.Before(start) {
		return Period{}, fmt.Errorf("%w: %s to %s", ErrInvalidRange, start, end)
	}
	return Period{Start: start, End: end}, nil
}

// Contains returns true if d is within [Start, End).
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.Before(p.End)
}

// IsEmpty reports whether the period holds no days.
func (p Period) IsEmpty() bool {
	return !p.Start.Before(p.End)
}

// Days returns every day in the period in order.
func (p Period) Days() []Date {
	var days []Date
	for current := p.Start; current.Before(p.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// Workdays counts the days in the period that are not weekends or holidays.
func (p Period) Workdays(calendar HolidayCalendar) int {
	count := 0
	for current := p.Start; current.Before(p.End); current = current.AddDays(1) {
		if IsWorkday(current, calendar) {
			count++
		}
	}
	return count
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + ")"
}

// CountWorkdays counts the working days d with start <= d < end, skipping
// Saturdays, Sundays and days on the holiday calendar. It returns 0 when
// start is not before end. A nil calendar means no holidays.
func CountWorkdays(start, end Date, holidays HolidayCalendar) int {
	return Period{Start: start, End: end}.Workdays(holidays)
}
