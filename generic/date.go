package generic

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// DATE - Timezone-naive calendar day
// =============================================================================

// Date is a calendar day with no time-of-day component. The zero value is
// not a valid date and formats as the empty string. Dates cover year 0 and
// later; a day before 0000-01-01 is invalid, like the zero value.
type Date struct {
	t     time.Time
	valid bool
}

func dateAt(t time.Time, valid bool) Date {
	if !valid || t.Year() < 0 {
		return Date{}
	}
	return Date{t: t, valid: true}
}

// NewDate builds a Date from its components. Out-of-range components are
// normalized the way time.Date does; use ParseDate when the input must be
// rejected instead.
func NewDate(year int, month time.Month, day int) Date {
	return dateAt(time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true)
}

// DateOf truncates a wall-clock time to its calendar day in the time's own
// location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current local calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.valid == other.valid && d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Compare returns -1, 0 or +1, suitable for slices.SortFunc.
func (d Date) Compare(other Date) int { return d.t.Compare(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return dateAt(d.t.AddDate(0, 0, n), d.valid) }
func (d Date) AddMonths(n int) Date { return dateAt(d.t.AddDate(0, n, 0), d.valid) }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return !d.valid }
func (d Date) Time() time.Time       { return d.t }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string { return FormatDate(d) }

// =============================================================================
// DATE CODEC - Canonical YYYY-MM-DD text form
// =============================================================================

// FormatDate renders d as YYYY-MM-DD. The zero Date renders as "".
func FormatDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// ParseDate parses YYYY-MM-DD text. It reports false when the text does not
// have exactly three integer parts or names a day that does not exist; a
// date such as 2025-02-30 is rejected, never rolled over into March.
func ParseDate(s string) (Date, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, false
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, false
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	d := NewDate(year, time.Month(month), day)
	if d.IsZero() || d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return Date{}, false
	}
	return d, true
}

// ParseDateStrict is ParseDate for callers that report errors.
func ParseDateStrict(s string) (Date, error) {
	d, ok := ParseDate(s)
	if !ok {
		return Date{}, &DateParseError{Input: s}
	}
	return d, nil
}

// MustParseDate panics on malformed input. Only for compiled-in tables.
func MustParseDate(s string) Date {
	d, ok := ParseDate(s)
	if !ok {
		panic(fmt.Sprintf("generic: invalid date literal %q", s))
	}
	return d
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(FormatDate(d)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDateStrict(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
