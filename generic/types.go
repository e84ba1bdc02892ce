/*
Package generic provides the calendar and quantity primitives the balance
projection is built on.

PURPOSE:
  Domain-agnostic types for reasoning about working time: calendar days
  without a clock, half-open day ranges, holiday calendars, and hour
  quantities. The timeoff package composes these into the PTO and sick
  balance projection.

KEY CONCEPTS:
  - Date: A timezone-naive calendar day with a strict YYYY-MM-DD codec
  - Period: A half-open [Start, End) range of days
  - HolidayCalendar: Read-only membership test for non-working days
  - Hours: A fractional hour quantity (balances, rates)
  - DateSet: A toggle-able set of dates realized as a sorted sequence

DESIGN PRINCIPLES:
  1. Immutability: Dates, calendars and amounts are values or read-only
  2. Precision: Uses decimal.Decimal to avoid floating-point drift
  3. Strictness: Invalid dates are rejected, never rolled over

USAGE:
  start := generic.MustParseDate("2025-03-03")
  end := start.AddDays(7)
  n := generic.CountWorkdays(start, end, calendar)

SEE ALSO:
  - date.go: Date type and codec
  - period.go: Workday counting
  - holiday.go: Holiday calendars
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// HOURS - Fractional hour quantity
// =============================================================================

// Hours is a real-valued number of hours. Balances and accrual rates are
// both expressed in Hours; rates are hours earned per hour worked.
type Hours struct {
	Value decimal.Decimal
}

func NewHours(value float64) Hours      { return Hours{Value: decimal.NewFromFloat(value)} }
func NewHoursFromInt(value int) Hours   { return Hours{Value: decimal.NewFromInt(int64(value))} }
func HoursOf(value decimal.Decimal) Hours { return Hours{Value: value} }

// ParseHours parses decimal text such as "12.5" or "-45".
func ParseHours(s string) (Hours, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Hours{}, err
	}
	return Hours{Value: d}, nil
}

func ZeroHours() Hours { return Hours{Value: decimal.Zero} }

func (h Hours) Add(b Hours) Hours              { return Hours{Value: h.Value.Add(b.Value)} }
func (h Hours) Sub(b Hours) Hours              { return Hours{Value: h.Value.Sub(b.Value)} }
func (h Hours) Mul(b Hours) Hours              { return Hours{Value: h.Value.Mul(b.Value)} }
func (h Hours) MulInt(n int) Hours             { return Hours{Value: h.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (h Hours) IsNegative() bool               { return h.Value.IsNegative() }
func (h Hours) IsZero() bool                   { return h.Value.IsZero() }
func (h Hours) IsPositive() bool               { return h.Value.IsPositive() }
func (h Hours) Equal(b Hours) bool             { return h.Value.Equal(b.Value) }
func (h Hours) GreaterThan(b Hours) bool       { return h.Value.GreaterThan(b.Value) }
func (h Hours) GreaterThanOrEqual(b Hours) bool { return h.Value.GreaterThanOrEqual(b.Value) }
func (h Hours) LessThan(b Hours) bool          { return h.Value.LessThan(b.Value) }
func (h Hours) Min(b Hours) Hours {
	if h.LessThan(b) {
		return h
	}
	return b
}

// Float64 returns the nearest float64; exactness is lost.
func (h Hours) Float64() float64 {
	f, _ := h.Value.Float64()
	return f
}

// Display rounds to two decimal places for presentation only.
func (h Hours) Display() string { return h.Value.StringFixed(2) }

func (h Hours) String() string { return h.Value.String() }
