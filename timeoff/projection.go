/*
projection.go - Running PTO and sick balances over planned vacation days

PURPOSE:
  Answers "what will my balances be on each day I plan to take off?"
  Given current balances, accrual rates and a set of vacation dates, the
  engine walks the dates in order and records both balances as of each one.

THE FOLD:
  Starting from today with the current balances, for each vacation date d
  in ascending order:
    1. Count workdays in [last, d) and credit hours worked at each rate
    2. Cap PTO and sick at their ceilings
    3. Deduct one vacation day, PTO first with sick spillover
    4. Record (PTO, sick) for d
    5. last = d + 1 day

  Each step depends on the previous one, so dates are always processed
  chronologically regardless of how they were selected.

PURITY:
  Project is a pure function of its input. Callers recompute the whole
  projection whenever any input changes; nothing is cached between calls.

BAD INPUT:
  - A date that does not parse is skipped and does not advance the fold
  - Any balance or rate that does not parse empties the whole projection
  - A date past the policy horizon from today is skipped and reported in
    Projection.Skipped

EXAMPLE:
  engine := timeoff.NewEngine(timeoff.CompanyCalendar(), timeoff.DefaultPolicy())
  proj := engine.ProjectRaw(timeoff.RawInput{
      CurrentPTO: "0", CurrentSick: "0",
      PTORate: "1.0", SickRate: "0.5",
      Dates: []string{"2025-03-04"},
      Today: generic.MustParseDate("2025-03-03"),
  })
  // proj.Snapshots[0]: PTO 0.00, sick 4.00
*/
package timeoff

import (
	"errors"

	"github.com/warp/pto-projector/generic"
)

// =============================================================================
// PROJECTION ENGINE
// =============================================================================

// Engine projects balances against a holiday calendar and policy.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	Holidays generic.HolidayCalendar
	Policy   Policy
}

// NewEngine creates an engine. A nil calendar means no holidays.
func NewEngine(holidays generic.HolidayCalendar, policy Policy) *Engine {
	if holidays == nil {
		holidays = generic.NoHolidays{}
	}
	return &Engine{Holidays: holidays, Policy: policy}
}

// Input is a fully parsed projection request.
type Input struct {
	Current Balances
	Rates   Rates

	// Dates may be in any order and contain duplicates.
	Dates []generic.Date

	// Today is where accrual starts. Zero means the current local day.
	Today generic.Date
}

// RawInput is a projection request as typed by a user.
type RawInput struct {
	CurrentPTO  string
	CurrentSick string
	PTORate     string
	SickRate    string
	Dates       []string
	Today       generic.Date
}

// Snapshot is the state of both balances as of one vacation date, after
// that date's accrual and deduction.
type Snapshot struct {
	Date      generic.Date
	Balances  Balances
	Accrual   Accrual
	Deduction Deduction
}

// Projection is the ordered result of a projection run.
type Projection struct {
	Snapshots []Snapshot

	// Skipped lists dates beyond the policy horizon, in ascending order.
	Skipped []generic.Date
}

// IsEmpty reports whether the projection has no snapshots.
func (p Projection) IsEmpty() bool { return len(p.Snapshots) == 0 }

// Lookup returns the snapshot for d, if d was projected.
func (p Projection) Lookup(d generic.Date) (Snapshot, bool) {
	for _, s := range p.Snapshots {
		if s.Date.Equal(d) {
			return s, true
		}
	}
	return Snapshot{}, false
}

// Final returns the snapshot for the latest date.
func (p Projection) Final() (Snapshot, bool) {
	if p.IsEmpty() {
		return Snapshot{}, false
	}
	return p.Snapshots[len(p.Snapshots)-1], true
}

// ByDate indexes snapshots by their canonical date text.
func (p Projection) ByDate() map[string]Snapshot {
	out := make(map[string]Snapshot, len(p.Snapshots))
	for _, s := range p.Snapshots {
		out[generic.FormatDate(s.Date)] = s
	}
	return out
}

// Project runs the fold over in.Dates in ascending order.
func (e *Engine) Project(in Input) Projection {
	today := in.Today
	if today.IsZero() {
		today = generic.Today()
	}

	accrual := &HoursWorkedAccrual{
		Rates:           in.Rates,
		HoursPerWorkday: e.Policy.HoursPerWorkday,
		Holidays:        e.Holidays,
	}

	dates := generic.DateSetOf(in.Dates...).Sorted()
	snapshots := make([]Snapshot, 0, len(dates))
	var skipped []generic.Date

	running := in.Current
	last := today
	for _, d := range dates {
		if !e.Policy.WithinHorizon(today, d) {
			skipped = append(skipped, d)
			continue
		}

		earned := accrual.Over(last, d)
		running = e.Policy.Clamp(earned.Apply(running))

		var deducted Deduction
		running, deducted = e.Policy.Deduct(running)

		snapshots = append(snapshots, Snapshot{
			Date:      d,
			Balances:  running,
			Accrual:   earned,
			Deduction: deducted,
		})
		last = d.AddDays(1)
	}

	return Projection{Snapshots: snapshots, Skipped: skipped}
}

// ProjectRaw parses raw and projects it. If any balance or rate fails to
// parse the projection is empty for every date.
func (e *Engine) ProjectRaw(raw RawInput) Projection {
	in, err := ParseRawInput(raw)
	if err != nil {
		return Projection{}
	}
	return e.Project(in)
}

// ParseRawInput parses the four numeric fields and the date set. Dates that
// do not parse are dropped silently; a numeric failure is returned as a
// *generic.NumberParseError for each bad field.
func ParseRawInput(raw RawInput) (Input, error) {
	var in Input
	fields := []struct {
		name string
		text string
		dst  *generic.Hours
	}{
		{"current_pto", raw.CurrentPTO, &in.Current.PTO},
		{"current_sick", raw.CurrentSick, &in.Current.Sick},
		{"pto_rate", raw.PTORate, &in.Rates.PTO},
		{"sick_rate", raw.SickRate, &in.Rates.Sick},
	}

	var errs []error
	for _, f := range fields {
		h, err := generic.ParseHours(f.text)
		if err != nil {
			errs = append(errs, &generic.NumberParseError{Field: f.name, Input: f.text, Err: err})
			continue
		}
		*f.dst = h
	}
	if len(errs) > 0 {
		return Input{}, errors.Join(errs...)
	}

	in.Dates = generic.NewDateSet(raw.Dates...).Sorted()
	in.Today = raw.Today
	return in, nil
}
