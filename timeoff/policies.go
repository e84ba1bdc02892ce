/*
policies.go - Balance limits and the vacation-day deduction rule

PURPOSE:
  A Policy holds the limits the projection enforces: the PTO and sick
  ceilings, the PTO floor, and how many hours a vacation day and a worked
  day are worth. DefaultPolicy returns the company limits.

LIMITS:
  PTO ceiling:  210 hours
  Sick ceiling:  80 hours
  PTO floor:    -40 hours (PTO may be borrowed down to this)
  Sick floor:   none

HORIZON:
  Projections and workday counts look at most MaxHorizonYears (10) ahead.
  Counting walks the calendar one day at a time, so an unbounded range costs
  time proportional to its length.

DEDUCTION:
  A vacation day costs 8 hours, taken from PTO first. When taking the full
  day from PTO would cross the floor, PTO is drawn down to the floor and the
  rest comes out of sick.

  The sick share is computed as cost - (pto - floor) without clamping the
  headroom at zero. If PTO is already below the floor, sick is charged more
  than the cost of the day:

    pto = -45, floor = -40  ->  headroom = -5, sick charged 8 - (-5) = 13

  Existing balance reports depend on this arithmetic; keep it.
*/
package timeoff

import (
	"fmt"

	"github.com/warp/pto-projector/generic"
)

const (
	DefaultMaxPTO              = 210
	DefaultMaxSick             = 80
	DefaultPTOFloor            = -40
	DefaultVacationHoursPerDay = 8
	DefaultHoursPerWorkday     = 8
	DefaultMaxHorizonYears     = 10
)

// Policy is the set of limits applied by the projection engine.
type Policy struct {
	MaxPTO              generic.Hours
	MaxSick             generic.Hours
	PTOFloor            generic.Hours
	VacationHoursPerDay generic.Hours
	HoursPerWorkday     int
	MaxHorizonYears     int
}

// DefaultPolicy returns the company limits.
func DefaultPolicy() Policy {
	return Policy{
		MaxPTO:              generic.NewHoursFromInt(DefaultMaxPTO),
		MaxSick:             generic.NewHoursFromInt(DefaultMaxSick),
		PTOFloor:            generic.NewHoursFromInt(DefaultPTOFloor),
		VacationHoursPerDay: generic.NewHoursFromInt(DefaultVacationHoursPerDay),
		HoursPerWorkday:     DefaultHoursPerWorkday,
		MaxHorizonYears:     DefaultMaxHorizonYears,
	}
}

// Validate rejects limits the engine cannot apply meaningfully.
func (p Policy) Validate() error {
	if !p.MaxPTO.GreaterThan(p.PTOFloor) {
		return fmt.Errorf("max PTO %s must be above PTO floor %s", p.MaxPTO, p.PTOFloor)
	}
	if p.MaxSick.IsNegative() {
		return fmt.Errorf("max sick %s cannot be negative", p.MaxSick)
	}
	if !p.VacationHoursPerDay.IsPositive() {
		return fmt.Errorf("vacation hours per day must be positive, got %s", p.VacationHoursPerDay)
	}
	if p.HoursPerWorkday <= 0 {
		return fmt.Errorf("hours per workday must be positive, got %d", p.HoursPerWorkday)
	}
	if p.MaxHorizonYears <= 0 {
		return fmt.Errorf("max horizon years must be positive, got %d", p.MaxHorizonYears)
	}
	return nil
}

// Horizon is the last date the engine will look at when starting from from.
func (p Policy) Horizon(from generic.Date) generic.Date {
	return from.AddMonths(12 * p.MaxHorizonYears)
}

// WithinHorizon reports whether d is no later than the horizon from from.
func (p Policy) WithinHorizon(from, d generic.Date) bool {
	return !d.After(p.Horizon(from))
}

// CheckHorizon returns an error wrapping generic.ErrInvalidRange when to lies
// beyond the horizon from from.
func (p Policy) CheckHorizon(from, to generic.Date) error {
	if p.WithinHorizon(from, to) {
		return nil
	}
	return fmt.Errorf("%w: %s to %s spans more than %d years",
		generic.ErrInvalidRange, generic.FormatDate(from), generic.FormatDate(to), p.MaxHorizonYears)
}

// Clamp caps each balance at its ceiling. There is no lower bound here.
func (p Policy) Clamp(b Balances) Balances {
	return Balances{
		PTO:  b.PTO.Min(p.MaxPTO),
		Sick: b.Sick.Min(p.MaxSick),
	}
}

// Deduction records where one vacation day's hours were taken from.
type Deduction struct {
	FromPTO  generic.Hours
	FromSick generic.Hours
}

// Deduct charges one vacation day against b, PTO first with sick spillover.
func (p Policy) Deduct(b Balances) (Balances, Deduction) {
	cost := p.VacationHoursPerDay

	if b.PTO.Sub(cost).GreaterThanOrEqual(p.PTOFloor) {
		return Balances{PTO: b.PTO.Sub(cost), Sick: b.Sick},
			Deduction{FromPTO: cost, FromSick: generic.ZeroHours()}
	}

	headroom := b.PTO.Sub(p.PTOFloor)
	fromPTO := generic.ZeroHours()
	pto := b.PTO
	if headroom.IsPositive() {
		fromPTO = headroom
		pto = pto.Sub(headroom)
	}
	sickNeeded := cost.Sub(headroom)

	return Balances{PTO: pto, Sick: b.Sick.Sub(sickNeeded)},
		Deduction{FromPTO: fromPTO, FromSick: sickNeeded}
}
