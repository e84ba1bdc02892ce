/*
accrual.go - Hours-worked accrual between vacation days

PURPOSE:
  Balances grow with hours worked. Between two vacation days the engine
  counts the working days in the gap, converts them to hours, and credits
  each balance at its per-hour rate.

HOURS WORKED:
  Working days come from generic.CountWorkdays over the half-open range
  [from, to): weekends and holidays are skipped, and the vacation day at
  `to` is not worked. Each working day is Policy.HoursPerWorkday hours.

EXAMPLE:
  Monday to Tuesday, rates 1.0 PTO / 0.5 sick:
    1 workday -> 8 hours worked -> +8 PTO, +4 sick

SEE ALSO:
  - generic/period.go: CountWorkdays
  - policies.go: ceilings applied after accrual
*/
package timeoff

import "github.com/warp/pto-projector/generic"

// Accrual describes what was earned over one gap between vacation days.
type Accrual struct {
	Period      generic.Period
	Workdays    int
	HoursWorked generic.Hours
	PTO         generic.Hours
	Sick        generic.Hours
}

// HoursWorkedAccrual credits balances for the hours worked in a period.
type HoursWorkedAccrual struct {
	Rates           Rates
	HoursPerWorkday int
	Holidays        generic.HolidayCalendar
}

// Over computes the accrual for the working days in [from, to).
func (a *HoursWorkedAccrual) Over(from, to generic.Date) Accrual {
	workdays := generic.CountWorkdays(from, to, a.Holidays)
	hoursWorked := generic.NewHoursFromInt(workdays * a.HoursPerWorkday)
	return Accrual{
		Period:      generic.Period{Start: from, End: to},
		Workdays:    workdays,
		HoursWorked: hoursWorked,
		PTO:         hoursWorked.Mul(a.Rates.PTO),
		Sick:        hoursWorked.Mul(a.Rates.Sick),
	}
}

// Apply adds the accrual to b. Ceilings are not applied here.
func (acc Accrual) Apply(b Balances) Balances {
	return Balances{
		PTO:  b.PTO.Add(acc.PTO),
		Sick: b.Sick.Add(acc.Sick),
	}
}
