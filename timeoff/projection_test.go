package timeoff_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/pto-projector/generic"
	"github.com/warp/pto-projector/timeoff"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(s string) generic.Date {
	return generic.MustParseDate(s)
}

func hours(s string) generic.Hours {
	return generic.HoursOf(decimal.RequireFromString(s))
}

func assertHours(t *testing.T, want string, got generic.Hours) {
	t.Helper()
	assert.True(t, got.Equal(hours(want)), "want %s, got %s", want, got)
}

func newEngine() *timeoff.Engine {
	return timeoff.NewEngine(timeoff.CompanyCalendar(), timeoff.DefaultPolicy())
}

func input(pto, sick, ptoRate, sickRate string, today string, dates ...string) timeoff.Input {
	in := timeoff.Input{
		Current: timeoff.Balances{PTO: hours(pto), Sick: hours(sick)},
		Rates:   timeoff.Rates{PTO: hours(ptoRate), Sick: hours(sickRate)},
		Today:   date(today),
	}
	for _, d := range dates {
		in.Dates = append(in.Dates, date(d))
	}
	return in
}

// 2025-03-03 is a Monday with no holidays nearby.
const monday = "2025-03-03"

// =============================================================================
// SCENARIOS
// =============================================================================

func TestProject_SimpleAccrualAndDeduction(t *testing.T) {
	// GIVEN: Today is Monday, balances 0/0, rates 1.0 PTO and 0.5 sick
	// WHEN: Tuesday is taken off
	// THEN: Monday accrues 8 PTO / 4 sick, the day costs 8 PTO

	proj := newEngine().Project(input("0", "0", "1.0", "0.5", monday, "2025-03-04"))

	require.Len(t, proj.Snapshots, 1)
	snap := proj.Snapshots[0]
	assert.Equal(t, "2025-03-04", snap.Date.String())
	assert.Equal(t, 1, snap.Accrual.Workdays)
	assert.Equal(t, "0.00", snap.Balances.PTO.Display())
	assert.Equal(t, "4.00", snap.Balances.Sick.Display())
	assertHours(t, "8", snap.Deduction.FromPTO)
	assertHours(t, "0", snap.Deduction.FromSick)
}

func TestProject_HolidayExcludedFromAccrual(t *testing.T) {
	// GIVEN: [2025-05-19, 2025-05-27) spans Memorial Day (2025-05-26)
	// WHEN: Projecting with and without the company calendar
	// THEN: The company calendar counts one fewer workday

	in := input("0", "0", "1", "0", "2025-05-19", "2025-05-27")

	withHolidays := newEngine().Project(in)
	without := timeoff.NewEngine(nil, timeoff.DefaultPolicy()).Project(in)

	require.Len(t, withHolidays.Snapshots, 1)
	require.Len(t, without.Snapshots, 1)
	assert.Equal(t, 5, withHolidays.Snapshots[0].Accrual.Workdays)
	assert.Equal(t, 6, without.Snapshots[0].Accrual.Workdays)
	assertHours(t, "32", withHolidays.Snapshots[0].Balances.PTO)
	assertHours(t, "40", without.Snapshots[0].Balances.PTO)
}

func TestProject_SpilloverBelowFloorOverchargesSick(t *testing.T) {
	// GIVEN: PTO already 5 hours below the -40 floor, sick 40, no accrual
	// WHEN: One vacation day is taken after one workday
	// THEN: PTO is untouched and sick is charged 8 - (-5) = 13 hours

	proj := newEngine().Project(input("-45", "40", "0", "0", monday, "2025-03-04"))

	require.Len(t, proj.Snapshots, 1)
	snap := proj.Snapshots[0]
	assert.Equal(t, 1, snap.Accrual.Workdays)
	assertHours(t, "-45", snap.Balances.PTO)
	assertHours(t, "27", snap.Balances.Sick)
	assertHours(t, "0", snap.Deduction.FromPTO)
	assertHours(t, "13", snap.Deduction.FromSick)
}

func TestProject_MultipleDatesCarryRunningBalance(t *testing.T) {
	// GIVEN: Tuesday and Friday off, rates 1.0 / 0.5
	// WHEN: Projecting
	// THEN: Friday accrues only Wednesday and Thursday (Tuesday is not worked)

	proj := newEngine().Project(input("0", "0", "1.0", "0.5", monday, "2025-03-04", "2025-03-07"))

	require.Len(t, proj.Snapshots, 2)
	assertHours(t, "0", proj.Snapshots[0].Balances.PTO)
	assertHours(t, "4", proj.Snapshots[0].Balances.Sick)

	assert.Equal(t, 2, proj.Snapshots[1].Accrual.Workdays)
	assertHours(t, "8", proj.Snapshots[1].Balances.PTO)
	assertHours(t, "12", proj.Snapshots[1].Balances.Sick)
}

func TestProject_OrderIndependentOfSelection(t *testing.T) {
	engine := newEngine()

	sorted := engine.Project(input("10", "10", "0.1", "0.05", monday, "2025-03-04", "2025-03-11", "2025-04-01"))
	shuffled := engine.Project(input("10", "10", "0.1", "0.05", monday, "2025-04-01", "2025-03-04", "2025-03-11", "2025-03-04"))

	require.Len(t, shuffled.Snapshots, 3)
	for i := range sorted.Snapshots {
		assert.True(t, sorted.Snapshots[i].Date.Equal(shuffled.Snapshots[i].Date))
		assertHours(t, sorted.Snapshots[i].Balances.PTO.String(), shuffled.Snapshots[i].Balances.PTO)
		assertHours(t, sorted.Snapshots[i].Balances.Sick.String(), shuffled.Snapshots[i].Balances.Sick)
	}
}

// =============================================================================
// LIMITS
// =============================================================================

func TestProject_CeilingsHoldForHugeRates(t *testing.T) {
	policy := timeoff.DefaultPolicy()
	proj := newEngine().Project(input("200", "79", "1000", "1000", monday,
		"2025-03-10", "2025-04-14", "2025-06-02", "2025-09-15", "2026-01-05"))

	require.Len(t, proj.Snapshots, 5)
	for _, snap := range proj.Snapshots {
		assert.False(t, snap.Balances.PTO.GreaterThan(policy.MaxPTO), "PTO %s on %s", snap.Balances.PTO, snap.Date)
		assert.False(t, snap.Balances.Sick.GreaterThan(policy.MaxSick), "sick %s on %s", snap.Balances.Sick, snap.Date)
		assertHours(t, "202", snap.Balances.PTO)
		assertHours(t, "80", snap.Balances.Sick)
	}
}

func TestProject_FloorGovernedDeduction(t *testing.T) {
	// Today equals the vacation date, so nothing accrues.
	tests := []struct {
		name         string
		pto          string
		wantPTO      string
		wantSick     string
		wantFromSick string
	}{
		{"well above floor", "20", "12", "50", "0"},
		{"just above threshold", "-31.5", "-39.5", "50", "0"},
		{"exactly at threshold", "-32", "-40", "50", "0"},
		{"partial headroom", "-33", "-40", "49", "1"},
		{"at floor", "-40", "-40", "42", "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := newEngine().Project(input(tt.pto, "50", "1", "1", "2025-03-04", "2025-03-04"))

			require.Len(t, proj.Snapshots, 1)
			snap := proj.Snapshots[0]
			assert.Equal(t, 0, snap.Accrual.Workdays)
			assertHours(t, tt.wantPTO, snap.Balances.PTO)
			assertHours(t, tt.wantSick, snap.Balances.Sick)
			assertHours(t, tt.wantFromSick, snap.Deduction.FromSick)
		})
	}
}

func TestProject_SickHasNoFloor(t *testing.T) {
	proj := newEngine().Project(input("-40", "-100", "0", "0", "2025-03-04", "2025-03-04", "2025-03-05"))

	require.Len(t, proj.Snapshots, 2)
	assertHours(t, "-108", proj.Snapshots[0].Balances.Sick)
	assertHours(t, "-116", proj.Snapshots[1].Balances.Sick)
}

// =============================================================================
// RAW INPUT
// =============================================================================

func rawInput(dates ...string) timeoff.RawInput {
	return timeoff.RawInput{
		CurrentPTO:  "0",
		CurrentSick: "0",
		PTORate:     "1.0",
		SickRate:    "0.5",
		Dates:       dates,
		Today:       date(monday),
	}
}

func TestProjectRaw_MatchesTypedProjection(t *testing.T) {
	proj := newEngine().ProjectRaw(rawInput("2025-03-04"))

	require.Len(t, proj.Snapshots, 1)
	assert.Equal(t, "0.00", proj.Snapshots[0].Balances.PTO.Display())
	assert.Equal(t, "4.00", proj.Snapshots[0].Balances.Sick.Display())
}

func TestProjectRaw_NumericFailureEmptiesEverything(t *testing.T) {
	fields := map[string]func(*timeoff.RawInput){
		"current pto":  func(r *timeoff.RawInput) { r.CurrentPTO = "abc" },
		"current sick": func(r *timeoff.RawInput) { r.CurrentSick = "" },
		"pto rate":     func(r *timeoff.RawInput) { r.PTORate = "1.0.0" },
		"sick rate":    func(r *timeoff.RawInput) { r.SickRate = "half" },
	}

	for name, mutate := range fields {
		t.Run(name, func(t *testing.T) {
			raw := rawInput("2025-03-04", "2025-03-05", "2025-06-02")
			mutate(&raw)

			proj := newEngine().ProjectRaw(raw)
			assert.True(t, proj.IsEmpty())
		})
	}
}

func TestProjectRaw_InvalidDatesSkipped(t *testing.T) {
	// GIVEN: A calendar-invalid and a malformed date among valid ones
	// WHEN: Projecting
	// THEN: Only valid dates produce snapshots and the skipped ones do not
	//       advance the running state

	withBad := newEngine().ProjectRaw(rawInput("2025-02-30", "2025-03-04", "not-a-date", "2025-03-07"))
	clean := newEngine().ProjectRaw(rawInput("2025-03-04", "2025-03-07"))

	require.Len(t, withBad.Snapshots, 2)
	assert.Equal(t, clean.Snapshots[1].Accrual.Workdays, withBad.Snapshots[1].Accrual.Workdays)
	assertHours(t, clean.Snapshots[1].Balances.PTO.String(), withBad.Snapshots[1].Balances.PTO)
	assertHours(t, clean.Snapshots[1].Balances.Sick.String(), withBad.Snapshots[1].Balances.Sick)
}

func TestParseRawInput_ReportsBadFields(t *testing.T) {
	raw := rawInput("2025-03-04")
	raw.PTORate = "fast"
	raw.SickRate = "slow"

	_, err := timeoff.ParseRawInput(raw)

	require.Error(t, err)
	assert.True(t, errors.Is(err, generic.ErrInvalidNumber))
	assert.True(t, generic.IsClientError(err))

	var numErr *generic.NumberParseError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "pto_rate", numErr.Field)
	assert.Contains(t, err.Error(), "sick_rate")
}

func TestProject_DatesBeyondHorizonSkipped(t *testing.T) {
	// GIVEN: A ten year horizon from 2025-03-03
	// WHEN: Dates on the horizon, one day past it, and far past it are projected
	// THEN: Only dates up to the horizon get snapshots; the rest are skipped

	proj := newEngine().Project(input("0", "0", "0", "0", monday,
		"99999-01-01", "2035-03-04", "2025-03-04", "2035-03-03"))

	require.Len(t, proj.Snapshots, 2)
	assert.Equal(t, "2025-03-04", proj.Snapshots[0].Date.String())
	assert.Equal(t, "2035-03-03", proj.Snapshots[1].Date.String())
	require.Len(t, proj.Skipped, 2)
	assert.Equal(t, "2035-03-04", proj.Skipped[0].String())
	assert.Equal(t, "99999-01-01", proj.Skipped[1].String())
}

func TestProject_HorizonFollowsPolicy(t *testing.T) {
	policy := timeoff.DefaultPolicy()
	policy.MaxHorizonYears = 1
	engine := timeoff.NewEngine(timeoff.CompanyCalendar(), policy)

	proj := engine.Project(input("0", "0", "0", "0", monday, "2026-03-03", "2026-03-04"))

	require.Len(t, proj.Snapshots, 1)
	assert.Equal(t, "2026-03-03", proj.Snapshots[0].Date.String())
	require.Len(t, proj.Skipped, 1)
}

// =============================================================================
// PROJECTION HELPERS
// =============================================================================

func TestProjection_LookupAndFinal(t *testing.T) {
	proj := newEngine().Project(input("0", "0", "1.0", "0.5", monday, "2025-03-07", "2025-03-04"))

	snap, ok := proj.Lookup(date("2025-03-07"))
	require.True(t, ok)
	assertHours(t, "8", snap.Balances.PTO)

	_, ok = proj.Lookup(date("2025-03-05"))
	assert.False(t, ok)

	final, ok := proj.Final()
	require.True(t, ok)
	assert.Equal(t, "2025-03-07", final.Date.String())

	byDate := proj.ByDate()
	assert.Len(t, byDate, 2)
	assert.Contains(t, byDate, "2025-03-04")

	_, ok = timeoff.Projection{}.Final()
	assert.False(t, ok)
}
