package timeoff

import (
	"fmt"
	"sync"

	"github.com/warp/pto-projector/generic"
)

// CompanyHolidayYear is the only year the company calendar covers. Dates in
// other years are never holidays.
const CompanyHolidayYear = 2025

var companyHolidays = []struct {
	date string
	name string
}{
	{"2025-01-01", "New Year's Day"},
	{"2025-01-20", "Martin Luther King Jr. Day"},
	{"2025-02-17", "Presidents' Day"},
	{"2025-05-26", "Memorial Day"},
	{"2025-06-19", "Juneteenth"},
	{"2025-07-04", "Independence Day"},
	{"2025-09-01", "Labor Day"},
	{"2025-11-27", "Thanksgiving Day"},
	{"2025-11-28", "Native American Heritage Day"},
	{"2025-12-25", "Christmas Day"},
}

// DefaultHolidays returns the company holidays in date order.
func DefaultHolidays() []generic.Holiday {
	out := make([]generic.Holiday, len(companyHolidays))
	for i, h := range companyHolidays {
		out[i] = generic.Holiday{Date: generic.MustParseDate(h.date), Name: h.name}
	}
	return out
}

var (
	companyOnce     sync.Once
	companyCalendar *generic.SetCalendar
)

// CompanyCalendar returns the shared, read-only company holiday calendar.
func CompanyCalendar() *generic.SetCalendar {
	companyOnce.Do(func() {
		companyCalendar = generic.NewSetCalendar(DefaultHolidays())
	})
	return companyCalendar
}

// Holiday calendar sources selectable by configuration.
const (
	HolidaySourceCompany   = "company"
	HolidaySourceUSFederal = "us-federal"
)

// CalendarFor returns the holiday calendar named by source. An empty source
// selects the company calendar.
func CalendarFor(source string, year int) (generic.HolidayCalendar, error) {
	switch source {
	case "", HolidaySourceCompany:
		return CompanyCalendar(), nil
	case HolidaySourceUSFederal:
		return NewFederalCalendar(year), nil
	default:
		return nil, fmt.Errorf("%w: %q", generic.ErrUnknownHolidaySource, source)
	}
}
