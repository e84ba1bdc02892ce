package timeoff

import (
	"sort"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/warp/pto-projector/generic"
)

var federalHolidays = []*cal.Holiday{
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	us.MemorialDay,
	us.Juneteenth,
	us.IndependenceDay,
	us.LaborDay,
	us.ColumbusDay,
	us.VeteransDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// FederalCalendar is the US federal holiday calendar. Unlike the company
// calendar it covers every year; both the actual and the observed day of a
// holiday are non-working.
type FederalCalendar struct {
	bc *cal.BusinessCalendar

	// Year is the year Holidays lists.
	Year int
}

// NewFederalCalendar builds a federal calendar that lists holidays for year.
func NewFederalCalendar(year int) *FederalCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(federalHolidays...)
	return &FederalCalendar{bc: c, Year: year}
}

func (f *FederalCalendar) IsHoliday(date generic.Date) bool {
	actual, observed, _ := f.bc.IsHoliday(date.Time())
	return actual || observed
}

// Lookup returns the holiday falling or observed on date. Observed days are
// named with an "(observed)" suffix.
func (f *FederalCalendar) Lookup(date generic.Date) (generic.Holiday, bool) {
	actual, observed, h := f.bc.IsHoliday(date.Time())
	if (!actual && !observed) || h == nil {
		return generic.Holiday{}, false
	}
	name := h.Name
	if observed && !actual {
		name += " (observed)"
	}
	return generic.Holiday{Date: date, Name: name}, true
}

func (f *FederalCalendar) Holidays() []generic.Holiday {
	var out []generic.Holiday
	for _, h := range federalHolidays {
		actual, observed := h.Calc(f.Year)
		if actual.IsZero() {
			continue
		}
		out = append(out, generic.Holiday{Date: generic.DateOf(actual), Name: h.Name})
		if !observed.IsZero() && !observed.Equal(actual) {
			out = append(out, generic.Holiday{Date: generic.DateOf(observed), Name: h.Name + " (observed)"})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
