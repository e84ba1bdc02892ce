/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's types from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

FORMATS:
  Projection types also carry yaml tags; the CLI renders the same shapes
  as JSON or YAML.

NUMBERS:
  Balances and rates travel as strings in both directions. Requests carry
  exactly what the user typed so the engine decides what parses; responses
  carry two-decimal display text so clients never re-round.
*/
package api

import (
	"github.com/warp/pto-projector/generic"
	"github.com/warp/pto-projector/timeoff"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ProjectionRequest is the body of POST /api/projections.
type ProjectionRequest struct {
	CurrentPTO  string   `json:"current_pto"`
	CurrentSick string   `json:"current_sick"`
	PTORate     string   `json:"pto_rate"`
	SickRate    string   `json:"sick_rate"`
	Dates       []string `json:"dates"`
	Today       string   `json:"today,omitempty"` // YYYY-MM-DD, defaults to the server's date
}

// SnapshotDTO is one projected vacation day.
type SnapshotDTO struct {
	Date         string `json:"date" yaml:"date"`
	PTOBalance   string `json:"pto_balance" yaml:"pto_balance"`
	SickBalance  string `json:"sick_balance" yaml:"sick_balance"`
	Workdays     int    `json:"workdays" yaml:"workdays"`
	HoursWorked  string `json:"hours_worked" yaml:"hours_worked"`
	PTOAccrued   string `json:"pto_accrued" yaml:"pto_accrued"`
	SickAccrued  string `json:"sick_accrued" yaml:"sick_accrued"`
	PTODeducted  string `json:"pto_deducted" yaml:"pto_deducted"`
	SickDeducted string `json:"sick_deducted" yaml:"sick_deducted"`
}

// ProjectionResponse is the result of a projection. Results is empty, never
// null, when the inputs did not parse.
type ProjectionResponse struct {
	Results      []SnapshotDTO `json:"results" yaml:"results"`
	Final        *SnapshotDTO  `json:"final,omitempty" yaml:"final,omitempty"`
	SkippedDates []string      `json:"skipped_dates,omitempty" yaml:"skipped_dates,omitempty"`
}

// HolidayDTO is one holiday.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// HolidayListResponse lists the active calendar.
type HolidayListResponse struct {
	Year     int          `json:"year"`
	Source   string       `json:"source"`
	Holidays []HolidayDTO `json:"holidays"`
}

// HolidayCheckResponse answers whether one date is a holiday.
type HolidayCheckResponse struct {
	Date    string `json:"date"`
	Holiday bool   `json:"holiday"`
	Name    string `json:"name,omitempty"`
}

// WorkdaysResponse is the workday count for [start, end).
type WorkdaysResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Workdays int    `json:"workdays"`
}

// PolicyDTO describes the limits the engine applies.
type PolicyDTO struct {
	MaxPTO              string `json:"max_pto"`
	MaxSick             string `json:"max_sick"`
	PTOFloor            string `json:"pto_floor"`
	VacationHoursPerDay string `json:"vacation_hours_per_day"`
	HoursPerWorkday     int    `json:"hours_per_workday"`
	MaxHorizonYears     int    `json:"max_horizon_years"`
	HolidaySource       string `json:"holiday_source"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toSnapshotDTO(s timeoff.Snapshot) SnapshotDTO {
	return SnapshotDTO{
		Date:         generic.FormatDate(s.Date),
		PTOBalance:   s.Balances.PTO.Display(),
		SickBalance:  s.Balances.Sick.Display(),
		Workdays:     s.Accrual.Workdays,
		HoursWorked:  s.Accrual.HoursWorked.Display(),
		PTOAccrued:   s.Accrual.PTO.Display(),
		SickAccrued:  s.Accrual.Sick.Display(),
		PTODeducted:  s.Deduction.FromPTO.Display(),
		SickDeducted: s.Deduction.FromSick.Display(),
	}
}

// NewProjectionResponse converts a projection to its wire form. Dates past
// the horizon are listed in SkippedDates.
func NewProjectionResponse(p timeoff.Projection) ProjectionResponse {
	resp := ProjectionResponse{Results: make([]SnapshotDTO, len(p.Snapshots))}
	for i, s := range p.Snapshots {
		resp.Results[i] = toSnapshotDTO(s)
	}
	for _, d := range p.Skipped {
		resp.SkippedDates = append(resp.SkippedDates, generic.FormatDate(d))
	}
	if final, ok := p.Final(); ok {
		dto := toSnapshotDTO(final)
		resp.Final = &dto
	}
	return resp
}

func toHolidayDTOs(holidays []generic.Holiday) []HolidayDTO {
	dtos := make([]HolidayDTO, len(holidays))
	for i, h := range holidays {
		dtos[i] = HolidayDTO{Date: generic.FormatDate(h.Date), Name: h.Name}
	}
	return dtos
}
