/*
handlers.go - HTTP API handlers for the balance projector

PURPOSE:
  Exposes the projection engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the timeoff engine.

ENDPOINTS:
  Projection:
    POST   /api/projections       Project balances over vacation dates

  Calendar:
    GET    /api/holidays          List the active holiday calendar
    GET    /api/holidays/{date}   Is this date a holiday?
    GET    /api/workdays          Count workdays in [start, end)

  Policy:
    GET    /api/policy            Limits in effect

ARCHITECTURE:
  Handler holds the engine and a description of its holiday source. The
  engine is stateless, so one Handler serves every request concurrently.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, invalid dates, reversed ranges
  - 500: Internal errors

  A balance or rate that does not parse is NOT an error: the projection is
  simply empty, matching what a user sees while still typing.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/warp/pto-projector/generic"
	"github.com/warp/pto-projector/timeoff"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *timeoff.Engine

	// HolidaySource and HolidayYear describe Engine.Holidays for listings.
	HolidaySource string
	HolidayYear   int
}

// NewHandler creates a new handler around engine.
func NewHandler(engine *timeoff.Engine, holidaySource string, holidayYear int) *Handler {
	return &Handler{
		Engine:        engine,
		HolidaySource: holidaySource,
		HolidayYear:   holidayYear,
	}
}

// Healthz reports liveness.
// GET /healthz
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// =============================================================================
// PROJECTION HANDLERS
// =============================================================================

// CreateProjection projects balances over the requested vacation dates.
// POST /api/projections
func (h *Handler) CreateProjection(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var today generic.Date
	if req.Today != "" {
		d, err := generic.ParseDateStrict(req.Today)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid today", err)
			return
		}
		today = d
	}

	in, err := timeoff.ParseRawInput(timeoff.RawInput{
		CurrentPTO:  req.CurrentPTO,
		CurrentSick: req.CurrentSick,
		PTORate:     req.PTORate,
		SickRate:    req.SickRate,
		Dates:       req.Dates,
		Today:       today,
	})
	if err != nil {
		log.WithError(err).Debug("projection inputs did not parse, returning empty projection")
		writeJSON(w, http.StatusOK, ProjectionResponse{Results: []SnapshotDTO{}})
		return
	}

	resp := NewProjectionResponse(h.Engine.Project(in))
	resp.SkippedDates = append(generic.NewDateSet(req.Dates...).Invalid(), resp.SkippedDates...)
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// ListHolidays returns the active holiday calendar.
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HolidayListResponse{
		Year:     h.HolidayYear,
		Source:   h.HolidaySource,
		Holidays: toHolidayDTOs(h.Engine.Holidays.Holidays()),
	})
}

// GetHoliday reports whether a single date is a holiday.
// GET /api/holidays/{date}
func (h *Handler) GetHoliday(w http.ResponseWriter, r *http.Request) {
	date, err := generic.ParseDateStrict(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	resp := HolidayCheckResponse{Date: generic.FormatDate(date)}
	if holiday, ok := generic.LookupHoliday(h.Engine.Holidays, date); ok {
		resp.Holiday = true
		resp.Name = holiday.Name
	}
	writeJSON(w, http.StatusOK, resp)
}

// CountWorkdays counts workdays in [start, end).
// GET /api/workdays?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) CountWorkdays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := generic.ParseDateStrict(query.Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start", err)
		return
	}
	end, err := generic.ParseDateStrict(query.Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end", err)
		return
	}

	period, err := generic.NewPeriod(start, end)
	if err != nil {
		writeError(w, clientStatus(err), "Invalid range", err)
		return
	}
	if err := h.Engine.Policy.CheckHorizon(start, end); err != nil {
		writeError(w, http.StatusBadRequest, "Range too long", err)
		return
	}

	writeJSON(w, http.StatusOK, WorkdaysResponse{
		Start:    generic.FormatDate(start),
		End:      generic.FormatDate(end),
		Workdays: period.Workdays(h.Engine.Holidays),
	})
}

// =============================================================================
// POLICY HANDLERS
// =============================================================================

// GetPolicy returns the limits the engine applies.
// GET /api/policy
func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	p := h.Engine.Policy
	writeJSON(w, http.StatusOK, PolicyDTO{
		MaxPTO:              p.MaxPTO.Display(),
		MaxSick:             p.MaxSick.Display(),
		PTOFloor:            p.PTOFloor.Display(),
		VacationHoursPerDay: p.VacationHoursPerDay.Display(),
		HoursPerWorkday:     p.HoursPerWorkday,
		MaxHorizonYears:     p.MaxHorizonYears,
		HolidaySource:       h.HolidaySource,
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithError(err).Warn("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
		resp.Code = errorCode(err)
	}
	writeJSON(w, status, resp)
}

func clientStatus(err error) int {
	if generic.IsClientError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, generic.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, generic.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, generic.ErrInvalidNumber):
		return "invalid_number"
	}
	return ""
}
