package api

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"recruit-kit/internal/blob"
	"recruit-kit/internal/config"
	"recruit-kit/internal/convert"
	"recruit-kit/internal/holidays"
	"recruit-kit/internal/ocr"
	"recruit-kit/internal/render"
	"recruit-kit/internal/storage"
)

// HolidaySource returns the public holidays for a set of years and whether
// any year had to fall back to the built-in list.
type HolidaySource interface {
	FetchYears(ctx context.Context, years []int, country string) ([]holidays.Holiday, bool)
}

// AuditLog records conversions. storage.DB satisfies it.
type AuditLog interface {
	SaveConversion(ctx context.Context, c *storage.Conversion) error
	ListConversions(ctx context.Context, f storage.ConversionFilter) ([]storage.Conversion, error)
}

// Deps are the collaborators the API is built from. Analyzer, Store,
// Converter and Audit may be nil; the handlers that need them then report
// a configuration error.
type Deps struct {
	Config    *config.Config
	Analyzer  ocr.Analyzer
	Converter convert.Converter
	Store     blob.Store
	Branding  render.Branding
	Holidays  HolidaySource
	Audit     AuditLog
}

type API struct {
	cfg       *config.Config
	analyzer  ocr.Analyzer
	converter convert.Converter
	store     blob.Store
	branding  render.Branding
	holidays  HolidaySource
	audit     AuditLog

	auditQueue chan AuditJob // background queue for audit log writes
	workers    sync.WaitGroup
}

func NewAPI(d Deps) *API {
	cfg := d.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	api := &API{
		cfg:       cfg,
		analyzer:  d.Analyzer,
		converter: d.Converter,
		store:     d.Store,
		branding:  d.Branding,
		holidays:  d.Holidays,
		audit:     d.Audit,
	}
	if api.audit != nil {
		api.auditQueue = make(chan AuditJob, 50)
		api.StartBackgroundWorkers()
	}
	return api
}

// Close stops the background workers after the queue drains.
func (a *API) Close() {
	if a.auditQueue != nil {
		close(a.auditQueue)
		a.workers.Wait()
		a.auditQueue = nil
	}
}

// ListConversionsHandler lists recent conversions from the audit log
// @Summary List conversions
// @Description List audit records of CV conversions, newest first
// @Tags cv
// @Produce json
// @Param limit query int false "Maximum number of records (default 50, max 500)"
// @Param name query string false "Candidate name contains"
// @Param status query string false "succeeded or failed"
// @Success 200 {array} storage.Conversion
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /conversions [get]
func (a *API) ListConversionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, methodNotAllowed(r.Method))
		return
	}
	if a.audit == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: "conversion log is not enabled",
			Type:  ConfigurationError,
		})
		return
	}

	q := r.URL.Query()
	filter := storage.ConversionFilter{
		CandidateName: q.Get("name"),
		Status:        q.Get("status"),
	}
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 0 {
			a.writeError(w, badRequest("limit must be a non-negative integer", err))
			return
		}
		filter.Limit = limit
	}
	if filter.Status != "" && filter.Status != storage.StatusSucceeded && filter.Status != storage.StatusFailed {
		a.writeError(w, badRequest("status must be succeeded or failed", nil))
		return
	}

	conversions, err := a.audit.ListConversions(r.Context(), filter)
	if err != nil {
		a.writeError(w, processingFailed("failed to list conversions", err))
		return
	}
	writeJSON(w, http.StatusOK, conversions)
}
