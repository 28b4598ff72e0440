package handler

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
	"github.com/makuralymi/Questionnaire-survey/internal/store"
	"github.com/makuralymi/Questionnaire-survey/internal/survey"
	"github.com/makuralymi/Questionnaire-survey/pkg/utils"
)

// maxBodyBytes caps submission payloads at 1 MiB.
const maxBodyBytes = 1 << 20

// recentSubmissionLimit is how many {submittedAt, ip} pairs the stats
// endpoint returns, newest first.
const recentSubmissionLimit = 100

// SurveyHandler serves the submission, stats, and download endpoints. The
// store, schema, and cache are injected so any questionnaire shape runs
// through the same handlers.
type SurveyHandler struct {
	Store             store.Store
	Schema            model.Schema
	Cache             *survey.StatsCache
	TrustProxyHeaders bool
}

// statsResponse is the Aggregation Result plus the recent submission list.
type statsResponse struct {
	*model.Stats
	Submissions []model.SubmissionInfo `json:"submissions"`
}

// Submit accepts one questionnaire submission
// @Summary Submit a survey response
// @Description Validate a respondent's answers against the schema and append them to the record store
// @Tags surveys
// @Accept json
// @Produce json
// @Param payload body object true "Answers keyed by question identifier"
// @Success 201 {object} map[string]interface{} "Submission accepted"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /surveys [post]
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var payload model.Record
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "invalid JSON payload",
		})
		return
	}

	if errs := survey.Validate(payload, h.Schema); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "validation failed",
			"errors":  errs,
		})
		return
	}

	// Records are immutable once stored: copy the payload and assign the
	// accept-time metadata.
	rec := make(model.Record, len(payload)+3)
	for k, v := range payload {
		rec[k] = v
	}
	rec[model.FieldID] = uuid.New().String()
	rec[model.FieldSubmittedAt] = time.Now().UTC().Format(time.RFC3339)
	rec[model.FieldIP] = h.clientIP(r)

	all, err := h.Store.Append(rec)
	if err != nil {
		// The cache keeps its last-good value; the caller gets no internals.
		log.Printf("❌ Failed to store submission: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "storage failed, please retry later",
		})
		return
	}

	// Synchronous with the write path: a 201 guarantees the next unfiltered
	// stats read observes this submission.
	h.Cache.Set(survey.BuildStats(all, h.Schema))

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "submission accepted",
	})
}

// Stats returns aggregated statistics
// @Summary Get aggregated statistics
// @Description Counts, demographic tallies, and scale averages, plus the most recent submissions
// @Tags stats
// @Produce json
// @Param startDate query string false "Inclusive start date (yyyy-mm-dd)"
// @Param endDate query string false "Inclusive end date (yyyy-mm-dd)"
// @Success 200 {object} map[string]interface{} "Aggregation result"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Stats generation failed"
// @Router /stats [get]
func (h *SurveyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.dateRange(w, r)
	if !ok {
		return
	}

	all, err := h.Store.ReadAll()
	if err != nil {
		log.Printf("❌ Failed to read record store: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "stats generation failed",
		})
		return
	}

	var stats *model.Stats
	filtered := !start.IsZero() || !end.IsZero()
	if filtered {
		// Bounded queries always recompute, never served from cache.
		all = survey.FilterByDate(all, start, end)
		stats = survey.BuildStats(all, h.Schema)
	} else if stats = h.Cache.Get(); stats == nil {
		stats = survey.BuildStats(all, h.Schema)
		h.Cache.Set(stats)
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Stats:       stats,
		Submissions: survey.RecentSubmissions(all, recentSubmissionLimit),
	})
}

// Download streams the record set as CSV or JSON
// @Summary Download survey data
// @Description Export the (optionally date-filtered) record set as CSV or JSON
// @Tags stats
// @Produce text/csv
// @Param format query string false "csv (default) or json"
// @Param startDate query string false "Inclusive start date (yyyy-mm-dd)"
// @Param endDate query string false "Inclusive end date (yyyy-mm-dd)"
// @Success 200 {file} file "Export download"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /download [get]
func (h *SurveyHandler) Download(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.dateRange(w, r)
	if !ok {
		return
	}

	all, err := h.Store.ReadAll()
	if err != nil {
		log.Printf("❌ Failed to read record store: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "export failed",
		})
		return
	}
	all = survey.FilterByDate(all, start, end)

	format := utils.NormalizeFormat(r.URL.Query().Get("format"))
	data, err := survey.Format(all, h.Schema, format)
	if err != nil {
		log.Printf("❌ Failed to format export: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "export failed",
		})
		return
	}

	w.Header().Set("Content-Type", utils.ContentType(format))
	w.Header().Set("Content-Disposition",
		`attachment; filename="`+utils.ExportFileName(format, time.Now())+`"`)
	w.Write(data)
}

// dateRange parses the optional startDate/endDate query values. On a bad
// value it answers 400 and returns ok=false.
func (h *SurveyHandler) dateRange(w http.ResponseWriter, r *http.Request) (start, end time.Time, ok bool) {
	q := r.URL.Query()
	var err error
	if s := q.Get("startDate"); s != "" {
		if start, err = utils.ParseDateBound(s, false); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"message": "invalid startDate, expected yyyy-mm-dd",
			})
			return start, end, false
		}
	}
	if s := q.Get("endDate"); s != "" {
		if end, err = utils.ParseDateBound(s, true); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"message": "invalid endDate, expected yyyy-mm-dd",
			})
			return start, end, false
		}
	}
	return start, end, true
}

// clientIP captures the best-effort client origin. Proxy headers are
// spoofable and only consulted when the deployment trusts its reverse proxy.
func (h *SurveyHandler) clientIP(r *http.Request) string {
	if h.TrustProxyHeaders {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			return strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
		if real := r.Header.Get("X-Real-Ip"); real != "" {
			return real
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
