package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/fdg312/thali/internal/userctx"
)

// Handlers handles HTTP requests for reports
type Handlers struct {
	service *Service
}

// NewHandlers creates new handlers
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleMealPlan handles GET /v1/reports/meal-plan?format=pdf|csv
func (h *Handlers) HandleMealPlan(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	report, err := h.service.MealPlanReport(r.Context(), userID, r.URL.Query().Get("format"))
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	h.deliver(w, r, report)
}

// HandleMealLog handles GET /v1/reports/meal-log?from=&to=&format=
func (h *Handlers) HandleMealLog(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())
	q := r.URL.Query()

	report, err := h.service.MealLogReport(r.Context(), userID, q.Get("format"), q.Get("from"), q.Get("to"))
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	h.deliver(w, r, report)
}

func (h *Handlers) deliver(w http.ResponseWriter, r *http.Request, report *Report) {
	if h.service.LocalMode() {
		w.Header().Set("Content-Type", report.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.FileName))
		w.Header().Set("Content-Length", strconv.FormatInt(int64(len(report.Data)), 10))
		w.WriteHeader(http.StatusOK)
		w.Write(report.Data)
		return
	}

	downloadURL, err := h.service.DownloadURL(r.Context(), report)
	if err != nil {
		log.Printf("WARN reports: download url failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to generate download URL")
		return
	}

	if r.URL.Query().Get("redirect") == "1" {
		http.Redirect(w, r, downloadURL, http.StatusFound)
		return
	}

	dto := ReportDTO{
		ID:          report.ID,
		Kind:        report.Kind,
		Format:      report.Format,
		From:        report.From,
		To:          report.To,
		FileName:    report.FileName,
		DownloadURL: downloadURL,
		SizeBytes:   report.SizeBytes,
		CreatedAt:   report.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dto)
}

func (h *Handlers) writeServiceError(w http.ResponseWriter, userID string, err error) {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		writeError(w, http.StatusBadRequest, "invalid_format", "Format must be 'pdf' or 'csv'")
	case errors.Is(err, ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "invalid_date", "Invalid date format, use YYYY-MM-DD")
	case errors.Is(err, ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, "invalid_range", "From date must be before to date")
	case errors.Is(err, ErrRangeTooLarge):
		writeError(w, http.StatusBadRequest, "range_too_large", fmt.Sprintf("Date range exceeds maximum of %d days", h.service.MaxRangeDays()))
	case errors.Is(err, ErrNoSavedPlan):
		writeError(w, http.StatusNotFound, "not_found", "No saved meal plan")
	default:
		log.Printf("reports: export failed for user=%s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to generate report")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
