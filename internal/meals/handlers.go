package meals

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fdg312/thali/internal/cuisine"
	"github.com/fdg312/thali/internal/meallog"
	"github.com/fdg312/thali/internal/userctx"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleAdd handles POST /v1/meals
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	var req AddMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	meal, err := h.service.Add(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, err, "Failed to add meal")
		return
	}

	writeJSON(w, http.StatusCreated, meal)
}

// HandleList handles GET /v1/meals?scope=today|all&date=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())
	q := r.URL.Query()

	found, err := h.service.List(r.Context(), userID, q.Get("scope"), q.Get("date"))
	if err != nil {
		h.writeServiceError(w, err, "Failed to list meals")
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{Meals: found, Count: len(found)})
}

// HandleSummary handles GET /v1/meals/summary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	summary, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err, "Failed to summarize meals")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// HandleUpdate handles PATCH /v1/meals/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())
	id := r.PathValue("id")

	var req UpdateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	meal, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update meal")
		return
	}

	writeJSON(w, http.StatusOK, meal)
}

// HandleDelete handles DELETE /v1/meals/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	if err := h.service.Remove(r.Context(), userID, r.PathValue("id")); err != nil {
		h.writeServiceError(w, err, "Failed to delete meal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleClearToday handles DELETE /v1/meals/today
func (h *Handler) HandleClearToday(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	removed, err := h.service.ClearToday(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err, "Failed to clear meals")
		return
	}

	writeJSON(w, http.StatusOK, ClearResponse{Removed: removed})
}

// HandleClearAll handles DELETE /v1/meals
func (h *Handler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	if err := h.service.ClearAll(r.Context(), userID); err != nil {
		h.writeServiceError(w, err, "Failed to clear meals")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var limitErr *DailyLimitError
	switch {
	case errors.As(err, &limitErr):
		writeError(w, http.StatusConflict, "daily_limit_reached", limitErr.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Meal not found")
	case errors.Is(err, meallog.ErrClosed):
		writeError(w, http.StatusConflict, "session_closed", "Session ended, please retry")
	default:
		if msg, ok := cuisine.ValidationMessage(err); ok {
			writeError(w, http.StatusBadRequest, "invalid_request", msg)
			return
		}
		log.Printf("meals: %s: %v", fallback, err)
		writeError(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
