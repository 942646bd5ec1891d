package mealplans

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fdg312/thali/internal/cuisine"
	"github.com/fdg312/thali/internal/userctx"
)

// Handler handles HTTP requests for meal plans.
type Handler struct {
	service *Service
}

// NewHandler creates a new meal plans handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGenerate handles POST /v1/meal-plan/generate
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	var req Preferences
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	plan, prefs, err := h.service.Generate(r.Context(), userID, req)
	if err != nil {
		if msg, ok := cuisine.ValidationMessage(err); ok {
			writeError(w, http.StatusBadRequest, "invalid_request", msg)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to generate meal plan")
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Plan:        plan,
		Preferences: prefs,
		TotalPages:  Paginate(plan.Days, 1).TotalPages,
	})
}

// HandleSave handles POST /v1/meal-plan/save
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	saved, err := h.service.Save(r.Context(), userID)
	if err != nil {
		if msg, ok := cuisine.ValidationMessage(err); ok {
			writeError(w, http.StatusBadRequest, "invalid_request", msg)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to save meal plan")
		return
	}

	writeJSON(w, http.StatusOK, SavedPlanResponse{Plan: saved})
}

// HandleGetSaved handles GET /v1/meal-plan/saved?page=
func (h *Handler) HandleGetSaved(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	var page *Page
	pageStr := r.URL.Query().Get("page")
	pageNum := 0
	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_request", "page must be a positive integer")
			return
		}
		pageNum = n
	}

	saved, found, err := h.service.GetSaved(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to get meal plan")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "No saved meal plan")
		return
	}

	if pageNum > 0 {
		p := Paginate(saved.Days, pageNum)
		page = &p
	}

	writeJSON(w, http.StatusOK, SavedPlanResponse{Plan: saved, Page: page})
}

// HandleDeleteSaved handles DELETE /v1/meal-plan/saved
func (h *Handler) HandleDeleteSaved(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	if err := h.service.DeleteSaved(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete meal plan")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleTemplate handles GET /v1/meal-plan/template
func (h *Handler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Template())
}

// HandleOptions handles GET /v1/meal-plan/options
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, OptionsResponse{
		Goals:        cuisine.AyurvedicGoals,
		DietTypes:    cuisine.DietTypes,
		Restrictions: cuisine.Restrictions,
		Durations:    ValidDurations,
		MinServings:  MinServings,
		MaxServings:  MaxServings,
		MealTypes:    cuisine.MealTypes,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response in the standard format.
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
