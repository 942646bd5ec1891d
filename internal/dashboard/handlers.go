package dashboard

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fdg312/thali/internal/userctx"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGet handles GET /v1/dashboard
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		log.Printf("dashboard: stats failed for user=%s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to load dashboard")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stats)
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
