package auth

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/fdg312/thali/internal/userctx"
)

type Handlers struct {
	service *Service
}

func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleDevAuth handles POST /v1/auth/dev
func (h *Handlers) HandleDevAuth(w http.ResponseWriter, r *http.Request) {
	var req DevAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	resp, err := h.service.SignInDev(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, ErrInvalidUserID) {
			writeErrorResponse(w, http.StatusBadRequest, "invalid_request", "userId must be 1-64 letters, digits or ._@-")
			return
		}
		log.Printf("auth: dev sign-in failed: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "internal_error", "Sign-in failed")
		return
	}

	log.Printf("INFO auth: dev sign-in user=%s", resp.UserID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// HandleSignOut handles POST /v1/auth/signout
func (h *Handlers) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	userID := userctx.UserIDOrDefault(r.Context())

	if err := h.service.SignOut(r.Context(), userID); err != nil {
		log.Printf("auth: sign-out failed for user=%s: %v", userID, err)
		writeErrorResponse(w, http.StatusInternalServerError, "internal_error", "Sign-out failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
