package recipes

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

type ListResponse struct {
	Recipes []Recipe `json:"recipes"`
	Total   int      `json:"total"`
	Count   int      `json:"count"`
}

// HandleList handles GET /v1/recipes?q=&category=&region=&spice=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	found := h.catalog.Search(Filter{
		Query:      q.Get("q"),
		Category:   q.Get("category"),
		Region:     q.Get("region"),
		SpiceLevel: q.Get("spice"),
	})

	writeJSON(w, http.StatusOK, ListResponse{
		Recipes: found,
		Total:   h.catalog.Len(),
		Count:   len(found),
	})
}

// HandleGet handles GET /v1/recipes/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "id must be an integer")
		return
	}

	recipe, ok := h.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Recipe not found")
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
