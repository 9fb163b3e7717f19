package listing

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookbarter/internal/httpx"

	"github.com/go-playground/validator/v10"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := Query{
		Search:    query.Get("search"),
		Subject:   query.Get("subject"),
		Condition: query.Get("condition"),
	}

	listings, facets := h.service.List(r.Context(), q)

	httpx.JSONSuccess(r, w, listings, map[string]any{
		"total":      len(listings),
		"subjects":   facets.Subjects,
		"conditions": facets.Conditions,
	})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	l, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Listing not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(r, w, l, nil)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Malformed request body", nil)
		return
	}

	l, err := h.service.Create(r.Context(), sub)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			details := make([]httpx.ErrorDetail, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, httpx.ErrorDetail{
					Field:   fe.Field(),
					Message: "This field is required",
				})
			}
			httpx.JSONError(r, w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Missing required fields", details)
		case errors.Is(err, ErrInvalidPrice):
			httpx.JSONError(r, w, http.StatusUnprocessableEntity, "INVALID_PRICE", "Price must be a non-negative number", []httpx.ErrorDetail{
				{Field: "Price", Message: "must be a non-negative number"},
			})
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	w.Header().Set("Location", "/books/"+l.ID)
	httpx.JSONSuccessCreated(r, w, l)
}

// Meta handles GET /meta: the fixed submission-form enumerations, as
// opposed to the catalog-derived facets returned by List.
func (h *HTTPHandler) Meta(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, map[string]any{
		"subjects":   Subjects,
		"conditions": Conditions,
		"locations":  Locations,
	}, nil)
}
