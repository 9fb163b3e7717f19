package contact

import (
	"context"
	"errors"
	"net/http"

	"bookbarter/internal/httpx"
	"bookbarter/internal/listing"
)

// Getter resolves a listing by id.
type Getter interface {
	Get(ctx context.Context, id string) (listing.Listing, error)
}

type HTTPHandler struct {
	listings Getter
}

func NewHTTPHandler(listings Getter) *HTTPHandler {
	return &HTTPHandler{listings: listings}
}

// Contact handles GET /books/{id}/contact. It returns the WhatsApp deep
// link for the listing, or 307-redirects to it when redirect=true so a
// browser can be pointed at the endpoint directly.
func (h *HTTPHandler) Contact(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	l, err := h.listings.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Listing not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	url := WhatsAppLink(l)

	if r.URL.Query().Get("redirect") == "true" {
		http.Redirect(w, r, url, http.StatusTemporaryRedirect)
		return
	}
	httpx.JSONSuccess(r, w, map[string]string{"url": url}, nil)
}
