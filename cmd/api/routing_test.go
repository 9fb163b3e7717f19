package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookbarter/internal/listing"
	"bookbarter/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *http.ServeMux {
	return newRouter(listing.NewService(store.NewMemory()), nil)
}

func TestRouting(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		method, path string
		wantStatus   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/books", http.StatusOK},
		{http.MethodGet, "/books/1", http.StatusOK},
		{http.MethodGet, "/books/1/contact", http.StatusOK},
		{http.MethodGet, "/meta", http.StatusOK},
		{http.MethodGet, "/books/unknown-id", http.StatusNotFound},
		{http.MethodDelete, "/books/1", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestSubmitThenBrowse(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(listing.Submission{
		Title:     "Linear Algebra Done Right",
		Author:    "Sheldon Axler",
		Subject:   "Mathematics",
		Condition: "Excellent",
		Price:     "720",
		Seller:    "Priya K.",
		Location:  "East Campus",
		WhatsApp:  "919876543299",
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)
	location := w.Header().Get("Location")
	require.NotEmpty(t, location)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books?search=axler", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Linear Algebra Done Right")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, location+"/contact", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wa.me/919876543299")
}
