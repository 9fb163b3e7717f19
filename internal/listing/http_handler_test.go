package listing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookbarter/internal/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(store Store) *HTTPHandler {
	return NewHTTPHandler(newTestService(store))
}

func decodeSuccess(t *testing.T, w *httptest.ResponseRecorder) httpx.SuccessResponse {
	t.Helper()
	var resp httpx.SuccessResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.True(t, resp.Success)
	return resp
}

func TestHTTPHandler_List(t *testing.T) {
	handler := newTestHandler(&fakeStore{listings: []Listing{{
		ID: "1700000000000", Title: "Test Book", Author: "A. Author",
		Subject: "Mathematics", Condition: "Good", Price: 500,
	}}})

	t.Run("unfiltered", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeSuccess(t, w)
		assert.Len(t, resp.Data, 7)

		meta, ok := resp.Meta.(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 7, meta["total"])
		assert.Len(t, meta["subjects"], 6)
		assert.Len(t, meta["conditions"], 3)
	})

	t.Run("search filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?search=test", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeSuccess(t, w)
		require.Len(t, resp.Data, 1)
	})

	t.Run("combined filters", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?subject=Mathematics&condition=Good", nil)

		handler.List(w, r)

		resp := decodeSuccess(t, w)
		assert.Len(t, resp.Data, 2)
	})

	t.Run("all sentinels", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?subject=all&condition=all", nil)

		handler.List(w, r)

		resp := decodeSuccess(t, w)
		assert.Len(t, resp.Data, 7)
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	handler := newTestHandler(&fakeStore{})

	t.Run("seed record", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/1", nil)
		r.SetPathValue("id", "1")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/nope", nil)
		r.SetPathValue("id", "nope")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	const body = `{
		"title": "Test Book", "author": "A. Author", "subject": "Mathematics",
		"condition": "Good", "price": "500", "seller": "Test Seller",
		"location": "North Campus", "whatsapp": "919876543216"
	}`

	t.Run("created", func(t *testing.T) {
		store := &fakeStore{}
		handler := newTestHandler(store)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/books/1700000000000", w.Header().Get("Location"))
		require.Len(t, store.listings, 1)
		assert.Equal(t, DefaultRating, store.listings[0].Rating)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := newTestHandler(&fakeStore{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader("{not json"))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		handler := newTestHandler(&fakeStore{})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"Only Title"}`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp httpx.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.NotEmpty(t, resp.Error.Details)
	})

	t.Run("non-numeric price", func(t *testing.T) {
		handler := newTestHandler(&fakeStore{})

		bad := strings.Replace(body, `"500"`, `"abc"`, 1)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(bad))

		handler.Create(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp httpx.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "INVALID_PRICE", resp.Error.Code)
	})
}

func TestHTTPHandler_Meta(t *testing.T) {
	handler := newTestHandler(&fakeStore{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/meta", nil)

	handler.Meta(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeSuccess(t, w)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Len(t, data["subjects"], len(Subjects))
	assert.Len(t, data["conditions"], len(Conditions))
	assert.Len(t, data["locations"], len(Locations))
}
