package httpx

import (
	"encoding/json"
	"net/http"
)

// SuccessResponse is the envelope for every 2xx JSON body.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Meta    any  `json:"meta,omitempty"`
}

// ErrorResponse is the envelope for every error JSON body.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    any               `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// meta folds the request id into a custom meta map, if either exists.
func meta(r *http.Request, custom map[string]any) any {
	requestID := RequestIDFrom(r)
	if requestID == "" && custom == nil {
		return nil
	}
	m := make(map[string]any, len(custom)+1)
	for k, v := range custom {
		m[k] = v
	}
	if requestID != "" {
		m["request_id"] = requestID
	}
	return m
}

// JSONSuccess writes a 200 envelope with optional meta entries.
func JSONSuccess(r *http.Request, w http.ResponseWriter, data any, custom map[string]any) {
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data, Meta: meta(r, custom)})
}

// JSONSuccessCreated writes a 201 envelope.
func JSONSuccessCreated(r *http.Request, w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, SuccessResponse{Success: true, Data: data, Meta: meta(r, nil)})
}

// JSONError writes an error envelope with a machine code and optional
// per-field details.
func JSONError(r *http.Request, w http.ResponseWriter, status int, code, message string, details []ErrorDetail) {
	writeJSON(w, status, ErrorResponse{
		Success: false,
		Error:   ErrorResponseBody{Code: code, Message: message, Details: details},
		Meta:    meta(r, nil),
	})
}
