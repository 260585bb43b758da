package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest      = "bad_request"
	ErrCodeValidation      = "validation_error"
	ErrCodeConflict        = "already_confirmed"
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeTooManyRequests = "too_many_requests"
	ErrCodeUnavailable     = "unavailable"
	ErrCodeInternalError   = "internal_error"
)

// ErrorResponse is the body of every error response. Detail is meant to be
// shown to the guest as is.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an ErrorResponse with the given code and detail.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, detail string) {
	WriteJSON(w, statusCode, ErrorResponse{Detail: detail, Code: code})
}
