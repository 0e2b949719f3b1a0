package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed API response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of confirmation-style success responses.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes data as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an ErrorResponse with the given message. Messages are meant for end
// users; internal error detail belongs in the server log, not here.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}
