package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-success response from the backend. Message prefers
// the backend's own {"message": ...} payload when one is present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}

func apiErrorFrom(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{Status: status, Message: payload.Message}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
