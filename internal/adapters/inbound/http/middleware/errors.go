package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"
)

type (
	errorDetail struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}

	errorBody struct {
		Code      string        `json:"code"`
		Message   string        `json:"message"`
		Timestamp string        `json:"timestamp"`
		Details   []errorDetail `json:"details,omitempty"`
	}
)

func writeError(w http.ResponseWriter, status int, code, message string, details ...errorDetail) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(errorBody{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Details:   details,
	})
}
