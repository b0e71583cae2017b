package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/pkg/circuitbreaker"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"
	textPlain         = "text/plain; charset=utf-8"

	codeNotFound           = "NOT_FOUND"
	codeInvalidState       = "INVALID_STATE"
	codeValidationError    = "VALIDATION_ERROR"
	codeInvalidID          = "INVALID_ID"
	codeInvalidJSON        = "INVALID_JSON"
	codePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	codeServiceUnavailable = "SERVICE_UNAVAILABLE"
	codeInternalError      = "INTERNAL_ERROR"

	msgDeviceDomainNotFound  = "Device domain not found"
	msgCannotUpdateInUse     = "Cannot update Name and Brand while device domain is in use"
	msgCannotDeleteInUse     = "Device domain in use"
	msgInvalidDeviceDomainID = "invalid device domain ID"
	msgInvalidRequestBody    = "invalid request body"
	msgPayloadTooLarge       = "request body too large"
	msgServiceUnavailable    = "service temporarily unavailable"
	msgInternalError         = "internal server error"
	msgDeviceDomainDeleted   = "Device domain deleted successfully"
)

type (
	errorDetail struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}

	ErrorResponse struct {
		Code      string        `json:"code"`
		Message   string        `json:"message"`
		Timestamp time.Time     `json:"timestamp"`
		Details   []errorDetail `json:"details,omitempty"`
	}
)

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeTextResponse(w http.ResponseWriter, status int, text string) {
	w.Header().Set(contentTypeHeader, textPlain)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSONResponse(w, status, ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func writeValidationError(w http.ResponseWriter, errs *model.ValidationErrors) {
	details := make([]errorDetail, 0, len(errs.Errors))
	for _, e := range errs.Errors {
		details = append(details, errorDetail{Field: e.Field, Message: e.Message, Code: e.Code})
	}

	writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{
		Code:      codeValidationError,
		Message:   errs.Error(),
		Timestamp: time.Now().UTC(),
		Details:   details,
	})
}

// writeDomainError maps service errors onto the HTTP error contract.
func writeDomainError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	var validationErrs *model.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		writeValidationError(w, validationErrs)
	case errors.Is(err, model.ErrDeviceDomainNotFound):
		writeErrorResponse(w, http.StatusNotFound, codeNotFound, msgDeviceDomainNotFound)
	case errors.Is(err, model.ErrCannotUpdateInUseDeviceDomain):
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidState, msgCannotUpdateInUse)
	case errors.Is(err, model.ErrCannotDeleteInUseDeviceDomain):
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidState, msgCannotDeleteInUse)
	case errors.Is(err, model.ErrInvalidState):
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidState, err.Error())
	case errors.Is(err, model.ErrInvalidDeviceDomainID):
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidID, msgInvalidDeviceDomainID)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), errors.Is(err, circuitbreaker.ErrTooManyRequests):
		writeErrorResponse(w, http.StatusServiceUnavailable, codeServiceUnavailable, msgServiceUnavailable)
	default:
		reqLogger := log.WithContext(r.Context())
		reqLogger.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")

		writeErrorResponse(w, http.StatusInternalServerError, codeInternalError, msgInternalError)
	}
}
