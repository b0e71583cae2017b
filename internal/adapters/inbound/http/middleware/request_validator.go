package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/architeacher/devicedomains/internal/domain/model"
)

const (
	codeValidationError  = "VALIDATION_ERROR"
	codeInvalidID        = "INVALID_ID"
	codeInvalidJSON      = "INVALID_JSON"
	codeNotFound         = "NOT_FOUND"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
)

type RequestValidatorOptions struct {
	Options openapi3filter.Options
	// BasePath is the collection root; a request to it without the trailing
	// slash is matched as if the slash were present.
	BasePath     string
	ErrorHandler func(w http.ResponseWriter, err error, statusCode int)
}

// OapiRequestValidator rejects requests that do not match the OpenAPI
// document before they reach a handler.
func OapiRequestValidator(swagger *openapi3.T, options *RequestValidatorOptions) (func(http.Handler) http.Handler, error) {
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("building OpenAPI router: %w", err)
	}

	if options == nil {
		options = &RequestValidatorOptions{}
	}

	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = RequestValidationErrHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)

				return
			}

			statusCode, err := validateRequest(r, router, options)
			if err != nil {
				errorHandler(w, err, statusCode)

				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func validateRequest(r *http.Request, router routers.Router, options *RequestValidatorOptions) (int, error) {
	lookup := r
	if base := strings.TrimSuffix(options.BasePath, "/"); base != "" && r.URL.Path == base {
		lookup = r.Clone(r.Context())
		lookup.URL.Path = base + "/"
	}

	route, pathParams, err := router.FindRoute(lookup)
	if err != nil {
		if errors.Is(err, routers.ErrMethodNotAllowed) {
			return http.StatusMethodNotAllowed, err
		}

		return http.StatusNotFound, err
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: pathParams,
		Route:      route,
		Options:    &options.Options,
	}

	if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return http.StatusRequestEntityTooLarge, err
		}

		var requestErr *openapi3filter.RequestError
		if errors.As(err, &requestErr) {
			return http.StatusBadRequest, err
		}

		return http.StatusInternalServerError, err
	}

	return http.StatusOK, nil
}

// RequestValidationErrHandler renders a validation failure with the same
// error codes the handlers use.
func RequestValidationErrHandler(w http.ResponseWriter, err error, statusCode int) {
	switch statusCode {
	case http.StatusNotFound:
		writeError(w, statusCode, codeNotFound, "resource not found")
	case http.StatusMethodNotAllowed:
		writeError(w, statusCode, codeMethodNotAllowed, "method not allowed")
	case http.StatusRequestEntityTooLarge:
		writeError(w, statusCode, codePayloadTooLarge, "request body too large")
	case http.StatusBadRequest:
		code, message, details := classifyRequestError(err)
		writeError(w, statusCode, code, message, details...)
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, msgInternalError)
	}
}

func classifyRequestError(err error) (string, string, []errorDetail) {
	var requestErr *openapi3filter.RequestError
	if !errors.As(err, &requestErr) {
		return codeValidationError, err.Error(), nil
	}

	var schemaErr *openapi3.SchemaError
	hasSchemaErr := errors.As(requestErr.Err, &schemaErr)

	if param := requestErr.Parameter; param != nil {
		if param.In == openapi3.ParameterInPath {
			return codeInvalidID, "invalid device domain ID", nil
		}

		reason := parameterReason(requestErr, schemaErr)
		detail := errorDetail{Field: param.Name, Message: reason, Code: detailCode(requestErr, schemaErr)}

		return codeValidationError,
			fmt.Sprintf("invalid %s parameter %q: %s", param.In, param.Name, reason),
			[]errorDetail{detail}
	}

	var parseErr *openapi3filter.ParseError
	if requestErr.RequestBody != nil &&
		(errors.As(requestErr.Err, &parseErr) || strings.Contains(requestErr.Reason, "decode")) {
		return codeInvalidJSON, "invalid request body", nil
	}

	if hasSchemaErr {
		field := strings.Join(schemaErr.JSONPointer(), ".")
		detail := errorDetail{Field: field, Message: schemaErr.Reason, Code: detailCode(requestErr, schemaErr)}

		if field == "" {
			return codeValidationError, schemaErr.Reason, []errorDetail{detail}
		}

		return codeValidationError, fmt.Sprintf("%s: %s", field, schemaErr.Reason), []errorDetail{detail}
	}

	if requestErr.Reason != "" {
		return codeValidationError, requestErr.Reason, nil
	}

	return codeValidationError, "request validation failed", nil
}

// parameterReason never returns an empty string: schema failures on a
// parameter carry their text on the wrapped error, not on the RequestError.
func parameterReason(requestErr *openapi3filter.RequestError, schemaErr *openapi3.SchemaError) string {
	switch {
	case requestErr.Reason != "":
		return requestErr.Reason
	case schemaErr != nil && schemaErr.SchemaField == "enum":
		return fmt.Sprintf("%s must be one of %s", requestErr.Parameter.Name, enumValues(schemaErr.Schema))
	case schemaErr != nil && schemaErr.Reason != "":
		return schemaErr.Reason
	case requestErr.Err != nil:
		return requestErr.Err.Error()
	default:
		return "invalid value"
	}
}

func detailCode(requestErr *openapi3filter.RequestError, schemaErr *openapi3.SchemaError) string {
	if errors.Is(requestErr.Err, openapi3filter.ErrInvalidRequired) {
		return model.ValidationCodeRequired
	}

	if schemaErr == nil {
		return model.ValidationCodeInvalidType
	}

	switch schemaErr.SchemaField {
	case "enum":
		return model.ValidationCodeInvalidEnum
	case "required":
		return model.ValidationCodeRequired
	case "nullable":
		return model.ValidationCodeNotNull
	default:
		return model.ValidationCodeInvalidType
	}
}

func enumValues(schema *openapi3.Schema) string {
	if schema == nil {
		return ""
	}

	values := make([]string, 0, len(schema.Enum))
	for _, v := range schema.Enum {
		values = append(values, fmt.Sprint(v))
	}

	return strings.Join(values, ", ")
}
