package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"menu-service/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// internalErrorMessage replaces the message of every unmapped fault.
const internalErrorMessage = "Unexpected error occurred"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding failures surface as a truncated body; the status is already sent
	_ = json.NewEncoder(w).Encode(data)
}

// statusFor maps a domain error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeBadRequest, model.ErrCodeValidation, model.ErrCodeInvalidParameter, model.ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case model.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// MapError converts err into the uniform error body. Faults that are not
// domain errors become a 500 that carries no internal detail.
func MapError(err error, path string, at time.Time) (int, model.ErrorResponse) {
	var de *model.DomainError
	if !errors.As(err, &de) {
		status := http.StatusInternalServerError
		return status, model.NewErrorResponse(at, status, http.StatusText(status), internalErrorMessage, path, nil)
	}

	status := statusFor(de.Code)
	message := de.Message
	if status == http.StatusInternalServerError {
		message = internalErrorMessage
	}

	return status, model.NewErrorResponse(at, status, http.StatusText(status), message, path, de.Details)
}

// writeError writes the error body for err and logs it.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	status, body := MapError(err, r.URL.Path, time.Now())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("handler error")

	writeJSON(w, status, body)
}

// NotFoundHandler answers requests that match no route.
func NotFoundHandler(logger zerolog.Logger) http.Handler {
	logger = logger.With().Str("handler", "fallback").Logger()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := model.NewDomainError(model.ErrCodeNotFound,
			fmt.Sprintf("No handler found for %s %s", r.Method, r.URL.Path))
		writeError(w, r, err, logger)
	})
}

// MethodNotAllowedHandler answers requests whose path matches a route but
// whose method does not.
func MethodNotAllowedHandler(logger zerolog.Logger) http.Handler {
	logger = logger.With().Str("handler", "fallback").Logger()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := model.NewDomainError(model.ErrCodeMethodNotAllowed,
			fmt.Sprintf("Request method '%s' is not supported", r.Method))
		writeError(w, r, err, logger)
	})
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Request body is required")
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Malformed JSON request: "+err.Error())
	}

	return nil
}

// pathID parses the named path variable as a positive ID.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, model.NewInvalidParameterError(
			fmt.Sprintf("Invalid value '%s' for parameter '%s'", raw, name))
	}

	return id, nil
}
