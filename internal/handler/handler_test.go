package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menu-service/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeError reads an error body from a recorded response.
func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestMapError(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedLabel   string
		expectedMessage string
		expectedDetails []string
	}{
		{
			name:            "Not found",
			err:             model.NewNotFoundError("Category", "id", 4),
			expectedStatus:  http.StatusNotFound,
			expectedLabel:   "Not Found",
			expectedMessage: "Category not found with id: '4'",
			expectedDetails: []string{},
		},
		{
			name:            "Duplicate category",
			err:             model.NewDuplicateCategoryError("Desserts"),
			expectedStatus:  http.StatusBadRequest,
			expectedLabel:   "Bad Request",
			expectedMessage: "A category with the name 'Desserts' already exists",
			expectedDetails: []string{},
		},
		{
			name: "Validation failure keeps one detail per field",
			err: model.NewValidationError([]model.FieldError{
				{Field: "name", Message: "Category name is required"},
				{Field: "description", Message: "Description cannot exceed 255 characters"},
			}),
			expectedStatus:  http.StatusBadRequest,
			expectedLabel:   "Bad Request",
			expectedMessage: "Validation failed",
			expectedDetails: []string{
				"name: Category name is required",
				"description: Description cannot exceed 255 characters",
			},
		},
		{
			name:            "Invalid parameter",
			err:             model.NewInvalidParameterError("Invalid value 'abc' for parameter 'minPrice'"),
			expectedStatus:  http.StatusBadRequest,
			expectedLabel:   "Bad Request",
			expectedMessage: "Invalid value 'abc' for parameter 'minPrice'",
			expectedDetails: []string{},
		},
		{
			name:            "Wrapped domain error",
			err:             fmt.Errorf("context: %w", model.NewNotFoundError("MenuItem", "id", 2)),
			expectedStatus:  http.StatusNotFound,
			expectedLabel:   "Not Found",
			expectedMessage: "MenuItem not found with id: '2'",
			expectedDetails: []string{},
		},
		{
			name:            "Unexpected error leaks nothing",
			err:             errors.New("read tcp: connection reset by peer"),
			expectedStatus:  http.StatusInternalServerError,
			expectedLabel:   "Internal Server Error",
			expectedMessage: "Unexpected error occurred",
			expectedDetails: []string{},
		},
		{
			name:            "Internal domain code leaks nothing",
			err:             model.NewDomainError(model.ErrCodeInternalError, "secret detail"),
			expectedStatus:  http.StatusInternalServerError,
			expectedLabel:   "Internal Server Error",
			expectedMessage: "Unexpected error occurred",
			expectedDetails: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := MapError(tt.err, "/api/categories/4", at)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Equal(t, tt.expectedLabel, body.Error)
			assert.Equal(t, tt.expectedMessage, body.Message)
			assert.Equal(t, "/api/categories/4", body.Path)
			assert.Equal(t, "2024-03-09 14:05:07", body.Timestamp)
			assert.Equal(t, tt.expectedDetails, body.Details)
		})
	}
}

func TestFallbackHandlers(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
		w := httptest.NewRecorder()

		NotFoundHandler(logger).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "No handler found for GET /api/unknown", body.Message)
		assert.Equal(t, "/api/unknown", body.Path)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/categories", nil)
		w := httptest.NewRecorder()

		MethodNotAllowedHandler(logger).ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		body := decodeError(t, w)
		assert.Equal(t, "Method Not Allowed", body.Error)
	})
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    int64
		expectError bool
	}{
		{name: "Positive", raw: "42", expected: 42},
		{name: "Zero", raw: "0", expectError: true},
		{name: "Negative", raw: "-3", expectError: true},
		{name: "Not a number", raw: "abc", expectError: true},
		{name: "Overflow", raw: "99999999999999999999", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.raw})

			id, err := pathID(req, "id")

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, model.ErrCodeInvalidParameter, model.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}
