package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menu-service/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryHandler_List(t *testing.T) {
	mockService := new(MockCategoryService)
	handler := NewCategoryHandler(mockService, zerolog.Nop())

	mockService.On("ListCategories", mock.Anything).Return([]model.CategoryDTO{
		{ID: 1, Name: "Appetizers"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Appetizers","description":""}]`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestCategoryHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockReturn     *model.CategoryDTO
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			id:             "3",
			mockReturn:     &model.CategoryDTO{ID: 3, Name: "Desserts"},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			id:             "9",
			mockError:      model.NewNotFoundError("Category", "id", 9),
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid id",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Service error",
			id:             "3",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCategoryService)
			handler := NewCategoryHandler(mockService, zerolog.Nop())

			if tt.expectService {
				mockService.On("GetCategory", mock.Anything, mock.AnythingOfType("int64")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/categories/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			w := httptest.NewRecorder()

			handler.Get(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				body := decodeError(t, w)
				assert.Equal(t, tt.expectedStatus, body.Status)
				assert.Equal(t, "/api/categories/"+tt.id, body.Path)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "GetCategory", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCategoryHandler_Create(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		mockError       error
		expectedStatus  int
		expectService   bool
		expectedDetails []string
	}{
		{
			name:           "Created",
			body:           `{"id": 77, "name": "Desserts", "description": "Sweet"}`,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Duplicate name",
			body:           `{"name": "Desserts"}`,
			mockError:      model.NewDuplicateCategoryError("Desserts"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:            "Missing name",
			body:            `{"description": "Sweet"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedDetails: []string{"name: Category name is required"},
		},
		{
			name:            "Name too short",
			body:            `{"name": "D"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedDetails: []string{"name: Category name must be between 2 and 50 characters"},
		},
		{
			name:           "Malformed JSON",
			body:           `{"name": `,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCategoryService)
			handler := NewCategoryHandler(mockService, zerolog.Nop())

			if tt.expectService {
				var ret *model.CategoryDTO
				if tt.mockError == nil {
					ret = &model.CategoryDTO{ID: 5, Name: "Desserts", Description: "Sweet"}
				}
				mockService.On("CreateCategory", mock.Anything, mock.AnythingOfType("*model.CategoryDTO")).
					Return(ret, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				assert.JSONEq(t, `{"id":5,"name":"Desserts","description":"Sweet"}`, w.Body.String())
			}
			if tt.expectedDetails != nil {
				body := decodeError(t, w)
				assert.Equal(t, "Validation failed", body.Message)
				assert.Equal(t, tt.expectedDetails, body.Details)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCategoryHandler_Update(t *testing.T) {
	mockService := new(MockCategoryService)
	handler := NewCategoryHandler(mockService, zerolog.Nop())

	mockService.On("UpdateCategory", mock.Anything, int64(5), &model.CategoryDTO{Name: "Puddings"}).
		Return(&model.CategoryDTO{ID: 5, Name: "Puddings"}, nil)
	mockService.On("UpdateCategory", mock.Anything, int64(6), mock.Anything).
		Return(nil, model.NewNotFoundError("Category", "id", 6))

	req := httptest.NewRequest(http.MethodPut, "/api/categories/5", strings.NewReader(`{"name": "Puddings"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	w := httptest.NewRecorder()
	handler.Update(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/categories/6", strings.NewReader(`{"name": "Puddings"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "6"})
	w = httptest.NewRecorder()
	handler.Update(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestCategoryHandler_Delete(t *testing.T) {
	mockService := new(MockCategoryService)
	handler := NewCategoryHandler(mockService, zerolog.Nop())

	mockService.On("DeleteCategory", mock.Anything, int64(5)).Return(nil).Once()
	mockService.On("DeleteCategory", mock.Anything, int64(5)).Return(model.NewNotFoundError("Category", "id", 5)).Once()

	for _, expected := range []int{http.StatusNoContent, http.StatusNotFound} {
		req := httptest.NewRequest(http.MethodDelete, "/api/categories/5", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "5"})
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		assert.Equal(t, expected, w.Code)
	}

	mockService.AssertExpectations(t)
}
