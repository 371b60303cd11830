package handler

import (
	"context"

	"menu-service/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCategoryService is a mock implementation of CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]model.CategoryDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryDTO), args.Error(1)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id int64) (*model.CategoryDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryDTO), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByName(ctx context.Context, name string) (*model.CategoryDTO, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryDTO), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, dto *model.CategoryDTO) (*model.CategoryDTO, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryDTO), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, id int64, dto *model.CategoryDTO) (*model.CategoryDTO, error) {
	args := m.Called(ctx, id, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CategoryDTO), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMenuItemService is a mock implementation of MenuItemService.
type MockMenuItemService struct {
	mock.Mock
}

func (m *MockMenuItemService) list(args mock.Arguments) ([]model.MenuItemDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItemDTO), args.Error(1)
}

func (m *MockMenuItemService) one(args mock.Arguments) (*model.MenuItemDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItemDTO), args.Error(1)
}

func (m *MockMenuItemService) ListMenuItems(ctx context.Context) ([]model.MenuItemDTO, error) {
	return m.list(m.Called(ctx))
}

func (m *MockMenuItemService) GetMenuItem(ctx context.Context, id int64) (*model.MenuItemDTO, error) {
	return m.one(m.Called(ctx, id))
}

func (m *MockMenuItemService) CreateMenuItem(ctx context.Context, dto *model.MenuItemDTO) (*model.MenuItemDTO, error) {
	return m.one(m.Called(ctx, dto))
}

func (m *MockMenuItemService) UpdateMenuItem(ctx context.Context, id int64, dto *model.MenuItemDTO) (*model.MenuItemDTO, error) {
	return m.one(m.Called(ctx, id, dto))
}

func (m *MockMenuItemService) DeleteMenuItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuItemService) ListByCategory(ctx context.Context, categoryID int64) ([]model.MenuItemDTO, error) {
	return m.list(m.Called(ctx, categoryID))
}

func (m *MockMenuItemService) ListAvailable(ctx context.Context) ([]model.MenuItemDTO, error) {
	return m.list(m.Called(ctx))
}

func (m *MockMenuItemService) ListByDietaryRestriction(ctx context.Context, restriction model.DietaryRestriction) ([]model.MenuItemDTO, error) {
	return m.list(m.Called(ctx, restriction))
}

func (m *MockMenuItemService) ListByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.MenuItemDTO, error) {
	return m.list(m.Called(ctx, minPrice, maxPrice))
}

func (m *MockMenuItemService) ListByIngredient(ctx context.Context, substring string) ([]model.MenuItemDTO, error) {
	return m.list(m.Called(ctx, substring))
}
