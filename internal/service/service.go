package service

import (
	"context"

	"menu-service/internal/model"

	"github.com/shopspring/decimal"
)

// CategoryService defines operations for category management.
type CategoryService interface {
	// ListCategories retrieves every category.
	ListCategories(ctx context.Context) ([]model.CategoryDTO, error)

	// GetCategory retrieves a single category by ID.
	GetCategory(ctx context.Context, id int64) (*model.CategoryDTO, error)

	// GetCategoryByName retrieves a category by name, ignoring case.
	GetCategoryByName(ctx context.Context, name string) (*model.CategoryDTO, error)

	// CreateCategory persists a new category with a case-insensitively unique name.
	CreateCategory(ctx context.Context, dto *model.CategoryDTO) (*model.CategoryDTO, error)

	// UpdateCategory overwrites name and description of an existing category.
	UpdateCategory(ctx context.Context, id int64, dto *model.CategoryDTO) (*model.CategoryDTO, error)

	// DeleteCategory removes a category together with all of its menu items.
	DeleteCategory(ctx context.Context, id int64) error
}

// MenuItemService defines operations for menu item management.
type MenuItemService interface {
	// ListMenuItems retrieves every menu item.
	ListMenuItems(ctx context.Context) ([]model.MenuItemDTO, error)

	// GetMenuItem retrieves a single menu item by ID.
	GetMenuItem(ctx context.Context, id int64) (*model.MenuItemDTO, error)

	// CreateMenuItem persists a new menu item linked to an existing category.
	CreateMenuItem(ctx context.Context, dto *model.MenuItemDTO) (*model.MenuItemDTO, error)

	// UpdateMenuItem replaces every field and attribute set of an existing menu item.
	UpdateMenuItem(ctx context.Context, id int64, dto *model.MenuItemDTO) (*model.MenuItemDTO, error)

	// DeleteMenuItem removes a menu item.
	DeleteMenuItem(ctx context.Context, id int64) error

	// ListByCategory retrieves the items of an existing category.
	ListByCategory(ctx context.Context, categoryID int64) ([]model.MenuItemDTO, error)

	// ListAvailable retrieves items flagged as available.
	ListAvailable(ctx context.Context) ([]model.MenuItemDTO, error)

	// ListByDietaryRestriction retrieves items carrying the given restriction.
	ListByDietaryRestriction(ctx context.Context, restriction model.DietaryRestriction) ([]model.MenuItemDTO, error)

	// ListByPriceRange retrieves items priced within [minPrice, maxPrice].
	// An inverted range yields an empty list.
	ListByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.MenuItemDTO, error)

	// ListByIngredient retrieves items with an ingredient containing substring, ignoring case.
	ListByIngredient(ctx context.Context, substring string) ([]model.MenuItemDTO, error)
}
