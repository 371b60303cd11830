package repository

import (
	"context"

	"menu-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Transactor starts units of work spanning several repository calls.
type Transactor interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	Transactor

	// FindAll retrieves every category ordered by ID.
	FindAll(ctx context.Context) ([]model.Category, error)

	// FindByID retrieves a category by its ID. Returns nil if absent.
	FindByID(ctx context.Context, id int64) (*model.Category, error)

	// FindByName retrieves a category by name, ignoring case. Returns nil if absent.
	FindByName(ctx context.Context, name string) (*model.Category, error)

	// ExistsByName reports whether a category holds name, ignoring case.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsByID reports whether a category with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create inserts a category within tx and sets its assigned ID.
	Create(ctx context.Context, tx pgx.Tx, category *model.Category) error

	// Update overwrites name and description within tx.
	Update(ctx context.Context, tx pgx.Tx, category *model.Category) error

	// Delete removes a category within tx. Returns false if nothing was deleted.
	Delete(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
}

// MenuItemRepository defines the interface for menu item data access operations.
// Every returned item carries its category name, dietary restrictions and ingredients.
type MenuItemRepository interface {
	Transactor

	// FindAll retrieves every menu item ordered by ID.
	FindAll(ctx context.Context) ([]model.MenuItem, error)

	// FindByID retrieves a menu item by its ID. Returns nil if absent.
	FindByID(ctx context.Context, id int64) (*model.MenuItem, error)

	// FindByCategoryID retrieves the items linked to a category.
	FindByCategoryID(ctx context.Context, categoryID int64) ([]model.MenuItem, error)

	// FindAvailable retrieves items flagged as available.
	FindAvailable(ctx context.Context) ([]model.MenuItem, error)

	// FindByDietaryRestriction retrieves items whose restriction set contains restriction.
	FindByDietaryRestriction(ctx context.Context, restriction model.DietaryRestriction) ([]model.MenuItem, error)

	// FindByPriceRange retrieves items with minPrice <= price <= maxPrice.
	FindByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.MenuItem, error)

	// FindByIngredient retrieves items with at least one ingredient containing
	// substring, ignoring case.
	FindByIngredient(ctx context.Context, substring string) ([]model.MenuItem, error)

	// Create inserts a menu item and its child rows within tx and sets its assigned ID.
	Create(ctx context.Context, tx pgx.Tx, item *model.MenuItem) error

	// Update replaces every column and both child sets of a menu item within tx.
	Update(ctx context.Context, tx pgx.Tx, item *model.MenuItem) error

	// Delete removes a menu item within tx. Returns false if nothing was deleted.
	Delete(ctx context.Context, tx pgx.Tx, id int64) (bool, error)

	// DeleteByCategoryID removes every item linked to a category within tx and
	// returns the number of items deleted.
	DeleteByCategoryID(ctx context.Context, tx pgx.Tx, categoryID int64) (int64, error)
}
