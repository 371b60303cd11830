package repository

import (
	"context"
	"fmt"

	"menu-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// menuItemRepository implements the MenuItemRepository interface using PostgreSQL.
type menuItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuItemRepository creates a new PostgreSQL-backed menu item repository.
func NewMenuItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuItemRepository {
	return &menuItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu_item").Logger(),
	}
}

const menuItemSelect = `
	SELECT m.id, m.name, COALESCE(m.description, ''), m.price::text, m.available,
	       m.category_id, c.name
	FROM menu_items m
	JOIN categories c ON c.id = m.category_id
`

// BeginTx starts a new database transaction.
func (r *menuItemRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// FindAll retrieves every menu item ordered by ID.
func (r *menuItemRepository) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	return r.findWhere(ctx, "all", "")
}

// FindByID retrieves a menu item by its ID.
func (r *menuItemRepository) FindByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	items, err := r.findWhere(ctx, "by_id", "WHERE m.id = $1", id)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		r.logger.Debug().Int64("menu_item_id", id).Msg("menu item not found")
		return nil, nil
	}

	return &items[0], nil
}

// FindByCategoryID retrieves the items linked to a category.
func (r *menuItemRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	return r.findWhere(ctx, "by_category", "WHERE m.category_id = $1", categoryID)
}

// FindAvailable retrieves items flagged as available.
func (r *menuItemRepository) FindAvailable(ctx context.Context) ([]model.MenuItem, error) {
	return r.findWhere(ctx, "available", "WHERE m.available")
}

// FindByDietaryRestriction retrieves items whose restriction set contains restriction.
func (r *menuItemRepository) FindByDietaryRestriction(ctx context.Context, restriction model.DietaryRestriction) ([]model.MenuItem, error) {
	return r.findWhere(ctx, "by_dietary_restriction", `
		WHERE EXISTS (
			SELECT 1 FROM menu_item_dietary_restrictions d
			WHERE d.menu_item_id = m.id AND d.restriction = $1
		)`, string(restriction))
}

// FindByPriceRange retrieves items with minPrice <= price <= maxPrice.
func (r *menuItemRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.MenuItem, error) {
	return r.findWhere(ctx, "by_price_range",
		"WHERE m.price BETWEEN $1::numeric AND $2::numeric",
		minPrice.String(), maxPrice.String(),
	)
}

// FindByIngredient retrieves items with at least one ingredient containing
// substring, ignoring case. An empty substring matches every item that has an
// ingredient.
func (r *menuItemRepository) FindByIngredient(ctx context.Context, substring string) ([]model.MenuItem, error) {
	// strpos keeps LIKE wildcards in substring literal
	return r.findWhere(ctx, "by_ingredient", `
		WHERE EXISTS (
			SELECT 1 FROM menu_item_ingredients i
			WHERE i.menu_item_id = m.id AND strpos(LOWER(i.ingredient), LOWER($1)) > 0
		)`, substring)
}

// findWhere runs menuItemSelect with the given filter and attaches child sets.
func (r *menuItemRepository) findWhere(ctx context.Context, lookup, where string, args ...any) ([]model.MenuItem, error) {
	query := menuItemSelect + where + " ORDER BY m.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("lookup", lookup).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		var (
			item  model.MenuItem
			price string
		)
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &price, &item.Available,
			&item.CategoryID, &item.CategoryName)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("failed to parse price of menu item %d: %w", item.ID, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	if err := r.attachSets(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// attachSets loads dietary restrictions and ingredients for items in two queries.
func (r *menuItemRepository) attachSets(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	index := make(map[int64]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = i
		items[i].DietaryRestrictions = []model.DietaryRestriction{}
		items[i].Ingredients = []string{}
	}

	restrictionRows, err := r.pool.Query(ctx, `
		SELECT menu_item_id, restriction
		FROM menu_item_dietary_restrictions
		WHERE menu_item_id = ANY($1)
	`, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query dietary restrictions")
		return fmt.Errorf("failed to query dietary restrictions: %w", err)
	}
	defer restrictionRows.Close()

	for restrictionRows.Next() {
		var (
			id          int64
			restriction string
		)
		if err := restrictionRows.Scan(&id, &restriction); err != nil {
			return fmt.Errorf("failed to scan dietary restriction: %w", err)
		}
		i := index[id]
		items[i].DietaryRestrictions = append(items[i].DietaryRestrictions, model.DietaryRestriction(restriction))
	}
	if err := restrictionRows.Err(); err != nil {
		return fmt.Errorf("error iterating dietary restrictions: %w", err)
	}

	ingredientRows, err := r.pool.Query(ctx, `
		SELECT menu_item_id, ingredient
		FROM menu_item_ingredients
		WHERE menu_item_id = ANY($1)
	`, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query ingredients")
		return fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer ingredientRows.Close()

	for ingredientRows.Next() {
		var (
			id         int64
			ingredient string
		)
		if err := ingredientRows.Scan(&id, &ingredient); err != nil {
			return fmt.Errorf("failed to scan ingredient: %w", err)
		}
		i := index[id]
		items[i].Ingredients = append(items[i].Ingredients, ingredient)
	}
	if err := ingredientRows.Err(); err != nil {
		return fmt.Errorf("error iterating ingredients: %w", err)
	}

	for i := range items {
		items[i].DietaryRestrictions = model.NormalizeRestrictions(items[i].DietaryRestrictions)
		items[i].Ingredients = model.NormalizeIngredients(items[i].Ingredients)
	}

	return nil
}

// Create inserts a menu item and its child rows within tx and sets its assigned ID.
func (r *menuItemRepository) Create(ctx context.Context, tx pgx.Tx, item *model.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, price, available, category_id)
		VALUES ($1, NULLIF($2, ''), $3::numeric, $4, $5)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		item.Name, item.Description, item.Price.String(), item.Available, item.CategoryID,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.NewNotFoundError("Category", "id", item.CategoryID)
		}
		r.logger.Error().Err(err).Str("menu_item_name", item.Name).Msg("failed to create menu item")
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	if err := r.insertSets(ctx, tx, item); err != nil {
		return err
	}

	r.logger.Debug().
		Int64("menu_item_id", item.ID).
		Int64("category_id", item.CategoryID).
		Msg("menu item created successfully")

	return nil
}

// Update replaces every column and both child sets of a menu item within tx.
func (r *menuItemRepository) Update(ctx context.Context, tx pgx.Tx, item *model.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = NULLIF($3, ''), price = $4::numeric, available = $5, category_id = $6
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price.String(), item.Available, item.CategoryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.NewNotFoundError("Category", "id", item.CategoryID)
		}
		r.logger.Error().Err(err).Int64("menu_item_id", item.ID).Msg("failed to update menu item")
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.NewNotFoundError("MenuItem", "id", item.ID)
	}

	// Sets are replaced wholesale
	for _, table := range []string{"menu_item_dietary_restrictions", "menu_item_ingredients"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table+" WHERE menu_item_id = $1", item.ID); err != nil {
			r.logger.Error().Err(err).Int64("menu_item_id", item.ID).Str("table", table).Msg("failed to clear menu item set")
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	return r.insertSets(ctx, tx, item)
}

// insertSets writes the dietary restriction and ingredient rows of item in one batch.
func (r *menuItemRepository) insertSets(ctx context.Context, tx pgx.Tx, item *model.MenuItem) error {
	restrictions := model.NormalizeRestrictions(item.DietaryRestrictions)
	ingredients := model.NormalizeIngredients(item.Ingredients)

	total := len(restrictions) + len(ingredients)
	if total == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, restriction := range restrictions {
		batch.Queue(`INSERT INTO menu_item_dietary_restrictions (menu_item_id, restriction) VALUES ($1, $2)`,
			item.ID, string(restriction))
	}
	for _, ingredient := range ingredients {
		batch.Queue(`INSERT INTO menu_item_ingredients (menu_item_id, ingredient) VALUES ($1, $2)`,
			item.ID, ingredient)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < total; i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Int64("menu_item_id", item.ID).
				Msg("failed to insert menu item attributes")
			return fmt.Errorf("failed to insert menu item attributes: %w", err)
		}
	}

	return nil
}

// Delete removes a menu item within tx. Child rows go with it via ON DELETE CASCADE.
func (r *menuItemRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("menu_item_id", id).Msg("failed to delete menu item")
		return false, fmt.Errorf("failed to delete menu item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteByCategoryID removes every item linked to a category within tx.
func (r *menuItemRepository) DeleteByCategoryID(ctx context.Context, tx pgx.Tx, categoryID int64) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE category_id = $1`, categoryID)
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", categoryID).Msg("failed to delete category menu items")
		return 0, fmt.Errorf("failed to delete menu items of category: %w", err)
	}

	return tag.RowsAffected(), nil
}
