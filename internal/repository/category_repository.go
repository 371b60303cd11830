package repository

import (
	"context"
	"errors"
	"fmt"

	"menu-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

const categoryColumns = `id, name, COALESCE(description, '')`

// BeginTx starts a new database transaction.
func (r *categoryRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// FindAll retrieves every category ordered by ID.
func (r *categoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &c, nil
}

// FindByName retrieves a category by name, ignoring case.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE LOWER(name) = LOWER($1)`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("category_name", name).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("category_name", name).Msg("failed to query category by name")
		return nil, fmt.Errorf("failed to query category by name: %w", err)
	}

	return &c, nil
}

// ExistsByName reports whether a category holds name, ignoring case.
func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Str("category_name", name).Msg("failed to check category name")
		return false, fmt.Errorf("failed to check category name: %w", err)
	}

	return exists, nil
}

// ExistsByID reports whether a category with the given ID exists.
func (r *categoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to check category exists")
		return false, fmt.Errorf("failed to check category exists: %w", err)
	}

	return exists, nil
}

// Create inserts a category within tx and sets its assigned ID.
func (r *categoryRepository) Create(ctx context.Context, tx pgx.Tx, category *model.Category) error {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id
	`

	err := tx.QueryRow(ctx, query, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("category_name", category.Name).Msg("category name already taken")
			return model.NewDuplicateCategoryError(category.Name)
		}
		r.logger.Error().Err(err).Str("category_name", category.Name).Msg("failed to create category")
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().
		Int64("category_id", category.ID).
		Msg("category created successfully")

	return nil
}

// Update overwrites name and description within tx.
func (r *categoryRepository) Update(ctx context.Context, tx pgx.Tx, category *model.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = NULLIF($3, '')
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, category.ID, category.Name, category.Description)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("category_name", category.Name).Msg("category name already taken")
			return model.NewDuplicateCategoryError(category.Name)
		}
		r.logger.Error().Err(err).Int64("category_id", category.ID).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.NewNotFoundError("Category", "id", category.ID)
	}

	return nil
}

// Delete removes a category within tx.
func (r *categoryRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
