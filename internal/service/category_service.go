package service

import (
	"context"
	"fmt"
	"strings"

	"menu-service/internal/model"
	"menu-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	menuItemRepo repository.MenuItemRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service. The menu item repository
// is used to remove a category's items when the category is deleted.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	menuItemRepo repository.MenuItemRepository,
	logger zerolog.Logger,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		menuItemRepo: menuItemRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// ListCategories retrieves every category.
func (s *categoryService) ListCategories(ctx context.Context) ([]model.CategoryDTO, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return toCategoryDTOs(categories), nil
}

// GetCategory retrieves a single category by ID.
func (s *categoryService) GetCategory(ctx context.Context, id int64) (*model.CategoryDTO, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to get category")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		return nil, model.NewNotFoundError("Category", "id", id)
	}

	return toCategoryDTO(category), nil
}

// GetCategoryByName retrieves a category by name, ignoring case.
func (s *categoryService) GetCategoryByName(ctx context.Context, name string) (*model.CategoryDTO, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("category_name", name).Msg("failed to get category by name")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		return nil, model.NewNotFoundError("Category", "name", name)
	}

	return toCategoryDTO(category), nil
}

// CreateCategory persists a new category with a case-insensitively unique name.
func (s *categoryService) CreateCategory(ctx context.Context, dto *model.CategoryDTO) (*model.CategoryDTO, error) {
	if err := s.ensureNameFree(ctx, dto.Name); err != nil {
		return nil, err
	}

	category := toCategoryEntity(dto)
	err := inTx(ctx, s.categoryRepo, s.logger, func(tx pgx.Tx) error {
		return s.categoryRepo.Create(ctx, tx, category)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("category_id", category.ID).
		Str("category_name", category.Name).
		Msg("category created successfully")

	return s.reload(ctx, category.ID)
}

// UpdateCategory overwrites name and description of an existing category.
func (s *categoryService) UpdateCategory(ctx context.Context, id int64, dto *model.CategoryDTO) (*model.CategoryDTO, error) {
	current, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to get category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if current == nil {
		return nil, model.NewNotFoundError("Category", "id", id)
	}

	// Keeping the same name with different casing is not a clash
	if !strings.EqualFold(current.Name, dto.Name) {
		if err := s.ensureNameFree(ctx, dto.Name); err != nil {
			return nil, err
		}
	}

	category := toCategoryEntity(dto)
	category.ID = id
	err = inTx(ctx, s.categoryRepo, s.logger, func(tx pgx.Tx) error {
		return s.categoryRepo.Update(ctx, tx, category)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("category_id", id).Msg("category updated successfully")

	return s.reload(ctx, id)
}

// DeleteCategory removes a category together with all of its menu items.
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	exists, err := s.categoryRepo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to check category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if !exists {
		return model.NewNotFoundError("Category", "id", id)
	}

	var removedItems int64
	err = inTx(ctx, s.categoryRepo, s.logger, func(tx pgx.Tx) error {
		var err error
		if removedItems, err = s.menuItemRepo.DeleteByCategoryID(ctx, tx, id); err != nil {
			return err
		}

		deleted, err := s.categoryRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return model.NewNotFoundError("Category", "id", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("category_id", id).
		Int64("menu_items_removed", removedItems).
		Msg("category deleted successfully")

	return nil
}

func (s *categoryService) ensureNameFree(ctx context.Context, name string) error {
	taken, err := s.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("category_name", name).Msg("failed to check category name")
		return fmt.Errorf("failed to check category name: %w", err)
	}

	if taken {
		s.logger.Warn().Str("category_name", name).Msg("category name already taken")
		return model.NewDuplicateCategoryError(name)
	}

	return nil
}

// reload returns the committed state of a category.
func (s *categoryService) reload(ctx context.Context, id int64) (*model.CategoryDTO, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to reload category")
		return nil, fmt.Errorf("failed to reload category: %w", err)
	}

	if category == nil {
		return nil, model.NewNotFoundError("Category", "id", id)
	}

	return toCategoryDTO(category), nil
}
