package service

import (
	"context"
	"fmt"

	"menu-service/internal/model"
	"menu-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// menuItemService implements MenuItemService.
type menuItemService struct {
	menuItemRepo repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewMenuItemService creates a new menu item service.
func NewMenuItemService(
	menuItemRepo repository.MenuItemRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) MenuItemService {
	return &menuItemService{
		menuItemRepo: menuItemRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "menu_item").Logger(),
	}
}

// ListMenuItems retrieves every menu item.
func (s *menuItemService) ListMenuItems(ctx context.Context) ([]model.MenuItemDTO, error) {
	return s.list(ctx, "all", func() ([]model.MenuItem, error) {
		return s.menuItemRepo.FindAll(ctx)
	})
}

// GetMenuItem retrieves a single menu item by ID.
func (s *menuItemService) GetMenuItem(ctx context.Context, id int64) (*model.MenuItemDTO, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	return toMenuItemDTO(item), nil
}

// CreateMenuItem persists a new menu item linked to an existing category.
func (s *menuItemService) CreateMenuItem(ctx context.Context, dto *model.MenuItemDTO) (*model.MenuItemDTO, error) {
	if err := s.ensureCategory(ctx, dto.CategoryID); err != nil {
		return nil, err
	}

	item := toMenuItemEntity(dto)
	err := inTx(ctx, s.menuItemRepo, s.logger, func(tx pgx.Tx) error {
		return s.menuItemRepo.Create(ctx, tx, item)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("menu_item_id", item.ID).
		Int64("category_id", item.CategoryID).
		Int("dietary_restriction_count", len(item.DietaryRestrictions)).
		Int("ingredient_count", len(item.Ingredients)).
		Msg("menu item created successfully")

	return s.reload(ctx, item.ID)
}

// UpdateMenuItem replaces every field and attribute set of an existing menu item.
func (s *menuItemService) UpdateMenuItem(ctx context.Context, id int64, dto *model.MenuItemDTO) (*model.MenuItemDTO, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	if err := s.ensureCategory(ctx, dto.CategoryID); err != nil {
		return nil, err
	}

	item := toMenuItemEntity(dto)
	item.ID = id
	err := inTx(ctx, s.menuItemRepo, s.logger, func(tx pgx.Tx) error {
		return s.menuItemRepo.Update(ctx, tx, item)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("menu_item_id", id).Msg("menu item updated successfully")

	return s.reload(ctx, id)
}

// DeleteMenuItem removes a menu item.
func (s *menuItemService) DeleteMenuItem(ctx context.Context, id int64) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	err := inTx(ctx, s.menuItemRepo, s.logger, func(tx pgx.Tx) error {
		deleted, err := s.menuItemRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return model.NewNotFoundError("MenuItem", "id", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("menu_item_id", id).Msg("menu item deleted successfully")

	return nil
}

// ListByCategory retrieves the items of an existing category.
func (s *menuItemService) ListByCategory(ctx context.Context, categoryID int64) ([]model.MenuItemDTO, error) {
	if err := s.ensureCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.list(ctx, "by_category", func() ([]model.MenuItem, error) {
		return s.menuItemRepo.FindByCategoryID(ctx, categoryID)
	})
}

// ListAvailable retrieves items flagged as available.
func (s *menuItemService) ListAvailable(ctx context.Context) ([]model.MenuItemDTO, error) {
	return s.list(ctx, "available", func() ([]model.MenuItem, error) {
		return s.menuItemRepo.FindAvailable(ctx)
	})
}

// ListByDietaryRestriction retrieves items carrying the given restriction.
func (s *menuItemService) ListByDietaryRestriction(ctx context.Context, restriction model.DietaryRestriction) ([]model.MenuItemDTO, error) {
	if !restriction.Valid() {
		return nil, model.NewInvalidParameterError(fmt.Sprintf("Invalid dietary restriction: '%s'", restriction))
	}

	return s.list(ctx, "by_dietary_restriction", func() ([]model.MenuItem, error) {
		return s.menuItemRepo.FindByDietaryRestriction(ctx, restriction)
	})
}

// ListByPriceRange retrieves items priced within [minPrice, maxPrice].
func (s *menuItemService) ListByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.MenuItemDTO, error) {
	if minPrice.GreaterThan(maxPrice) {
		s.logger.Debug().
			Str("min_price", minPrice.String()).
			Str("max_price", maxPrice.String()).
			Msg("inverted price range, nothing to match")
		return []model.MenuItemDTO{}, nil
	}

	return s.list(ctx, "by_price_range", func() ([]model.MenuItem, error) {
		return s.menuItemRepo.FindByPriceRange(ctx, minPrice, maxPrice)
	})
}

// ListByIngredient retrieves items with an ingredient containing substring, ignoring case.
func (s *menuItemService) ListByIngredient(ctx context.Context, substring string) ([]model.MenuItemDTO, error) {
	return s.list(ctx, "by_ingredient", func() ([]model.MenuItem, error) {
		return s.menuItemRepo.FindByIngredient(ctx, substring)
	})
}

func (s *menuItemService) list(ctx context.Context, lookup string, fetch func() ([]model.MenuItem, error)) ([]model.MenuItemDTO, error) {
	items, err := fetch()
	if err != nil {
		s.logger.Error().Err(err).Str("lookup", lookup).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	s.logger.Debug().Str("lookup", lookup).Int("count", len(items)).Msg("menu items listed")

	return toMenuItemDTOs(items), nil
}

func (s *menuItemService) find(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := s.menuItemRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("menu_item_id", id).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	if item == nil {
		return nil, model.NewNotFoundError("MenuItem", "id", id)
	}

	return item, nil
}

func (s *menuItemService) ensureCategory(ctx context.Context, categoryID int64) error {
	exists, err := s.categoryRepo.ExistsByID(ctx, categoryID)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", categoryID).Msg("failed to check category")
		return fmt.Errorf("failed to check category: %w", err)
	}

	if !exists {
		s.logger.Warn().Int64("category_id", categoryID).Msg("category does not exist")
		return model.NewNotFoundError("Category", "id", categoryID)
	}

	return nil
}

// reload returns the committed state of a menu item.
func (s *menuItemService) reload(ctx context.Context, id int64) (*model.MenuItemDTO, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	return toMenuItemDTO(item), nil
}
