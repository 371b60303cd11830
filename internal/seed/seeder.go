package seed

import (
	"context"
	"fmt"

	"menu-service/internal/model"
	"menu-service/internal/service"

	"github.com/rs/zerolog"
)

// Result counts what Apply changed.
type Result struct {
	CategoriesCreated int
	CategoriesSkipped int
	ItemsCreated      int
}

// Seeder writes catalogs through the services so that seeded data obeys the
// same rules as API writes.
type Seeder struct {
	categories service.CategoryService
	menuItems  service.MenuItemService
	logger     zerolog.Logger
}

// NewSeeder creates a new Seeder.
func NewSeeder(categories service.CategoryService, menuItems service.MenuItemService, logger zerolog.Logger) *Seeder {
	return &Seeder{
		categories: categories,
		menuItems:  menuItems,
		logger:     logger.With().Str("component", "seeder").Logger(),
	}
}

// Apply creates the categories of every catalog together with their items.
// A category whose name already exists is skipped along with its items,
// which makes repeated runs harmless.
func (s *Seeder) Apply(ctx context.Context, catalogs ...*Catalog) (Result, error) {
	var result Result

	for _, catalog := range catalogs {
		for i := range catalog.Categories {
			cat := &catalog.Categories[i]

			created, skipped, err := s.applyCategory(ctx, cat)
			if err != nil {
				return result, err
			}
			if skipped {
				result.CategoriesSkipped++
				continue
			}

			result.CategoriesCreated++
			result.ItemsCreated += created
		}
	}

	s.logger.Info().
		Int("categories_created", result.CategoriesCreated).
		Int("categories_skipped", result.CategoriesSkipped).
		Int("menu_items_created", result.ItemsCreated).
		Msg("seed applied")

	return result, nil
}

func (s *Seeder) applyCategory(ctx context.Context, cat *CatalogCategory) (int, bool, error) {
	existing, err := s.categories.GetCategoryByName(ctx, cat.Name)
	if err != nil && model.ErrorCode(err) != model.ErrCodeNotFound {
		return 0, false, fmt.Errorf("failed to look up category %q: %w", cat.Name, err)
	}
	if existing != nil {
		s.logger.Debug().Str("category_name", cat.Name).Msg("category exists, skipping")
		return 0, true, nil
	}

	categoryDTO := cat.CategoryDTO()
	if fields := categoryDTO.Validate(); len(fields) > 0 {
		return 0, false, fmt.Errorf("invalid seed category %q: %w", cat.Name, model.NewValidationError(fields))
	}

	category, err := s.categories.CreateCategory(ctx, categoryDTO)
	if err != nil {
		return 0, false, fmt.Errorf("failed to seed category %q: %w", cat.Name, err)
	}

	for i := range cat.Items {
		item := &cat.Items[i]
		itemDTO := item.MenuItemDTO(category.ID)
		if fields := itemDTO.Validate(); len(fields) > 0 {
			return i, false, fmt.Errorf("invalid seed menu item %q: %w", item.Name, model.NewValidationError(fields))
		}

		if _, err := s.menuItems.CreateMenuItem(ctx, itemDTO); err != nil {
			return i, false, fmt.Errorf("failed to seed menu item %q: %w", item.Name, err)
		}
	}

	return len(cat.Items), false, nil
}
