package service

import "menu-service/internal/model"

func toCategoryDTO(c *model.Category) *model.CategoryDTO {
	return &model.CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func toCategoryDTOs(categories []model.Category) []model.CategoryDTO {
	out := make([]model.CategoryDTO, len(categories))
	for i := range categories {
		out[i] = *toCategoryDTO(&categories[i])
	}
	return out
}

// toCategoryEntity ignores the client-supplied ID.
func toCategoryEntity(dto *model.CategoryDTO) *model.Category {
	return &model.Category{
		Name:        dto.Name,
		Description: dto.Description,
	}
}

func toMenuItemDTO(m *model.MenuItem) *model.MenuItemDTO {
	return &model.MenuItemDTO{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		Price:               model.NewPrice(m.Price),
		Available:           m.Available,
		CategoryID:          m.CategoryID,
		CategoryName:        m.CategoryName,
		DietaryRestrictions: model.NormalizeRestrictions(m.DietaryRestrictions),
		Ingredients:         model.NormalizeIngredients(m.Ingredients),
	}
}

func toMenuItemDTOs(items []model.MenuItem) []model.MenuItemDTO {
	out := make([]model.MenuItemDTO, len(items))
	for i := range items {
		out[i] = *toMenuItemDTO(&items[i])
	}
	return out
}

// toMenuItemEntity ignores the client-supplied ID and category name.
func toMenuItemEntity(dto *model.MenuItemDTO) *model.MenuItem {
	return &model.MenuItem{
		Name:                dto.Name,
		Description:         dto.Description,
		Price:               dto.Price.Decimal,
		Available:           dto.Available,
		CategoryID:          dto.CategoryID,
		DietaryRestrictions: model.NormalizeRestrictions(dto.DietaryRestrictions),
		Ingredients:         model.NormalizeIngredients(dto.Ingredients),
	}
}
