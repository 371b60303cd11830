package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MenuItem is a purchasable dish as persisted in menu_items and its child tables.
type MenuItem struct {
	ID                  int64                `db:"id"`
	Name                string               `db:"name"`
	Description         string               `db:"description"`
	Price               decimal.Decimal      `db:"price"`
	Available           bool                 `db:"available"`
	CategoryID          int64                `db:"category_id"`
	CategoryName        string               `db:"category_name"`
	DietaryRestrictions []DietaryRestriction `db:"-"`
	Ingredients         []string             `db:"-"`
}

// MenuItemDTO is the transfer representation of a menu item.
type MenuItemDTO struct {
	ID                  int64                `json:"id"`
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	Price               Price                `json:"price"`
	Available           bool                 `json:"available"`
	CategoryID          int64                `json:"categoryId"`
	CategoryName        string               `json:"categoryName"`
	DietaryRestrictions []DietaryRestriction `json:"dietaryRestrictions"`
	Ingredients         []string             `json:"ingredients"`
}

// NewMenuItemDTO returns a request payload with server-side defaults applied,
// ready to be decoded into.
func NewMenuItemDTO() MenuItemDTO {
	return MenuItemDTO{Available: true}
}

// NormalizeRestrictions collapses duplicates and orders restrictions by declaration.
func NormalizeRestrictions(in []DietaryRestriction) []DietaryRestriction {
	seen := make(map[DietaryRestriction]struct{}, len(in))
	out := make([]DietaryRestriction, 0, len(in))
	for _, r := range in {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ordinal() < out[j].ordinal()
	})
	return out
}

// NormalizeIngredients collapses duplicates and orders ingredients alphabetically.
func NormalizeIngredients(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, ing := range in {
		if _, ok := seen[ing]; ok {
			continue
		}
		seen[ing] = struct{}{}
		out = append(out, ing)
	}
	sort.Strings(out)
	return out
}
