package model

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FieldError describes one structural constraint violated by a request payload.
type FieldError struct {
	Field   string
	Message string
}

// String formats the error as "<field>: <message>".
func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

const (
	categoryNameMin        = 2
	categoryNameMax        = 50
	categoryDescriptionMax = 255

	menuItemNameMin        = 2
	menuItemNameMax        = 100
	menuItemDescriptionMax = 1000

	priceIntegerDigits  = 8
	priceFractionDigits = 2

	ingredientMax = 255
)

// MinPrice is the exclusive lower bound for a menu item price.
var MinPrice = decimal.RequireFromString("0.01")

// Validate checks the field constraints of a category payload.
// The returned slice is empty when the payload is well-formed.
func (d *CategoryDTO) Validate() []FieldError {
	var errs []FieldError

	switch n := utf8.RuneCountInString(d.Name); {
	case strings.TrimSpace(d.Name) == "":
		errs = append(errs, FieldError{"name", "Category name is required"})
	case n < categoryNameMin || n > categoryNameMax:
		errs = append(errs, FieldError{"name", "Category name must be between 2 and 50 characters"})
	}

	if utf8.RuneCountInString(d.Description) > categoryDescriptionMax {
		errs = append(errs, FieldError{"description", "Description cannot exceed 255 characters"})
	}

	return errs
}

// Validate checks the field constraints of a menu item payload.
// The returned slice is empty when the payload is well-formed.
func (d *MenuItemDTO) Validate() []FieldError {
	var errs []FieldError

	switch n := utf8.RuneCountInString(d.Name); {
	case strings.TrimSpace(d.Name) == "":
		errs = append(errs, FieldError{"name", "Menu item name is required"})
	case n < menuItemNameMin || n > menuItemNameMax:
		errs = append(errs, FieldError{"name", "Menu item name must be between 2 and 100 characters"})
	}

	if utf8.RuneCountInString(d.Description) > menuItemDescriptionMax {
		errs = append(errs, FieldError{"description", "Description must not exceed 1000 characters"})
	}

	// The digit bounds are checked before any arithmetic on the amount.
	switch {
	case !d.Price.Valid:
		errs = append(errs, FieldError{"price", "Price is required"})
	case d.Price.Decimal.Sign() <= 0:
		errs = append(errs, FieldError{"price", "Price must be greater than 0.01"})
	case !withinDigits(d.Price.Decimal, priceIntegerDigits, priceFractionDigits):
		errs = append(errs, FieldError{"price", "Price must have max 8 integer digits and 2 decimal digits"})
	case !d.Price.Decimal.GreaterThan(MinPrice):
		errs = append(errs, FieldError{"price", "Price must be greater than 0.01"})
	}

	if d.CategoryID <= 0 {
		errs = append(errs, FieldError{"categoryId", "Category ID is required"})
	}

	for _, r := range d.DietaryRestrictions {
		if !r.Valid() {
			errs = append(errs, FieldError{"dietaryRestrictions", "Invalid dietary restriction"})
			break
		}
	}

	for _, ing := range d.Ingredients {
		if utf8.RuneCountInString(ing) > ingredientMax {
			errs = append(errs, FieldError{"ingredients", "Ingredient must not exceed 255 characters"})
			break
		}
	}

	return errs
}

// withinDigits reports whether d has at most maxInt integer digits and maxFrac
// fractional digits, counting the scale as written. Digits are derived from
// the coefficient length and exponent so that d is never expanded.
func withinDigits(d decimal.Decimal, maxInt, maxFrac int) bool {
	exp := int64(d.Exponent())
	if -exp > int64(maxFrac) {
		return false
	}
	if d.IsZero() {
		return true
	}
	return int64(d.NumDigits())+exp <= int64(maxInt)
}
