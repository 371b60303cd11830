package model

import (
	"fmt"
	"strings"
)

// DietaryRestriction is a fixed tag describing a suitability constraint on a menu item.
type DietaryRestriction string

const (
	Vegetarian DietaryRestriction = "VEGETARIAN"
	Vegan      DietaryRestriction = "VEGAN"
	GlutenFree DietaryRestriction = "GLUTEN_FREE"
	DairyFree  DietaryRestriction = "DAIRY_FREE"
	NutFree    DietaryRestriction = "NUT_FREE"
	Halal      DietaryRestriction = "HALAL"
	Kosher     DietaryRestriction = "KOSHER"
)

// DietaryRestrictions lists every restriction in declaration order.
var DietaryRestrictions = []DietaryRestriction{
	Vegetarian,
	Vegan,
	GlutenFree,
	DairyFree,
	NutFree,
	Halal,
	Kosher,
}

var restrictionDescriptions = map[DietaryRestriction]string{
	Vegetarian: "Suitable for vegetarians",
	Vegan:      "Suitable for vegans",
	GlutenFree: "Does not contain gluten",
	DairyFree:  "Does not contain dairy",
	NutFree:    "Does not contain nuts",
	Halal:      "Prepared according to Islamic law",
	Kosher:     "Prepared according to Jewish dietary laws",
}

// ParseDietaryRestriction resolves a label (case-insensitive) to a known restriction.
func ParseDietaryRestriction(label string) (DietaryRestriction, error) {
	r := CanonicalDietaryRestriction(label)
	if !r.Valid() {
		return "", fmt.Errorf("unknown dietary restriction %q", label)
	}
	return r, nil
}

// CanonicalDietaryRestriction upper-cases and trims label without checking
// that it names a declared restriction.
func CanonicalDietaryRestriction(label string) DietaryRestriction {
	return DietaryRestriction(strings.ToUpper(strings.TrimSpace(label)))
}

// Valid reports whether r is one of the declared restrictions.
func (r DietaryRestriction) Valid() bool {
	_, ok := restrictionDescriptions[r]
	return ok
}

// Description returns the human-readable description of the restriction.
func (r DietaryRestriction) Description() string {
	return restrictionDescriptions[r]
}

// ordinal returns the declaration index, or len(DietaryRestrictions) if unknown.
func (r DietaryRestriction) ordinal() int {
	for i, known := range DietaryRestrictions {
		if known == r {
			return i
		}
	}
	return len(DietaryRestrictions)
}

// UnmarshalText rejects labels that are not declared restrictions.
func (r *DietaryRestriction) UnmarshalText(text []byte) error {
	parsed, err := ParseDietaryRestriction(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
