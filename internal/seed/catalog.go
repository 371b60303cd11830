package seed

import (
	"bytes"
	"compress/gzip"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"menu-service/internal/model"
)

//go:embed sample_menu.json
var sampleMenu []byte

// Catalog is a menu to seed: categories, each with its items.
type Catalog struct {
	Categories []CatalogCategory `json:"categories"`
}

// CatalogCategory is a category together with the items filed under it.
type CatalogCategory struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Items       []CatalogItem `json:"items"`
}

// CatalogItem is a menu item without its category link. A missing
// available flag means available.
type CatalogItem struct {
	Name                string                     `json:"name"`
	Description         string                     `json:"description"`
	Price               model.Price                `json:"price"`
	Available           *bool                      `json:"available,omitempty"`
	DietaryRestrictions []model.DietaryRestriction `json:"dietaryRestrictions"`
	Ingredients         []string                   `json:"ingredients"`
}

// ItemCount returns the number of items across all categories.
func (c *Catalog) ItemCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Items)
	}
	return n
}

// CategoryDTO returns the category payload for cat.
func (cat *CatalogCategory) CategoryDTO() *model.CategoryDTO {
	return &model.CategoryDTO{Name: cat.Name, Description: cat.Description}
}

// MenuItemDTO returns the menu item payload for item, linked to categoryID.
func (item *CatalogItem) MenuItemDTO(categoryID int64) *model.MenuItemDTO {
	dto := model.NewMenuItemDTO()
	dto.Name = item.Name
	dto.Description = item.Description
	dto.Price = item.Price
	if item.Available != nil {
		dto.Available = *item.Available
	}
	dto.CategoryID = categoryID
	dto.DietaryRestrictions = item.DietaryRestrictions
	dto.Ingredients = item.Ingredients
	return &dto
}

// Decode reads a catalog from r. Names ending in .gz are gunzipped first.
func Decode(r io.Reader, name string) (*Catalog, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var catalog Catalog
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", name, err)
	}

	return &catalog, nil
}

// Sample returns the bundled sample menu of four categories and ten items.
func Sample() *Catalog {
	catalog, err := Decode(bytes.NewReader(sampleMenu), "sample_menu.json")
	if err != nil {
		panic(fmt.Sprintf("bundled sample menu is invalid: %v", err))
	}
	return catalog
}

// Encode writes catalog as JSON, gzipped when gzipped is true.
func Encode(w io.Writer, catalog *Catalog, gzipped bool) error {
	if gzipped {
		gzipWriter := gzip.NewWriter(w)
		if err := json.NewEncoder(gzipWriter).Encode(catalog); err != nil {
			gzipWriter.Close()
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		return gzipWriter.Close()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(catalog); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}
