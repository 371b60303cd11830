package handler

import (
	"fmt"
	"net/http"

	"menu-service/internal/model"
	"menu-service/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// MenuItemHandler handles menu-item-related HTTP requests.
type MenuItemHandler struct {
	service service.MenuItemService
	logger  zerolog.Logger
}

// NewMenuItemHandler creates a new menu item handler.
func NewMenuItemHandler(service service.MenuItemService, logger zerolog.Logger) *MenuItemHandler {
	return &MenuItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu_item").Logger(),
	}
}

// List handles GET /api/menu-items requests.
func (h *MenuItemHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r)(h.service.ListMenuItems(r.Context()))
}

// Get handles GET /api/menu-items/{id} requests.
func (h *MenuItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	item, err := h.service.GetMenuItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /api/menu-items requests.
func (h *MenuItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := h.decode(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	item, err := h.service.CreateMenuItem(r.Context(), dto)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/menu-items/{id} requests.
func (h *MenuItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	dto, err := h.decode(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	item, err := h.service.UpdateMenuItem(r.Context(), id, dto)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/menu-items/{id} requests.
func (h *MenuItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if err := h.service.DeleteMenuItem(r.Context(), id); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ByCategory handles GET /api/menu-items/by-category/{categoryId} requests.
func (h *MenuItemHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	h.respondList(w, r)(h.service.ListByCategory(r.Context(), categoryID))
}

// Available handles GET /api/menu-items/available requests.
func (h *MenuItemHandler) Available(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r)(h.service.ListAvailable(r.Context()))
}

// ByDietaryRestriction handles GET /api/menu-items/by-dietary-restriction?restriction=X requests.
func (h *MenuItemHandler) ByDietaryRestriction(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("restriction")
	if label == "" {
		writeError(w, r, model.NewInvalidParameterError("Required parameter 'restriction' is missing"), h.logger)
		return
	}

	// Unknown labels are rejected by the service
	restriction := model.CanonicalDietaryRestriction(label)
	h.respondList(w, r)(h.service.ListByDietaryRestriction(r.Context(), restriction))
}

// ByPriceRange handles GET /api/menu-items/by-price-range?minPrice=&maxPrice= requests.
func (h *MenuItemHandler) ByPriceRange(w http.ResponseWriter, r *http.Request) {
	minPrice, err := priceParam(r, "minPrice")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	maxPrice, err := priceParam(r, "maxPrice")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	h.respondList(w, r)(h.service.ListByPriceRange(r.Context(), minPrice, maxPrice))
}

// ByIngredient handles GET /api/menu-items/by-ingredient?ingredient= requests.
// A missing parameter matches every item that has an ingredient.
func (h *MenuItemHandler) ByIngredient(w http.ResponseWriter, r *http.Request) {
	substring := r.URL.Query().Get("ingredient")
	h.respondList(w, r)(h.service.ListByIngredient(r.Context(), substring))
}

// respondList writes a list result or routes its error to the error mapper.
func (h *MenuItemHandler) respondList(w http.ResponseWriter, r *http.Request) func([]model.MenuItemDTO, error) {
	return func(items []model.MenuItemDTO, err error) {
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// decode reads a menu item payload with defaults applied and validates it.
func (h *MenuItemHandler) decode(r *http.Request) (*model.MenuItemDTO, error) {
	dto := model.NewMenuItemDTO()
	if err := decodeJSON(r, &dto); err != nil {
		return nil, err
	}

	if fields := dto.Validate(); len(fields) > 0 {
		return nil, model.NewValidationError(fields)
	}

	return &dto, nil
}

// maxPriceExponent bounds the scale of price query parameters so that
// comparisons never expand an extreme exponent.
const maxPriceExponent = 10

// priceParam parses a required decimal query parameter.
func priceParam(r *http.Request, name string) (decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return decimal.Decimal{}, model.NewInvalidParameterError(
			fmt.Sprintf("Required parameter '%s' is missing", name))
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || value.Exponent() < -maxPriceExponent || value.Exponent() > maxPriceExponent {
		return decimal.Decimal{}, model.NewInvalidParameterError(
			fmt.Sprintf("Invalid value '%s' for parameter '%s'", raw, name))
	}

	return value, nil
}
