package router

import (
	"net/http"

	"menu-service/internal/handler"
	"menu-service/internal/metrics"
	"menu-service/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Metrics wires the Prometheus endpoint. A nil *Metrics disables it.
type Metrics struct {
	Collector *metrics.Collector
	Gatherer  prometheus.Gatherer
	Path      string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	categoryHandler *handler.CategoryHandler,
	menuItemHandler *handler.MenuItemHandler,
	m *Metrics,
	logger zerolog.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	categories := api.PathPrefix("/categories").Subrouter()
	categories.HandleFunc("", categoryHandler.List).Methods(http.MethodGet)
	categories.HandleFunc("", categoryHandler.Create).Methods(http.MethodPost)
	categories.HandleFunc("/{id}", categoryHandler.Get).Methods(http.MethodGet)
	categories.HandleFunc("/{id}", categoryHandler.Update).Methods(http.MethodPut)
	categories.HandleFunc("/{id}", categoryHandler.Delete).Methods(http.MethodDelete)

	// Fixed filter paths are registered ahead of /{id}
	items := api.PathPrefix("/menu-items").Subrouter()
	items.HandleFunc("", menuItemHandler.List).Methods(http.MethodGet)
	items.HandleFunc("", menuItemHandler.Create).Methods(http.MethodPost)
	items.HandleFunc("/available", menuItemHandler.Available).Methods(http.MethodGet)
	items.HandleFunc("/by-category/{categoryId}", menuItemHandler.ByCategory).Methods(http.MethodGet)
	items.HandleFunc("/by-dietary-restriction", menuItemHandler.ByDietaryRestriction).Methods(http.MethodGet)
	items.HandleFunc("/by-price-range", menuItemHandler.ByPriceRange).Methods(http.MethodGet)
	items.HandleFunc("/by-ingredient", menuItemHandler.ByIngredient).Methods(http.MethodGet)
	items.HandleFunc("/{id}", menuItemHandler.Get).Methods(http.MethodGet)
	items.HandleFunc("/{id}", menuItemHandler.Update).Methods(http.MethodPut)
	items.HandleFunc("/{id}", menuItemHandler.Delete).Methods(http.MethodDelete)

	notFound := handler.NotFoundHandler(logger)
	methodNotAllowed := handler.MethodNotAllowedHandler(logger)

	if m != nil {
		r.Handle(m.Path, promhttp.HandlerFor(m.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

		instrument := middleware.Metrics(m.Collector)
		r.Use(instrument)
		// Router middleware does not run for unmatched requests
		notFound = instrument(notFound)
		methodNotAllowed = instrument(methodNotAllowed)
	}

	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = methodNotAllowed

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var h http.Handler = r
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
