package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/neolayer/store-backend/internal/handlers"
	"github.com/neolayer/store-backend/internal/middleware"
	"github.com/neolayer/store-backend/internal/service"
)

const defaultRequestTimeout = 10 * time.Second

// Dependencies are the services the HTTP surface is built on
type Dependencies struct {
	Products *service.ProductService
	Orders   *service.OrderService
	Settings *service.SettingsService
	Logger   *slog.Logger
	// StaticDir, when set, is served at "/" underneath the API routes
	StaticDir string
	// RequestTimeout cancels a request's context; zero means 10s
	RequestTimeout time.Duration
}

// NewRouter wires middleware and every route of the store API
func NewRouter(deps Dependencies) http.Handler {
	log := deps.Logger

	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(deps.Products, log)
	orderHandler := handlers.NewOrderHandler(deps.Orders, log)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings, log)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.ServeHTTP)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Post("/", productHandler.CreateProduct)
			r.Put("/{id}", productHandler.UpdateProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.ListOrders)
			r.Post("/", orderHandler.CreateOrder)
			r.Get("/status/{status}", orderHandler.ListOrdersByStatus)
			r.Put("/{id}/status", orderHandler.UpdateOrderStatus)
			r.Delete("/{id}", orderHandler.DeleteOrder)
		})

		r.Get("/settings", settingsHandler.GetSettings)
		r.Put("/settings/theme", settingsHandler.UpdateTheme)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			handlers.WriteError(w, http.StatusNotFound, "Not found", log)
		})
	})

	if deps.StaticDir != "" {
		log.Info("serving static files", "dir", deps.StaticDir)
		r.Handle("/*", http.FileServer(http.Dir(deps.StaticDir)))
	}

	return r
}
