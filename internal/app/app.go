package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/neolayer/store-backend/internal/config"
	"github.com/neolayer/store-backend/internal/repository"
	"github.com/neolayer/store-backend/internal/server"
	"github.com/neolayer/store-backend/internal/service"
)

// Repositories are the storage backends the services run on
type Repositories struct {
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Settings repository.SettingsRepository
}

// App is a fully wired server, ready to listen
type App struct {
	Server *http.Server
	store  *repository.MongoStore
	log    *slog.Logger
}

// Bootstrap connects to MongoDB and wires the application on top of it.
// Any failure here is fatal to the process.
func Bootstrap(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	log.Info("connecting to mongodb", "database", cfg.Mongo.Database)
	store, err := repository.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	log.Info("connected to mongodb")

	a, err := New(ctx, cfg, log, Repositories{
		Products: store.ProductRepository(),
		Orders:   store.OrderRepository(),
		Settings: store.SettingsRepository(),
	})
	if err != nil {
		_ = store.Close(context.Background())
		return nil, err
	}
	a.store = store
	return a, nil
}

// New builds services, seeds the default settings and creates the HTTP server
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, repos Repositories) (*App, error) {
	productService := service.NewProductService(repos.Products)
	orderService := service.NewOrderService(repos.Orders)
	settingsService := service.NewSettingsService(repos.Settings)

	created, err := settingsService.EnsureDefaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize settings: %w", err)
	}
	if created {
		log.Info("default settings created")
	}

	handler := server.NewRouter(server.Dependencies{
		Products:       productService,
		Orders:         orderService,
		Settings:       settingsService,
		Logger:         log,
		StaticDir:      cfg.StaticDir,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
	})

	return &App{
		Server: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		},
		log: log,
	}, nil
}

// ListenAndServe blocks until the server stops. A graceful shutdown is not an error.
func (a *App) ListenAndServe() error {
	a.log.Info("server listening", "address", a.Server.Addr)
	if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then releases the database client
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Server.Shutdown(ctx)
	if closeErr := a.store.Close(ctx); closeErr != nil {
		a.log.Error("failed to disconnect mongodb", "error", closeErr)
		err = errors.Join(err, closeErr)
	}
	return err
}
