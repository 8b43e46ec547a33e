package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/neolayer/store-backend/internal/models"
)

var (
	ErrSettingsNotFound = errors.New("settings not found")
	ErrSettingsExists   = errors.New("settings already exist")
)

// SettingsRepository reads and writes the single "store" settings document
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	// Insert fails with ErrSettingsExists when the document is already stored
	Insert(ctx context.Context, s models.Settings) error
	// UpsertTheme sets theme and updatedAt, creating the document if needed
	UpsertTheme(ctx context.Context, theme string, at time.Time) error
}

// InMemorySettingsRepository implements SettingsRepository with in-memory storage
type InMemorySettingsRepository struct {
	mu       sync.RWMutex
	settings *models.Settings
}

func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{}
}

func (r *InMemorySettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, ErrSettingsNotFound
	}
	s := *r.settings
	return &s, nil
}

func (r *InMemorySettingsRepository) Insert(ctx context.Context, s models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings != nil {
		return ErrSettingsExists
	}
	r.settings = &s
	return nil
}

func (r *InMemorySettingsRepository) UpsertTheme(ctx context.Context, theme string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		r.settings = &models.Settings{ID: models.StoreSettingsID}
	}
	r.settings.Theme = theme
	r.settings.UpdatedAt = &at
	return nil
}

// Reset removes the stored document, as if it had been deleted out of band
func (r *InMemorySettingsRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = nil
}

var _ SettingsRepository = (*InMemorySettingsRepository)(nil)
