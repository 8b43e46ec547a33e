package service

import (
	"context"
	"errors"
	"time"

	"github.com/neolayer/store-backend/internal/apperror"
	"github.com/neolayer/store-backend/internal/models"
	"github.com/neolayer/store-backend/internal/repository"
)

// SettingsService manages the single "store" settings document
type SettingsService struct {
	repo repository.SettingsRepository
	now  func() time.Time
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
		now:  time.Now,
	}
}

// EnsureDefaults stores the default settings if none exist. It is safe to
// call on every startup and reports whether a document was created.
func (s *SettingsService) EnsureDefaults(ctx context.Context) (bool, error) {
	_, err := s.repo.Get(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return false, classify(err, "")
	}

	err = s.repo.Insert(ctx, models.DefaultSettings())
	if errors.Is(err, repository.ErrSettingsExists) {
		// another instance won the race
		return false, nil
	}
	if err != nil {
		return false, classify(err, "")
	}
	return true, nil
}

// GetSettings returns the stored settings, or the defaults without storing
// them when the document is missing. Reads never write.
func (s *SettingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		def := models.DefaultSettings()
		return &def, nil
	}
	if err != nil {
		return nil, classify(err, "")
	}
	return settings, nil
}

// UpdateTheme upserts the theme and returns the stored value
func (s *SettingsService) UpdateTheme(ctx context.Context, theme string) (string, error) {
	if theme == "" {
		return "", apperror.Validation(MsgThemeRequired)
	}
	if err := s.repo.UpsertTheme(ctx, theme, s.now().UTC()); err != nil {
		return "", classify(err, "")
	}
	return theme, nil
}
