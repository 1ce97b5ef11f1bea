package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/myblog/internal/jsonstore"
	"github.com/dmitrijs2005/myblog/internal/models"
)

// ThemeService persists the colour scheme under the theme key.
type ThemeService struct {
	store *jsonstore.Adapter
}

func NewThemeService(store *jsonstore.Adapter) *ThemeService {
	return &ThemeService{store: store}
}

// Current returns the stored theme; anything but "dark" reads as light.
func (s *ThemeService) Current(ctx context.Context) (models.Theme, error) {
	v, _, err := s.store.String(ctx, models.KeyTheme)
	if err != nil {
		return "", fmt.Errorf("failed to read theme: %w", err)
	}
	if models.Theme(v) == models.ThemeDark {
		return models.ThemeDark, nil
	}
	return models.ThemeLight, nil
}

// Toggle flips the theme and returns the new one.
func (s *ThemeService) Toggle(ctx context.Context) (models.Theme, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	next := models.ThemeDark
	if cur == models.ThemeDark {
		next = models.ThemeLight
	}
	if err := s.store.SetString(ctx, models.KeyTheme, string(next)); err != nil {
		return "", fmt.Errorf("failed to save theme: %w", err)
	}
	return next, nil
}
