package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

const darkModeKey = "isDarkMode"

// ProfileService owns per-user display preferences.
type ProfileService struct {
	store  ports.KVStore
	logger ports.LoggerPort
}

func NewProfileService(store ports.KVStore, logger ports.LoggerPort) *ProfileService {
	return &ProfileService{store: store, logger: logger}
}

// DarkMode reports the persisted theme preference; defaults to false.
func (s *ProfileService) DarkMode(ctx context.Context) (bool, error) {
	raw, err := s.store.Get(ctx, darkModeKey)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load dark mode: %w", err)
	}
	var enabled bool
	if err := json.Unmarshal([]byte(raw), &enabled); err != nil {
		return false, fmt.Errorf("decode dark mode: %w", err)
	}
	return enabled, nil
}

func (s *ProfileService) SetDarkMode(ctx context.Context, enabled bool) error {
	if err := s.store.Set(ctx, darkModeKey, strconv.FormatBool(enabled)); err != nil {
		s.logger.Error("Failed to persist dark mode", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	s.logger.Info("Dark mode updated", map[string]interface{}{
		"enabled": enabled,
	})
	return nil
}
