package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

const variantsCacheKey = "catalog:variants"

type VariantService struct {
	repo     ports.VariantRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewVariantService(
	repo ports.VariantRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *VariantService {
	return &VariantService{
		repo:     repo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func (s *VariantService) LoadOrSeed(ctx context.Context) ([]domain.Variant, error) {
	variants, err := s.repo.LoadOrSeed(ctx)
	if err != nil {
		s.logger.Error("Failed to load variants", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return variants, nil
}

func (s *VariantService) ListVariants(ctx context.Context) ([]domain.Variant, error) {
	cachedData, err := s.cache.Get(variantsCacheKey)
	if err == nil {
		var cached []domain.Variant
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			return cached, nil
		}
	}

	variants, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list variants", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	if data, err := json.Marshal(variants); err == nil {
		if err := s.cache.Set(variantsCacheKey, data, 15*time.Minute); err != nil {
			s.logger.Warn("Failed to cache variants", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return variants, nil
}

func (s *VariantService) SearchVariants(ctx context.Context, query string) ([]domain.Variant, error) {
	variants, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error("Failed to search variants", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		return nil, err
	}
	return variants, nil
}

func (s *VariantService) CreateVariant(ctx context.Context, variant *domain.Variant) (*domain.Variant, error) {
	if err := s.validate.Struct(variant); err != nil {
		s.logger.Error("Variant validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	created, err := s.repo.Create(ctx, variant)
	if err != nil {
		s.logger.Error("Failed to create variant", map[string]interface{}{
			"error": err.Error(),
			"name":  variant.Name,
		})
		return nil, err
	}

	s.invalidateCache()
	s.logger.Info("Variant created successfully", map[string]interface{}{
		"variant_id": created.ID,
		"name":       created.Name,
	})

	return created, nil
}

func (s *VariantService) UpdateVariant(ctx context.Context, variant *domain.Variant) (*domain.Variant, error) {
	if err := s.validate.Struct(variant); err != nil {
		s.logger.Error("Variant validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	updated, err := s.repo.Update(ctx, variant)
	if err != nil {
		s.logger.Error("Failed to update variant", map[string]interface{}{
			"error":      err.Error(),
			"variant_id": variant.ID,
		})
		return nil, err
	}

	s.invalidateCache()
	s.logger.Info("Variant updated successfully", map[string]interface{}{
		"variant_id": updated.ID,
	})

	return updated, nil
}

func (s *VariantService) DeleteVariant(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete variant", map[string]interface{}{
			"error":      err.Error(),
			"variant_id": id,
		})
		return err
	}

	s.invalidateCache()
	s.logger.Info("Variant deleted successfully", map[string]interface{}{
		"variant_id": id,
	})

	return nil
}

func (s *VariantService) invalidateCache() {
	if err := s.cache.Delete(variantsCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate variants cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
