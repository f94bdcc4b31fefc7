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

const carModelsCacheKey = "catalog:carModels"

type CarModelService struct {
	repo     ports.CarModelRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewCarModelService(
	repo ports.CarModelRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *CarModelService {
	return &CarModelService{
		repo:     repo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func (s *CarModelService) LoadOrSeed(ctx context.Context) ([]domain.CarModel, error) {
	models, err := s.repo.LoadOrSeed(ctx)
	if err != nil {
		s.logger.Error("Failed to load car models", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return models, nil
}

func (s *CarModelService) ListCarModels(ctx context.Context) ([]domain.CarModel, error) {
	cachedData, err := s.cache.Get(carModelsCacheKey)
	if err == nil {
		var cached []domain.CarModel
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			return cached, nil
		}
	}

	models, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list car models", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	if data, err := json.Marshal(models); err == nil {
		if err := s.cache.Set(carModelsCacheKey, data, 15*time.Minute); err != nil {
			s.logger.Warn("Failed to cache car models", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return models, nil
}

// SearchCarModels goes straight to the repository so results always reflect
// the persisted collection, not the cached list.
func (s *CarModelService) SearchCarModels(ctx context.Context, query string) ([]domain.CarModel, error) {
	models, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error("Failed to search car models", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		return nil, err
	}
	return models, nil
}

func (s *CarModelService) CreateCarModel(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error) {
	if err := s.validate.Struct(model); err != nil {
		s.logger.Error("Car model validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	created, err := s.repo.Create(ctx, model)
	if err != nil {
		s.logger.Error("Failed to create car model", map[string]interface{}{
			"error": err.Error(),
			"name":  model.Name,
		})
		return nil, err
	}

	s.invalidateCache()
	s.logger.Info("Car model created successfully", map[string]interface{}{
		"model_id": created.ID,
		"name":     created.Name,
	})

	return created, nil
}

func (s *CarModelService) UpdateCarModel(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error) {
	if err := s.validate.Struct(model); err != nil {
		s.logger.Error("Car model validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	updated, err := s.repo.Update(ctx, model)
	if err != nil {
		s.logger.Error("Failed to update car model", map[string]interface{}{
			"error":    err.Error(),
			"model_id": model.ID,
		})
		return nil, err
	}

	s.invalidateCache()
	s.logger.Info("Car model updated successfully", map[string]interface{}{
		"model_id": updated.ID,
	})

	return updated, nil
}

func (s *CarModelService) DeleteCarModel(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete car model", map[string]interface{}{
			"error":    err.Error(),
			"model_id": id,
		})
		return err
	}

	s.invalidateCache()
	s.logger.Info("Car model deleted successfully", map[string]interface{}{
		"model_id": id,
	})

	return nil
}

func (s *CarModelService) invalidateCache() {
	if err := s.cache.Delete(carModelsCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate car models cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
