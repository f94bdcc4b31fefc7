package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

type SparePartService struct {
	repo     ports.SparePartRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewSparePartService(
	repo ports.SparePartRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *SparePartService {
	return &SparePartService{
		repo:     repo,
		logger:   logger,
		validate: validate,
	}
}

func (s *SparePartService) LoadOrSeed(ctx context.Context) ([]domain.SparePart, error) {
	parts, err := s.repo.LoadOrSeed(ctx)
	if err != nil {
		s.logger.Error("Failed to load spare parts", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return parts, nil
}

func (s *SparePartService) ListSpareParts(ctx context.Context) ([]domain.SparePart, error) {
	parts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list spare parts", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return parts, nil
}

func (s *SparePartService) SearchSpareParts(ctx context.Context, query string) ([]domain.SparePart, error) {
	parts, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error("Failed to search spare parts", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		return nil, err
	}
	return parts, nil
}

func (s *SparePartService) CreateSparePart(ctx context.Context, part *domain.SparePart) (*domain.SparePart, error) {
	if err := s.validate.Struct(part); err != nil {
		s.logger.Error("Spare part validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if _, err := strconv.ParseFloat(part.Price, 64); err != nil {
		s.logger.Error("Spare part price is not a decimal", map[string]interface{}{
			"price": part.Price,
		})
		return nil, fmt.Errorf("validation error: price %q is not a decimal", part.Price)
	}

	created, err := s.repo.Create(ctx, part)
	if err != nil {
		s.logger.Error("Failed to create spare part", map[string]interface{}{
			"error":      err.Error(),
			"spare_name": part.SpareName,
		})
		return nil, err
	}

	s.logger.Info("Spare part created successfully", map[string]interface{}{
		"part_id":    created.ID,
		"spare_name": created.SpareName,
	})

	return created, nil
}

func (s *SparePartService) UpdateSparePart(ctx context.Context, part *domain.SparePart) (*domain.SparePart, error) {
	if err := s.validate.Struct(part); err != nil {
		s.logger.Error("Spare part validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	updated, err := s.repo.Update(ctx, part)
	if err != nil {
		s.logger.Error("Failed to update spare part", map[string]interface{}{
			"error":   err.Error(),
			"part_id": part.ID,
		})
		return nil, err
	}

	s.logger.Info("Spare part updated successfully", map[string]interface{}{
		"part_id": updated.ID,
	})

	return updated, nil
}

func (s *SparePartService) DeleteSparePart(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete spare part", map[string]interface{}{
			"error":   err.Error(),
			"part_id": id,
		})
		return err
	}

	s.logger.Info("Spare part deleted successfully", map[string]interface{}{
		"part_id": id,
	})

	return nil
}
