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

const companiesCacheKey = "catalog:companies"

type CompanyService struct {
	repo     ports.CompanyRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewCompanyService(
	repo ports.CompanyRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *CompanyService {
	return &CompanyService{
		repo:     repo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

// LoadOrSeed runs once at startup so the first list request already sees
// the seed dataset.
func (s *CompanyService) LoadOrSeed(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.repo.LoadOrSeed(ctx)
	if err != nil {
		s.logger.Error("Failed to load companies", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return companies, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	cachedData, err := s.cache.Get(companiesCacheKey)
	if err == nil {
		var cached []domain.Company
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			return cached, nil
		}
	}

	companies, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list companies", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	if data, err := json.Marshal(companies); err == nil {
		if err := s.cache.Set(companiesCacheKey, data, 15*time.Minute); err != nil {
			s.logger.Warn("Failed to cache companies", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return companies, nil
}

func (s *CompanyService) CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := s.validate.Struct(company); err != nil {
		s.logger.Error("Company validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		s.logger.Error("Failed to create company", map[string]interface{}{
			"error": err.Error(),
			"name":  company.Name,
		})
		return nil, err
	}

	s.invalidateCache()
	s.logger.Info("Company created successfully", map[string]interface{}{
		"company_id": created.ID,
		"name":       created.Name,
	})

	return created, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := s.validate.Struct(company); err != nil {
		s.logger.Error("Company validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	updated, err := s.repo.Update(ctx, company)
	if err != nil {
		s.logger.Error("Failed to update company", map[string]interface{}{
			"error":      err.Error(),
			"company_id": company.ID,
		})
		return nil, err
	}

	s.invalidateCache()
	s.logger.Info("Company updated successfully", map[string]interface{}{
		"company_id": updated.ID,
	})

	return updated, nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete company", map[string]interface{}{
			"error":      err.Error(),
			"company_id": id,
		})
		return err
	}

	s.invalidateCache()
	s.logger.Info("Company deleted successfully", map[string]interface{}{
		"company_id": id,
	})

	return nil
}

func (s *CompanyService) invalidateCache() {
	if err := s.cache.Delete(companiesCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate companies cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
