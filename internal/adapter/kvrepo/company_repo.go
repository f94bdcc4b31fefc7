package kvrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

const companiesKey = "companies"

type CompanyRepository struct {
	col *collection[domain.Company]
}

func NewCompanyRepository(store ports.KVStore) *CompanyRepository {
	return &CompanyRepository{col: newCollection[domain.Company](store, companiesKey)}
}

func (r *CompanyRepository) LoadOrSeed(ctx context.Context) ([]domain.Company, error) {
	return r.col.loadOrSeed(ctx, domain.SeedCompanies())
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	companies, _, err := r.col.load(ctx)
	return companies, err
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	companies, _, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	companies = append(companies, *company)
	if err := r.col.save(ctx, companies); err != nil {
		return nil, err
	}
	return company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	companies, _, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range companies {
		if companies[i].ID == company.ID {
			companies[i] = *company
			if err := r.col.save(ctx, companies); err != nil {
				return nil, err
			}
			return company, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes the company with the given id. Deleting an unknown id is a
// no-op, not an error.
func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	companies, _, err := r.col.load(ctx)
	if err != nil {
		return err
	}
	kept := companies[:0]
	for _, company := range companies {
		if company.ID != id {
			kept = append(kept, company)
		}
	}
	if len(kept) == len(companies) {
		return nil
	}
	return r.col.save(ctx, kept)
}
