package services

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/kvrepo"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/memstore"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
)

func newCompanyService(cache *stubCache) (*CompanyService, *memstore.Store) {
	store := memstore.New()
	repo := kvrepo.NewCompanyRepository(store)
	return NewCompanyService(repo, nopLogger{}, validator.New(), cache), store
}

func TestListCompaniesFillsCache(t *testing.T) {
	cache := newStubCache()
	svc, _ := newCompanyService(cache)
	ctx := context.Background()

	if _, err := svc.LoadOrSeed(ctx); err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}

	companies, err := svc.ListCompanies(ctx)
	if err != nil {
		t.Fatalf("ListCompanies() error = %v", err)
	}
	if len(companies) != 3 {
		t.Fatalf("ListCompanies() returned %d companies, want 3", len(companies))
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}

	// Second call is served from the cache.
	if _, err := svc.ListCompanies(ctx); err != nil {
		t.Fatalf("ListCompanies() error = %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("cache sets after hit = %d, want 1", cache.sets)
	}
}

func TestCreateCompanyInvalidatesCache(t *testing.T) {
	cache := newStubCache()
	svc, _ := newCompanyService(cache)
	ctx := context.Background()

	if _, err := svc.LoadOrSeed(ctx); err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}
	if _, err := svc.ListCompanies(ctx); err != nil {
		t.Fatalf("ListCompanies() error = %v", err)
	}

	created, err := svc.CreateCompany(ctx, &domain.Company{Name: "Tata", Image: "img"})
	if err != nil {
		t.Fatalf("CreateCompany() error = %v", err)
	}
	if created.ID == "" {
		t.Error("CreateCompany() left ID empty")
	}
	if cache.deletes == 0 {
		t.Error("CreateCompany() did not invalidate the cache")
	}

	companies, err := svc.ListCompanies(ctx)
	if err != nil {
		t.Fatalf("ListCompanies() error = %v", err)
	}
	if len(companies) != 4 {
		t.Errorf("ListCompanies() returned %d companies after create, want 4", len(companies))
	}
}

func TestCreateCompanyValidationFailureDoesNotPersist(t *testing.T) {
	cache := newStubCache()
	svc, store := newCompanyService(cache)
	ctx := context.Background()

	if _, err := svc.CreateCompany(ctx, &domain.Company{Image: "img"}); err == nil {
		t.Fatal("CreateCompany() expected validation error for missing name")
	}
	if store.Len() != 0 {
		t.Errorf("store has %d keys after rejected create, want 0", store.Len())
	}
}

func TestDeleteCompany(t *testing.T) {
	cache := newStubCache()
	svc, _ := newCompanyService(cache)
	ctx := context.Background()

	if _, err := svc.LoadOrSeed(ctx); err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}
	if err := svc.DeleteCompany(ctx, "1"); err != nil {
		t.Fatalf("DeleteCompany() error = %v", err)
	}

	companies, err := svc.ListCompanies(ctx)
	if err != nil {
		t.Fatalf("ListCompanies() error = %v", err)
	}
	if len(companies) != 2 {
		t.Errorf("ListCompanies() returned %d companies after delete, want 2", len(companies))
	}
}
