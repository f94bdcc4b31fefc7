package kvrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/sparegold/sparegold_catalog_service/internal/adapter/memstore"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
)

func TestCompanyRepositorySeedsOnFirstLoad(t *testing.T) {
	repo := NewCompanyRepository(memstore.New())
	ctx := context.Background()

	companies, err := repo.LoadOrSeed(ctx)
	if err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}
	if len(companies) != 3 {
		t.Fatalf("LoadOrSeed() returned %d companies, want 3", len(companies))
	}
	if companies[0].Name != "Tesla" {
		t.Errorf("first seed company = %q, want Tesla", companies[0].Name)
	}
}

func TestCompanyRepositorySeedNotReapplied(t *testing.T) {
	repo := NewCompanyRepository(memstore.New())
	ctx := context.Background()

	seeded, err := repo.LoadOrSeed(ctx)
	if err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}
	for _, company := range seeded {
		if err := repo.Delete(ctx, company.ID); err != nil {
			t.Fatalf("Delete(%q) error = %v", company.ID, err)
		}
	}

	// An emptied collection stays empty: the seed applies on first run only.
	companies, err := repo.LoadOrSeed(ctx)
	if err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}
	if len(companies) != 0 {
		t.Errorf("LoadOrSeed() after full delete returned %d companies, want 0", len(companies))
	}
}

func TestCompanyRepositoryCreateGeneratesID(t *testing.T) {
	repo := NewCompanyRepository(memstore.New())
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Company{Name: "Tata", Image: "img"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Error("Create() left ID empty, want generated uuid")
	}

	companies, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(companies) != 1 {
		t.Fatalf("List() returned %d companies, want 1", len(companies))
	}
	if companies[0].ID != created.ID {
		t.Errorf("persisted ID = %q, want %q", companies[0].ID, created.ID)
	}
}

func TestCompanyRepositoryUpdate(t *testing.T) {
	repo := NewCompanyRepository(memstore.New())
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Company{Name: "Tata", Image: "img"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	created.Name = "Tata Motors"
	if _, err := repo.Update(ctx, created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	companies, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if companies[0].Name != "Tata Motors" {
		t.Errorf("Name after update = %q, want %q", companies[0].Name, "Tata Motors")
	}
}

func TestCompanyRepositoryUpdateUnknownID(t *testing.T) {
	repo := NewCompanyRepository(memstore.New())

	_, err := repo.Update(context.Background(), &domain.Company{ID: "nope", Name: "X", Image: "img"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestCompanyRepositoryDeleteIdempotent(t *testing.T) {
	store := memstore.New()
	repo := NewCompanyRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Company{Name: "Tata", Image: "img"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}

	companies, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(companies) != 0 {
		t.Errorf("List() returned %d companies after delete, want 0", len(companies))
	}
}

func TestCarModelRepositorySearch(t *testing.T) {
	repo := NewCarModelRepository(memstore.New())
	ctx := context.Background()

	if _, err := repo.LoadOrSeed(ctx); err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}

	matched, err := repo.Search(ctx, "tesla")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("Search(tesla) returned %d models, want 1", len(matched))
	}
	if matched[0].Name != "Tesla Model S" {
		t.Errorf("Search(tesla) = %q, want Tesla Model S", matched[0].Name)
	}

	// Blank query returns the whole collection.
	all, err := repo.Search(ctx, "   ")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Search(blank) returned %d models, want 3", len(all))
	}
}

func TestVariantRepositorySearchMatchesNameAndVariant(t *testing.T) {
	repo := NewVariantRepository(memstore.New())
	ctx := context.Background()

	if _, err := repo.LoadOrSeed(ctx); err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}

	byVariant, err := repo.Search(ctx, "plaid")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(byVariant) != 1 {
		t.Fatalf("Search(plaid) returned %d variants, want 1", len(byVariant))
	}

	byName, err := repo.Search(ctx, "jaguar")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(byName) != 3 {
		t.Errorf("Search(jaguar) returned %d variants, want 3", len(byName))
	}
}

func TestSparePartRepositorySearch(t *testing.T) {
	repo := NewSparePartRepository(memstore.New())
	ctx := context.Background()

	parts := []domain.SparePart{
		{CarName: "Model S", Brand: "Bosch", CarMake: "Tesla", SpareName: "Brake Pad Set", Year: "2022", Price: "4500"},
		{CarName: "3 Series", Brand: "Mahle", CarMake: "BMW", SpareName: "Oil Filter", Year: "2021", Price: "650"},
	}
	for i := range parts {
		if _, err := repo.Create(ctx, &parts[i]); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	bySpareName, err := repo.Search(ctx, "brake")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(bySpareName) != 1 || bySpareName[0].SpareName != "Brake Pad Set" {
		t.Errorf("Search(brake) = %v, want the brake pad set", bySpareName)
	}

	byCarName, err := repo.Search(ctx, "model s")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(byCarName) != 1 {
		t.Errorf("Search(model s) returned %d parts, want 1", len(byCarName))
	}

	none, err := repo.Search(ctx, "clutch")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Search(clutch) returned %d parts, want 0", len(none))
	}
}

func TestBookingRepositoryGetByID(t *testing.T) {
	repo := NewBookingRepository(memstore.New())
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Booking{
		CustomerName: "A. Kumar",
		Address:      "12 MG Road, Pune",
		Mobile:       "9876543210",
		SpareName:    "Brake Pad Set",
		CarName:      "Model S",
		CarMake:      "Tesla",
		Price:        "4500",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.CustomerName != "A. Kumar" {
		t.Errorf("CustomerName = %q, want %q", got.CustomerName, "A. Kumar")
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestCollectionsPersistAcrossRepositories(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	first := NewVariantRepository(store)
	if _, err := first.LoadOrSeed(ctx); err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}
	if _, err := first.Create(ctx, &domain.Variant{
		Name: "Tesla Model S", Variant: "Custom", Details: "one-off", Image: "img",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// A fresh repository over the same store sees the persisted state.
	second := NewVariantRepository(store)
	variants, err := second.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(variants) != 10 {
		t.Errorf("List() returned %d variants, want 10", len(variants))
	}
}
