package ports

import (
	"context"

	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
)

type CompanyRepository interface {
	LoadOrSeed(ctx context.Context) ([]domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
}

type CarModelRepository interface {
	LoadOrSeed(ctx context.Context) ([]domain.CarModel, error)
	List(ctx context.Context) ([]domain.CarModel, error)
	Search(ctx context.Context, query string) ([]domain.CarModel, error)
	Create(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error)
	Update(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error)
	Delete(ctx context.Context, id string) error
}

type VariantRepository interface {
	LoadOrSeed(ctx context.Context) ([]domain.Variant, error)
	List(ctx context.Context) ([]domain.Variant, error)
	Search(ctx context.Context, query string) ([]domain.Variant, error)
	Create(ctx context.Context, variant *domain.Variant) (*domain.Variant, error)
	Update(ctx context.Context, variant *domain.Variant) (*domain.Variant, error)
	Delete(ctx context.Context, id string) error
}

type SparePartRepository interface {
	LoadOrSeed(ctx context.Context) ([]domain.SparePart, error)
	List(ctx context.Context) ([]domain.SparePart, error)
	Search(ctx context.Context, query string) ([]domain.SparePart, error)
	Create(ctx context.Context, part *domain.SparePart) (*domain.SparePart, error)
	Update(ctx context.Context, part *domain.SparePart) (*domain.SparePart, error)
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	LoadOrSeed(ctx context.Context) ([]domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
