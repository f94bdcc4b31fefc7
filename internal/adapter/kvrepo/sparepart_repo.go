package kvrepo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

const sparePartsKey = "spareParts"

// SparePartRepository stores spare parts under generated uuids. The mobile
// client addressed parts by list position; positional identity breaks as
// soon as two mutations race, so parts get real ids here.
type SparePartRepository struct {
	col *collection[domain.SparePart]
}

func NewSparePartRepository(store ports.KVStore) *SparePartRepository {
	return &SparePartRepository{col: newCollection[domain.SparePart](store, sparePartsKey)}
}

// LoadOrSeed exists for symmetry with the other catalog collections; spare
// parts have no seed dataset, so first run persists an empty collection.
func (r *SparePartRepository) LoadOrSeed(ctx context.Context) ([]domain.SparePart, error) {
	return r.col.loadOrSeed(ctx, []domain.SparePart{})
}

func (r *SparePartRepository) List(ctx context.Context) ([]domain.SparePart, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	parts, _, err := r.col.load(ctx)
	return parts, err
}

func (r *SparePartRepository) Search(ctx context.Context, query string) ([]domain.SparePart, error) {
	parts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return parts, nil
	}
	var matched []domain.SparePart
	for _, part := range parts {
		if containsFold(part.SpareName, query) || containsFold(part.CarName, query) {
			matched = append(matched, part)
		}
	}
	return matched, nil
}

func (r *SparePartRepository) Create(ctx context.Context, part *domain.SparePart) (*domain.SparePart, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	parts, _, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	if part.ID == "" {
		part.ID = uuid.NewString()
	}
	parts = append(parts, *part)
	if err := r.col.save(ctx, parts); err != nil {
		return nil, err
	}
	return part, nil
}

func (r *SparePartRepository) Update(ctx context.Context, part *domain.SparePart) (*domain.SparePart, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	parts, _, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range parts {
		if parts[i].ID == part.ID {
			parts[i] = *part
			if err := r.col.save(ctx, parts); err != nil {
				return nil, err
			}
			return part, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *SparePartRepository) Delete(ctx context.Context, id string) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	parts, _, err := r.col.load(ctx)
	if err != nil {
		return err
	}
	kept := parts[:0]
	for _, part := range parts {
		if part.ID != id {
			kept = append(kept, part)
		}
	}
	if len(kept) == len(parts) {
		return nil
	}
	return r.col.save(ctx, kept)
}
