package kvrepo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

const variantsKey = "variants"

type VariantRepository struct {
	col *collection[domain.Variant]
}

func NewVariantRepository(store ports.KVStore) *VariantRepository {
	return &VariantRepository{col: newCollection[domain.Variant](store, variantsKey)}
}

func (r *VariantRepository) LoadOrSeed(ctx context.Context) ([]domain.Variant, error) {
	return r.col.loadOrSeed(ctx, domain.SeedVariants())
}

func (r *VariantRepository) List(ctx context.Context) ([]domain.Variant, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	variants, _, err := r.col.load(ctx)
	return variants, err
}

// Search matches the parent model name or the variant name.
func (r *VariantRepository) Search(ctx context.Context, query string) ([]domain.Variant, error) {
	variants, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return variants, nil
	}
	var matched []domain.Variant
	for _, variant := range variants {
		if containsFold(variant.Name, query) || containsFold(variant.Variant, query) {
			matched = append(matched, variant)
		}
	}
	return matched, nil
}

func (r *VariantRepository) Create(ctx context.Context, variant *domain.Variant) (*domain.Variant, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	variants, _, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	if variant.ID == "" {
		variant.ID = uuid.NewString()
	}
	variants = append(variants, *variant)
	if err := r.col.save(ctx, variants); err != nil {
		return nil, err
	}
	return variant, nil
}

func (r *VariantRepository) Update(ctx context.Context, variant *domain.Variant) (*domain.Variant, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	variants, _, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range variants {
		if variants[i].ID == variant.ID {
			variants[i] = *variant
			if err := r.col.save(ctx, variants); err != nil {
				return nil, err
			}
			return variant, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *VariantRepository) Delete(ctx context.Context, id string) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	variants, _, err := r.col.load(ctx)
	if err != nil {
		return err
	}
	kept := variants[:0]
	for _, variant := range variants {
		if variant.ID != id {
			kept = append(kept, variant)
		}
	}
	if len(kept) == len(variants) {
		return nil
	}
	return r.col.save(ctx, kept)
}
