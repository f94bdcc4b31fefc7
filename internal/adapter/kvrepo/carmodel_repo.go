package kvrepo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

const carModelsKey = "carModels"

type CarModelRepository struct {
	col *collection[domain.CarModel]
}

func NewCarModelRepository(store ports.KVStore) *CarModelRepository {
	return &CarModelRepository{col: newCollection[domain.CarModel](store, carModelsKey)}
}

func (r *CarModelRepository) LoadOrSeed(ctx context.Context) ([]domain.CarModel, error) {
	return r.col.loadOrSeed(ctx, domain.SeedCarModels())
}

func (r *CarModelRepository) List(ctx context.Context) ([]domain.CarModel, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	models, _, err := r.col.load(ctx)
	return models, err
}

// Search matches the model name, case-insensitive, always against the
// persisted collection so repeated searches are independent of each other.
func (r *CarModelRepository) Search(ctx context.Context, query string) ([]domain.CarModel, error) {
	models, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return models, nil
	}
	var matched []domain.CarModel
	for _, model := range models {
		if containsFold(model.Name, query) {
			matched = append(matched, model)
		}
	}
	return matched, nil
}

func (r *CarModelRepository) Create(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	models, _, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	models = append(models, *model)
	if err := r.col.save(ctx, models); err != nil {
		return nil, err
	}
	return model, nil
}

func (r *CarModelRepository) Update(ctx context.Context, model *domain.CarModel) (*domain.CarModel, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	models, _, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range models {
		if models[i].ID == model.ID {
			models[i] = *model
			if err := r.col.save(ctx, models); err != nil {
				return nil, err
			}
			return model, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CarModelRepository) Delete(ctx context.Context, id string) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	models, _, err := r.col.load(ctx)
	if err != nil {
		return err
	}
	kept := models[:0]
	for _, model := range models {
		if model.ID != id {
			kept = append(kept, model)
		}
	}
	if len(kept) == len(models) {
		return nil
	}
	return r.col.save(ctx, kept)
}
