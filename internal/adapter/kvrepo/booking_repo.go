package kvrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

const bookingsKey = "bookings"

type BookingRepository struct {
	col *collection[domain.Booking]
}

func NewBookingRepository(store ports.KVStore) *BookingRepository {
	return &BookingRepository{col: newCollection[domain.Booking](store, bookingsKey)}
}

func (r *BookingRepository) LoadOrSeed(ctx context.Context) ([]domain.Booking, error) {
	return r.col.loadOrSeed(ctx, []domain.Booking{})
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	bookings, _, err := r.col.load(ctx)
	return bookings, err
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	bookings, _, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	bookings = append(bookings, *booking)
	if err := r.col.save(ctx, bookings); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	bookings, _, err := r.col.load(ctx)
	if err != nil {
		return err
	}
	kept := bookings[:0]
	for _, booking := range bookings {
		if booking.ID != id {
			kept = append(kept, booking)
		}
	}
	if len(kept) == len(bookings) {
		return nil
	}
	return r.col.save(ctx, kept)
}
