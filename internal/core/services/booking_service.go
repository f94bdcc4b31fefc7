package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepository
	partRepo    ports.SparePartRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
}

func NewBookingService(
	bookingRepo ports.BookingRepository,
	partRepo ports.SparePartRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		partRepo:    partRepo,
		logger:      logger,
		validate:    validate,
	}
}

func (s *BookingService) LoadOrSeed(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.LoadOrSeed(ctx)
	if err != nil {
		s.logger.Error("Failed to load bookings", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list bookings", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := s.validate.Struct(booking); err != nil {
		s.logger.Error("Booking validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if _, err := strconv.ParseFloat(booking.Price, 64); err != nil {
		s.logger.Error("Booking price is not a decimal", map[string]interface{}{
			"price": booking.Price,
		})
		return nil, fmt.Errorf("validation error: price %q is not a decimal", booking.Price)
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("Failed to create booking", map[string]interface{}{
			"error":    err.Error(),
			"customer": booking.CustomerName,
		})
		return nil, err
	}

	s.logger.Info("Booking confirmed", map[string]interface{}{
		"booking_id": created.ID,
		"customer":   created.CustomerName,
		"spare_name": created.SpareName,
	})

	return created, nil
}

// BookSparePart creates a booking for an existing catalog part, copying the
// part's descriptive fields so the receipt stays correct even if the part
// is later edited or removed.
func (s *BookingService) BookSparePart(ctx context.Context, partID, customerName, address, mobile string) (*domain.Booking, error) {
	parts, err := s.partRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var part *domain.SparePart
	for i := range parts {
		if parts[i].ID == partID {
			part = &parts[i]
			break
		}
	}
	if part == nil {
		s.logger.Warn("Booking requested for unknown spare part", map[string]interface{}{
			"part_id": partID,
		})
		return nil, domain.ErrNotFound
	}

	booking := &domain.Booking{
		CustomerName: customerName,
		Address:      address,
		Mobile:       mobile,
		SpareName:    part.SpareName,
		CarName:      part.CarName,
		CarMake:      part.CarMake,
		Price:        part.Price,
	}
	return s.CreateBooking(ctx, booking)
}

func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete booking", map[string]interface{}{
			"error":      err.Error(),
			"booking_id": id,
		})
		return err
	}

	s.logger.Info("Booking deleted successfully", map[string]interface{}{
		"booking_id": id,
	})

	return nil
}

// GenerateReceipt prices a booking and builds the printable document.
func (s *BookingService) GenerateReceipt(ctx context.Context, id string) (*domain.Receipt, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get booking for receipt", map[string]interface{}{
			"error":      err.Error(),
			"booking_id": id,
		})
		return nil, err
	}

	receipt, err := domain.NewReceipt(booking)
	if err != nil {
		s.logger.Error("Failed to price receipt", map[string]interface{}{
			"error":      err.Error(),
			"booking_id": id,
		})
		return nil, err
	}

	s.logger.Info("Receipt generated", map[string]interface{}{
		"booking_id": id,
		"total":      receipt.Prices.Total,
	})

	return receipt, nil
}
