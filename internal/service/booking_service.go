package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ndewijer/Booking-Operations-Backend/internal/analytics"
	"github.com/ndewijer/Booking-Operations-Backend/internal/api/request"
	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
	"github.com/ndewijer/Booking-Operations-Backend/internal/repository"
)

// BookingService handles booking listing and creation.
type BookingService struct {
	bookingRepo      *repository.BookingRepository
	analyticsService *AnalyticsService
}

// NewBookingService creates a new BookingService.
// analyticsService may be nil; when set, its snapshot is invalidated after every new booking.
func NewBookingService(
	bookingRepo *repository.BookingRepository,
	analyticsService *AnalyticsService,
) *BookingService {
	return &BookingService{
		bookingRepo:      bookingRepo,
		analyticsService: analyticsService,
	}
}

// ListBookings returns every booking matching the filter, ordered by booking date.
// Uses the same matching rules as the analytics aggregation.
func (s *BookingService) ListBookings(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveBookings, err)
	}

	if filter.IsEmpty() {
		return bookings, nil
	}

	matched := []model.Booking{}
	for _, b := range bookings {
		if analytics.Matches(b, filter) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// CreateBooking stores a new booking built from a validated request.
func (s *BookingService) CreateBooking(ctx context.Context, req request.CreateBookingRequest) (model.Booking, error) {
	booking := model.Booking{
		BookingDate:   req.BookingDate,
		Sport:         req.Sport,
		EventName:     req.EventName,
		TotalSoldGBP:  req.TotalSoldGBP,
		TotalCost:     req.TotalCost,
		ProfitAndLoss: req.ProfitAndLoss,
		BookerName:    req.BookerName,
		BookerEmail:   req.BookerEmail,
	}

	created, err := s.bookingRepo.InsertBooking(ctx, booking)
	if err != nil {
		return model.Booking{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToCreateBooking, err)
	}

	if s.analyticsService != nil {
		s.analyticsService.InvalidateSnapshot()
	}

	log.Info().Str("booking_id", created.ID).Str("booking_date", created.BookingDate).Msg("booking created")

	return created, nil
}
