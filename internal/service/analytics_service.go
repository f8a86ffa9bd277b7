package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ndewijer/Booking-Operations-Backend/internal/analytics"
	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
	"github.com/ndewijer/Booking-Operations-Backend/internal/repository"
)

// AnalyticsService handles booking aggregation and the cached unfiltered snapshot.
type AnalyticsService struct {
	bookingRepo *repository.BookingRepository

	mu         sync.RWMutex
	snapshot   *model.BookingAnalytics
	snapshotAt time.Time

	now func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService with the provided repository dependencies.
func NewAnalyticsService(bookingRepo *repository.BookingRepository) *AnalyticsService {
	return &AnalyticsService{
		bookingRepo: bookingRepo,
		now:         time.Now,
	}
}

// GetBookingAnalytics aggregates bookings into monthly buckets, a summary and period metrics.
//
// Unfiltered requests without a reference date are served from the snapshot when
// one exists for the current month. Everything else is computed from a fresh
// single-query read of the booking table.
//
// Parameters:
//   - filter: Conjunctive booking filter; the zero value matches everything
//   - reference: Date the report is anchored on; the zero time means now
func (s *AnalyticsService) GetBookingAnalytics(
	ctx context.Context,
	filter model.BookingFilter,
	reference time.Time,
) (model.BookingAnalytics, error) {
	if filter.IsEmpty() && reference.IsZero() {
		if snap, ok := s.Snapshot(); ok {
			return snap, nil
		}
	}

	if reference.IsZero() {
		reference = s.now()
	}

	bookings, err := s.bookingRepo.GetBookings(ctx)
	if err != nil {
		return model.BookingAnalytics{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToAggregateBookings, err)
	}

	return analytics.Aggregate(bookings, filter, reference), nil
}

// RefreshSnapshot recomputes the unfiltered aggregation for the current date and
// replaces the cached snapshot.
func (s *AnalyticsService) RefreshSnapshot(ctx context.Context) error {
	now := s.now()

	bookings, err := s.bookingRepo.GetBookings(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToAggregateBookings, err)
	}

	result := analytics.Aggregate(bookings, model.BookingFilter{}, now)

	s.mu.Lock()
	s.snapshot = &result
	s.snapshotAt = now
	s.mu.Unlock()

	log.Debug().
		Int("bookings", len(bookings)).
		Int("year", result.Year).
		Int("month", result.Month).
		Msg("refreshed booking analytics snapshot")

	return nil
}

// Snapshot returns the cached unfiltered aggregation.
// It reports false when no snapshot exists or the snapshot was taken in an earlier month.
func (s *AnalyticsService) Snapshot() (model.BookingAnalytics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return model.BookingAnalytics{}, false
	}

	now := s.now()
	if s.snapshotAt.Year() != now.Year() || s.snapshotAt.Month() != now.Month() {
		return model.BookingAnalytics{}, false
	}

	return *s.snapshot, true
}

// InvalidateSnapshot drops the cached snapshot so the next unfiltered request recomputes.
func (s *AnalyticsService) InvalidateSnapshot() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
}
