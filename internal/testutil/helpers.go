package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/ndewijer/Booking-Operations-Backend/internal/repository"
	"github.com/ndewijer/Booking-Operations-Backend/internal/service"
)

// NewTestAnalyticsService creates an AnalyticsService backed by db.
func NewTestAnalyticsService(t *testing.T, db *sql.DB) *service.AnalyticsService {
	t.Helper()

	return service.NewAnalyticsService(repository.NewBookingRepository(db))
}

// NewTestBookingService creates a BookingService without a snapshot to invalidate.
func NewTestBookingService(t *testing.T, db *sql.DB) *service.BookingService {
	t.Helper()

	return service.NewBookingService(repository.NewBookingRepository(db), nil)
}

// NewTestFxService creates an FxService backed by db.
func NewTestFxService(t *testing.T, db *sql.DB) *service.FxService {
	t.Helper()

	return service.NewFxService(db, repository.NewFxRepository(db))
}

// NewTestSystemService creates a SystemService backed by db.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a unique UUID for testing.
func MakeID() string {
	return uuid.New().String()
}

// MakeEventName generates a unique event name for testing.
//
// Example usage:
//
//	name := testutil.MakeEventName("Cup Final")
//	// Returns: "Cup Final 1A2B"
func MakeEventName(base string) string {
	if base == "" {
		base = "Test Event"
	}
	return base + " " + randomAlphanumeric(4)
}

func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		//nolint:gosec // G404: test data only
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
