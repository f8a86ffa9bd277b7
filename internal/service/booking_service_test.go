package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api/request"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
	"github.com/ndewijer/Booking-Operations-Backend/internal/repository"
	"github.com/ndewijer/Booking-Operations-Backend/internal/service"
	"github.com/ndewijer/Booking-Operations-Backend/internal/testutil"
)

func TestBookingService_ListBookings(t *testing.T) {
	t.Run("empty-string sport matches only bookings with an empty sport", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBookingService(t, db)

		testutil.NewBooking().WithSport("").Build(t, db)
		testutil.NewBooking().WithoutSport().Build(t, db)
		testutil.NewBooking().WithSport("Football").Build(t, db)

		bookings, err := svc.ListBookings(context.Background(), model.BookingFilter{Sport: strPtr("")})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(bookings) != 1 {
			t.Errorf("Expected 1 booking, got %d", len(bookings))
		}
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBookingService(t, db)

		testutil.NewBooking().WithDate("2024-02-29").Build(t, db)
		testutil.NewBooking().WithDate("2024-03-01").Build(t, db)
		testutil.NewBooking().WithDate("2024-03-31").Build(t, db)
		testutil.NewBooking().WithDate("2024-04-01").Build(t, db)

		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		bookings, err := svc.ListBookings(context.Background(), model.BookingFilter{DateFrom: &from, DateTo: &to})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(bookings) != 2 {
			t.Errorf("Expected 2 bookings, got %d", len(bookings))
		}
	})
}

func TestBookingService_CreateBooking(t *testing.T) {
	t.Run("stores the booking and invalidates the snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		analytics := testutil.NewTestAnalyticsService(t, db)
		svc := service.NewBookingService(repository.NewBookingRepository(db), analytics)
		ctx := context.Background()

		if err := analytics.RefreshSnapshot(ctx); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		created, err := svc.CreateBooking(ctx, request.CreateBookingRequest{
			BookingDate:   time.Now().Format("2006-01-02"),
			Sport:         strPtr("Cricket"),
			TotalSoldGBP:  model.AmountFromString("80"),
			TotalCost:     model.AmountFromString("30"),
			ProfitAndLoss: model.AmountFromString("50"),
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if created.ID == "" {
			t.Error("Expected generated ID")
		}
		if _, ok := analytics.Snapshot(); ok {
			t.Error("Expected snapshot to be invalidated")
		}
		testutil.AssertRowCount(t, db, "booking", 1)
	})
}
