package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
	"github.com/ndewijer/Booking-Operations-Backend/internal/repository"
	"github.com/ndewijer/Booking-Operations-Backend/internal/testutil"
)

func TestBookingRepository_GetBookings(t *testing.T) {
	t.Run("returns empty slice when no bookings exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBookingRepository(db)

		bookings, err := repo.GetBookings(context.Background())
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if bookings == nil {
			t.Error("Expected non-nil slice, got nil")
		}
		if len(bookings) != 0 {
			t.Errorf("Expected 0 bookings, got %d", len(bookings))
		}
	})

	t.Run("orders by booking date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBookingRepository(db)

		testutil.NewBooking().WithDate("2024-03-20").Build(t, db)
		testutil.NewBooking().WithDate("2024-01-02").Build(t, db)

		bookings, err := repo.GetBookings(context.Background())
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(bookings) != 2 {
			t.Fatalf("Expected 2 bookings, got %d", len(bookings))
		}
		if bookings[0].BookingDate != "2024-01-02" {
			t.Errorf("Expected first booking on 2024-01-02, got %s", bookings[0].BookingDate)
		}
	})

	t.Run("reads dirty rows without failing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBookingRepository(db)

		testutil.NewBooking().
			WithDate("sometime in March").
			WithoutSport().
			WithAmounts("n/a", "", "12.5").
			Build(t, db)

		bookings, err := repo.GetBookings(context.Background())
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		b := bookings[0]
		if b.Sport != nil {
			t.Errorf("Expected nil sport, got %q", *b.Sport)
		}
		if !b.TotalSoldGBP.IsZero() || !b.TotalCost.IsZero() {
			t.Errorf("Expected non-numeric amounts to read as 0, got %s and %s", b.TotalSoldGBP, b.TotalCost)
		}
		if b.ProfitAndLoss.String() != "12.5" {
			t.Errorf("Expected profit 12.5, got %s", b.ProfitAndLoss)
		}
		if _, ok := b.Date(); ok {
			t.Error("Expected unparsable booking date")
		}
	})
}

func TestBookingRepository_InsertBooking(t *testing.T) {
	t.Run("assigns an ID and round-trips values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewBookingRepository(db)

		sport := "Tennis"
		created, err := repo.InsertBooking(context.Background(), model.Booking{
			BookingDate:   "2024-06-30",
			Sport:         &sport,
			TotalSoldGBP:  model.AmountFromString("250.75"),
			TotalCost:     model.AmountFromString("200"),
			ProfitAndLoss: model.AmountFromString("50.75"),
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if created.ID == "" {
			t.Error("Expected generated ID")
		}
		if created.TotalSoldGBP.String() != "250.75" {
			t.Errorf("Expected total sold 250.75, got %s", created.TotalSoldGBP)
		}
		if created.EventName != nil {
			t.Errorf("Expected nil event name, got %q", *created.EventName)
		}
		if created.CreatedAt.IsZero() {
			t.Error("Expected created_at to be set by the database")
		}

		testutil.AssertRowCount(t, db, "booking", 1)
	})
}

func TestBookingRepository_GetBooking(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBookingRepository(db)

	_, err := repo.GetBooking(context.Background(), testutil.MakeID())
	if !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Errorf("Expected ErrBookingNotFound, got %v", err)
	}
}
