package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/repository"
	"github.com/ndewijer/Booking-Operations-Backend/internal/testutil"
)

func TestFxRepository_Rates(t *testing.T) {
	t.Run("non-numeric mid rate reads as invalid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFxRepository(db)

		testutil.NewRate("GBP", "USD").WithMid("1.27").Build(t, db)
		testutil.NewRate("GBP", "EUR").WithMid("unknown").Build(t, db)

		rates, err := repo.GetRates(context.Background())
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(rates) != 2 {
			t.Fatalf("Expected 2 rates, got %d", len(rates))
		}
		// Ordered by from, then to: GBP/EUR before GBP/USD.
		if rates[0].MidRate.Valid {
			t.Errorf("Expected GBP/EUR mid to be invalid, got %s", rates[0].MidRate)
		}
		if rates[1].MidRate.String() != "1.27" {
			t.Errorf("Expected GBP/USD mid 1.27, got %s", rates[1].MidRate)
		}
	})

	t.Run("upsert replaces the existing pair and keeps its ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFxRepository(db)
		ctx := context.Background()

		first, err := repo.UpsertRate(ctx, "GBP", "USD", decimal.RequireFromString("1.27"))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		second, err := repo.UpsertRate(ctx, "GBP", "USD", decimal.RequireFromString("1.30"))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if second.ID != first.ID {
			t.Errorf("Expected ID %s to be kept, got %s", first.ID, second.ID)
		}
		testutil.AssertRowCount(t, db, "fx_rate", 1)

		rates, err := repo.GetRates(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !rates[0].MidRate.Decimal.Equal(decimal.RequireFromString("1.3")) {
			t.Errorf("Expected mid 1.3, got %s", rates[0].MidRate)
		}
	})
}

func TestFxRepository_Spread(t *testing.T) {
	t.Run("returns the seeded spread", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFxRepository(db)

		spread, err := repo.GetSpread(context.Background())
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if spread.ID != testutil.SeedSpreadID {
			t.Errorf("Expected seeded spread ID, got %s", spread.ID)
		}
		if !spread.Value.Valid || !spread.Value.Decimal.IsZero() {
			t.Errorf("Expected spread 0, got %s", spread.Value)
		}
	})

	t.Run("reports missing record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CleanDatabase(t, db)
		repo := repository.NewFxRepository(db)

		if _, err := repo.GetSpread(context.Background()); !errors.Is(err, apperrors.ErrNoSpreadRecord) {
			t.Errorf("Expected ErrNoSpreadRecord, got %v", err)
		}
	})

	t.Run("update changes only the addressed record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFxRepository(db)
		ctx := context.Background()

		if err := repo.UpdateSpread(ctx, testutil.SeedSpreadID, decimal.RequireFromString("0.015")); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		spread, err := repo.GetSpreadByID(ctx, testutil.SeedSpreadID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if spread.Value.String() != "0.015" {
			t.Errorf("Expected spread 0.015, got %s", spread.Value)
		}

		err = repo.UpdateSpread(ctx, testutil.MakeID(), decimal.RequireFromString("0.02"))
		if !errors.Is(err, apperrors.ErrNoSpreadRecord) {
			t.Errorf("Expected ErrNoSpreadRecord for unknown ID, got %v", err)
		}
	})

	t.Run("transaction rollback discards the update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFxRepository(db)
		ctx := context.Background()

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("Failed to begin transaction: %v", err)
		}
		if err := repo.WithTx(tx).UpdateSpread(ctx, testutil.SeedSpreadID, decimal.RequireFromString("0.5")); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if err := tx.Rollback(); err != nil {
			t.Fatalf("Failed to roll back: %v", err)
		}

		spread, err := repo.GetSpreadByID(ctx, testutil.SeedSpreadID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !spread.Value.Decimal.IsZero() {
			t.Errorf("Expected spread to stay 0, got %s", spread.Value)
		}
	})
}
