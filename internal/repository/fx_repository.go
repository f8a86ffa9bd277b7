package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
)

// FxRepository provides data access methods for the fx_rate and fx_spread tables.
type FxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewFxRepository creates a new FxRepository with the provided database connection.
func NewFxRepository(db *sql.DB) *FxRepository {
	return &FxRepository{db: db}
}

// WithTx returns a copy of the repository that runs its statements inside tx.
func (r *FxRepository) WithTx(tx *sql.Tx) *FxRepository {
	return &FxRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *FxRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetRates retrieves every directed mid rate ordered by pair.
// Mid rates that are not numeric are returned with an invalid MidRate.
func (r *FxRepository) GetRates(ctx context.Context) ([]model.CurrencyRate, error) {
	query := `
		SELECT id, from_currency, to_currency, mid_rate, updated_at
		FROM fx_rate
		ORDER BY from_currency ASC, to_currency ASC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fx_rate table: %w", err)
	}
	defer rows.Close()

	rates := []model.CurrencyRate{}

	for rows.Next() {
		var rate model.CurrencyRate
		var midRate, updatedAt sql.NullString

		if err := rows.Scan(&rate.ID, &rate.From, &rate.To, &midRate, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fx_rate table results: %w", err)
		}

		rate.MidRate = model.ParseNullAmount(midRate.String)
		rate.UpdatedAt = parseOptionalTime(updatedAt)
		rates = append(rates, rate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fx_rate table: %w", err)
	}

	return rates, nil
}

// UpsertRate inserts the directed pair or replaces its mid rate when the pair already exists.
// The existing row keeps its ID.
func (r *FxRepository) UpsertRate(ctx context.Context, from, to string, midRate decimal.Decimal) (model.CurrencyRate, error) {
	query := `
		INSERT INTO fx_rate (id, from_currency, to_currency, mid_rate)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (from_currency, to_currency)
		DO UPDATE SET mid_rate = excluded.mid_rate, updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at
	`

	rate := model.CurrencyRate{
		From:    from,
		To:      to,
		MidRate: model.NewNullAmount(midRate),
	}
	var updatedAt sql.NullString

	err := r.getQuerier().QueryRowContext(ctx, query, uuid.New().String(), from, to, midRate.String()).
		Scan(&rate.ID, &updatedAt)
	if err != nil {
		return model.CurrencyRate{}, fmt.Errorf("failed to upsert fx_rate: %w", err)
	}
	rate.UpdatedAt = parseOptionalTime(updatedAt)

	return rate, nil
}

// GetSpread retrieves the most recently updated spread record.
// Returns apperrors.ErrNoSpreadRecord when the table is empty.
func (r *FxRepository) GetSpread(ctx context.Context) (model.Spread, error) {
	query := `SELECT id, value, updated_at FROM fx_spread ORDER BY updated_at DESC, id ASC LIMIT 1`
	return r.scanSpread(r.getQuerier().QueryRowContext(ctx, query))
}

// GetSpreadByID retrieves the spread record with the given ID.
// Returns apperrors.ErrNoSpreadRecord if no row matches.
func (r *FxRepository) GetSpreadByID(ctx context.Context, spreadID string) (model.Spread, error) {
	query := `SELECT id, value, updated_at FROM fx_spread WHERE id = ?`
	return r.scanSpread(r.getQuerier().QueryRowContext(ctx, query, spreadID))
}

func (r *FxRepository) scanSpread(row *sql.Row) (model.Spread, error) {
	var s model.Spread
	var value, updatedAt sql.NullString

	err := row.Scan(&s.ID, &value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Spread{}, apperrors.ErrNoSpreadRecord
	}
	if err != nil {
		return model.Spread{}, fmt.Errorf("failed to get spread: %w", err)
	}

	s.Value = model.ParseNullAmount(value.String)
	s.UpdatedAt = parseOptionalTime(updatedAt)
	return s, nil
}

// UpdateSpread stores a new spread value. Mid rates are not touched.
// Returns apperrors.ErrNoSpreadRecord if no row matches.
func (r *FxRepository) UpdateSpread(ctx context.Context, spreadID string, value decimal.Decimal) error {
	query := `UPDATE fx_spread SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, value.String(), spreadID)
	if err != nil {
		return fmt.Errorf("failed to update spread: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrNoSpreadRecord
	}

	return nil
}
