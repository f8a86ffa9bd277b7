package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api/request"
	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/fx"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
	"github.com/ndewijer/Booking-Operations-Backend/internal/repository"
)

// FxService handles mid rates, the spread and the derived rate matrices.
type FxService struct {
	db     *sql.DB
	fxRepo *repository.FxRepository
}

// NewFxService creates a new FxService with the provided database connection and repository.
func NewFxService(db *sql.DB, fxRepo *repository.FxRepository) *FxService {
	return &FxService{
		db:     db,
		fxRepo: fxRepo,
	}
}

// loadMatrixInputs reads the mid rates and the current spread concurrently.
// A missing spread record yields an invalid spread, which the engine treats as 0.
func (s *FxService) loadMatrixInputs(ctx context.Context) ([]model.CurrencyRate, model.NullAmount, error) {
	var (
		rates  []model.CurrencyRate
		spread model.NullAmount
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rates, err = s.fxRepo.GetRates(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveRates, err)
		}
		return nil
	})

	g.Go(func() error {
		stored, err := s.fxRepo.GetSpread(gctx)
		if errors.Is(err, apperrors.ErrNoSpreadRecord) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveSpread, err)
		}
		spread = stored.Value
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, model.NullAmount{}, err
	}

	return rates, spread, nil
}

// GetMatrix builds the rate matrix for one quote side.
func (s *FxService) GetMatrix(ctx context.Context, side model.QuoteSide) (model.RateMatrix, error) {
	rates, spread, err := s.loadMatrixInputs(ctx)
	if err != nil {
		return model.RateMatrix{}, err
	}
	return fx.BuildMatrix(rates, spread, side), nil
}

// GetMatrices builds the bid, mid and ask matrices from one read of rates and spread.
func (s *FxService) GetMatrices(ctx context.Context) (model.RateMatrices, error) {
	rates, spread, err := s.loadMatrixInputs(ctx)
	if err != nil {
		return model.RateMatrices{}, err
	}
	return fx.BuildMatrices(rates, spread), nil
}

// GetRates returns every stored directed mid rate.
func (s *FxService) GetRates(ctx context.Context) ([]model.CurrencyRate, error) {
	rates, err := s.fxRepo.GetRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveRates, err)
	}
	return rates, nil
}

// UpsertRate creates or replaces the mid rate of a directed pair from a validated request.
// Currency codes are stored upper-case.
func (s *FxService) UpsertRate(ctx context.Context, req request.UpsertRateRequest) (model.CurrencyRate, error) {
	from := strings.ToUpper(strings.TrimSpace(req.From))
	to := strings.ToUpper(strings.TrimSpace(req.To))

	rate, err := s.fxRepo.UpsertRate(ctx, from, to, req.MidRate.Decimal)
	if err != nil {
		return model.CurrencyRate{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToUpdateRate, err)
	}

	log.Info().Str("from", from).Str("to", to).Str("mid_rate", rate.MidRate.String()).Msg("fx rate updated")

	return rate, nil
}

// GetSpread returns the current spread record.
// Returns apperrors.ErrNoSpreadRecord when none exists.
func (s *FxService) GetSpread(ctx context.Context) (model.Spread, error) {
	spread, err := s.fxRepo.GetSpread(ctx)
	if errors.Is(err, apperrors.ErrNoSpreadRecord) {
		return model.Spread{}, err
	}
	if err != nil {
		return model.Spread{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveSpread, err)
	}
	return spread, nil
}

// UpdateSpread replaces the value of the spread record identified by spreadID.
//
// The raw value is validated before the record is looked up, so a malformed value
// reports apperrors.ErrInvalidSpreadValue even for an unknown ID. An unknown ID
// reports apperrors.ErrNoSpreadRecord. On any error the stored spread is unchanged.
func (s *FxService) UpdateSpread(ctx context.Context, spreadID, raw string) (model.Spread, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Spread{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToUpdateSpread, err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after Commit is a no-op

	repo := s.fxRepo.WithTx(tx)

	var current *model.Spread
	stored, err := repo.GetSpreadByID(ctx, spreadID)
	switch {
	case err == nil:
		current = &stored
	case errors.Is(err, apperrors.ErrNoSpreadRecord):
		current = nil
	default:
		return model.Spread{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveSpread, err)
	}

	value, err := fx.ApplySpreadUpdate(current, raw)
	if err != nil {
		return model.Spread{}, err
	}

	if err := repo.UpdateSpread(ctx, current.ID, value); err != nil {
		if errors.Is(err, apperrors.ErrNoSpreadRecord) {
			return model.Spread{}, err
		}
		return model.Spread{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToUpdateSpread, err)
	}

	updated, err := repo.GetSpreadByID(ctx, current.ID)
	if err != nil {
		return model.Spread{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveSpread, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Spread{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToUpdateSpread, err)
	}

	log.Info().
		Str("spread_id", updated.ID).
		Str("previous", stored.Value.String()).
		Str("value", updated.Value.String()).
		Msg("fx spread updated")

	return updated, nil
}
