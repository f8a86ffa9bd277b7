package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
)

// BookingRepository provides data access methods for the booking table.
// Monetary columns are stored as TEXT and read back leniently, so rows written by
// other systems with dirty values never fail a read.
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new BookingRepository with the provided database connection.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `
	id, booking_date, sport, event_name, total_sold_gbp, total_cost,
	profit_and_loss, booker_name, booker_email, created_at
`

// GetBookings retrieves every booking in a single query, ordered by booking date.
// The result is one consistent snapshot of the table.
// Returns an empty slice if there are no bookings.
func (r *BookingRepository) GetBookings(ctx context.Context) ([]model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM booking ORDER BY booking_date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query booking table: %w", err)
	}
	defer rows.Close()

	bookings := []model.Booking{}

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking table results: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking table: %w", err)
	}

	return bookings, nil
}

// GetBooking retrieves a single booking by ID.
// Returns apperrors.ErrBookingNotFound if no row matches.
func (r *BookingRepository) GetBooking(ctx context.Context, bookingID string) (model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM booking WHERE id = ?`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

// InsertBooking stores a booking. An empty ID is replaced by a new UUID.
func (r *BookingRepository) InsertBooking(ctx context.Context, b model.Booking) (model.Booking, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	query := `
		INSERT INTO booking (id, booking_date, sport, event_name, total_sold_gbp, total_cost,
		profit_and_loss, booker_name, booker_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.BookingDate,
		nullString(b.Sport),
		nullString(b.EventName),
		b.TotalSoldGBP.String(),
		b.TotalCost.String(),
		b.ProfitAndLoss.String(),
		b.BookerName,
		b.BookerEmail,
	)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return r.GetBooking(ctx, b.ID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var b model.Booking
	var sport, eventName, sold, cost, pnl, bookerName, bookerEmail, createdAt sql.NullString

	err := row.Scan(
		&b.ID,
		&b.BookingDate,
		&sport,
		&eventName,
		&sold,
		&cost,
		&pnl,
		&bookerName,
		&bookerEmail,
		&createdAt,
	)
	if err != nil {
		return model.Booking{}, err
	}

	b.Sport = stringPtr(sport)
	b.EventName = stringPtr(eventName)
	b.TotalSoldGBP = model.AmountFromString(sold.String)
	b.TotalCost = model.AmountFromString(cost.String)
	b.ProfitAndLoss = model.AmountFromString(pnl.String)
	b.BookerName = bookerName.String
	b.BookerEmail = bookerEmail.String
	b.CreatedAt = parseOptionalTime(createdAt)

	return b, nil
}
