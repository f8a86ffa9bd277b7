package testutil

import (
	"database/sql"
	"testing"

	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
)

// BookingBuilder provides a fluent interface for creating test bookings.
// Values are written to the table as given, so dirty rows (bad dates,
// non-numeric amounts, missing sport) can be created on purpose.
//
// Example usage:
//
//	// Simple creation with defaults
//	booking := testutil.NewBooking().Build(t, db)
//
//	// Customized booking
//	booking := testutil.NewBooking().
//	    WithDate("2024-03-05").
//	    WithSport("Football").
//	    WithAmounts("100", "60", "40").
//	    Build(t, db)
type BookingBuilder struct {
	ID            string
	BookingDate   string
	Sport         *string
	EventName     *string
	TotalSoldGBP  string
	TotalCost     string
	ProfitAndLoss string
	BookerName    string
	BookerEmail   string
}

// NewBooking creates a BookingBuilder with sensible defaults.
func NewBooking() *BookingBuilder {
	sport := "Football"
	event := MakeEventName("Cup Final")
	return &BookingBuilder{
		ID:            MakeID(),
		BookingDate:   "2024-03-05",
		Sport:         &sport,
		EventName:     &event,
		TotalSoldGBP:  "100",
		TotalCost:     "60",
		ProfitAndLoss: "40",
		BookerName:    "Test Booker",
		BookerEmail:   "booker@example.com",
	}
}

// WithID sets a custom ID.
func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

// WithDate sets the booking date text.
func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.BookingDate = date
	return b
}

// WithSport sets the sport.
func (b *BookingBuilder) WithSport(sport string) *BookingBuilder {
	b.Sport = &sport
	return b
}

// WithoutSport stores NULL as the sport.
func (b *BookingBuilder) WithoutSport() *BookingBuilder {
	b.Sport = nil
	return b
}

// WithEvent sets the event name.
func (b *BookingBuilder) WithEvent(event string) *BookingBuilder {
	b.EventName = &event
	return b
}

// WithAmounts sets total sold, total cost and profit and loss as raw text.
func (b *BookingBuilder) WithAmounts(sold, cost, pnl string) *BookingBuilder {
	b.TotalSoldGBP = sold
	b.TotalCost = cost
	b.ProfitAndLoss = pnl
	return b
}

// Build inserts the booking and returns the corresponding model.
func (b *BookingBuilder) Build(t *testing.T, db *sql.DB) model.Booking {
	t.Helper()

	query := `
		INSERT INTO booking (id, booking_date, sport, event_name, total_sold_gbp, total_cost,
		profit_and_loss, booker_name, booker_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.BookingDate, nullable(b.Sport), nullable(b.EventName),
		b.TotalSoldGBP, b.TotalCost, b.ProfitAndLoss, b.BookerName, b.BookerEmail,
	)
	if err != nil {
		t.Fatalf("Failed to create test booking: %v", err)
	}

	return model.Booking{
		ID:            b.ID,
		BookingDate:   b.BookingDate,
		Sport:         b.Sport,
		EventName:     b.EventName,
		TotalSoldGBP:  model.AmountFromString(b.TotalSoldGBP),
		TotalCost:     model.AmountFromString(b.TotalCost),
		ProfitAndLoss: model.AmountFromString(b.ProfitAndLoss),
		BookerName:    b.BookerName,
		BookerEmail:   b.BookerEmail,
	}
}

// RateBuilder provides a fluent interface for creating directed mid rates.
//
// Example usage:
//
//	testutil.NewRate("GBP", "USD").WithMid("1.27").Build(t, db)
type RateBuilder struct {
	ID      string
	From    string
	To      string
	MidRate string
}

// NewRate creates a RateBuilder for the given pair with a mid rate of 1.
func NewRate(from, to string) *RateBuilder {
	return &RateBuilder{
		ID:      MakeID(),
		From:    from,
		To:      to,
		MidRate: "1",
	}
}

// WithMid sets the mid rate as raw text.
func (b *RateBuilder) WithMid(mid string) *RateBuilder {
	b.MidRate = mid
	return b
}

// Build inserts the rate and returns the corresponding model.
func (b *RateBuilder) Build(t *testing.T, db *sql.DB) model.CurrencyRate {
	t.Helper()

	query := `INSERT INTO fx_rate (id, from_currency, to_currency, mid_rate) VALUES (?, ?, ?, ?)`

	if _, err := db.Exec(query, b.ID, b.From, b.To, b.MidRate); err != nil {
		t.Fatalf("Failed to create test rate: %v", err)
	}

	return model.CurrencyRate{
		ID:      b.ID,
		From:    b.From,
		To:      b.To,
		MidRate: model.ParseNullAmount(b.MidRate),
	}
}

// SpreadBuilder provides a fluent interface for creating spread records.
// Note that the migrations already seed one record with SeedSpreadID.
//
// Example usage:
//
//	spread := testutil.NewSpread().WithValue("0.01").Build(t, db)
type SpreadBuilder struct {
	ID    string
	Value string
}

// NewSpread creates a SpreadBuilder with a value of 0.
func NewSpread() *SpreadBuilder {
	return &SpreadBuilder{
		ID:    MakeID(),
		Value: "0",
	}
}

// WithID sets a custom ID.
func (b *SpreadBuilder) WithID(id string) *SpreadBuilder {
	b.ID = id
	return b
}

// WithValue sets the spread value as raw text.
func (b *SpreadBuilder) WithValue(value string) *SpreadBuilder {
	b.Value = value
	return b
}

// Build inserts the spread and returns the corresponding model.
func (b *SpreadBuilder) Build(t *testing.T, db *sql.DB) model.Spread {
	t.Helper()

	query := `INSERT INTO fx_spread (id, value) VALUES (?, ?)`

	if _, err := db.Exec(query, b.ID, b.Value); err != nil {
		t.Fatalf("Failed to create test spread: %v", err)
	}

	return model.Spread{
		ID:    b.ID,
		Value: model.ParseNullAmount(b.Value),
	}
}

// SetSpreadValue overwrites the value of an existing spread record.
func SetSpreadValue(t *testing.T, db *sql.DB, id, value string) {
	t.Helper()

	if _, err := db.Exec(`UPDATE fx_spread SET value = ? WHERE id = ?`, value, id); err != nil {
		t.Fatalf("Failed to set spread value: %v", err)
	}
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
