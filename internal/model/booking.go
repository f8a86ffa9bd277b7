package model

import (
	"strings"
	"time"
)

// bookingDateLayouts are tried in order when parsing a booking date.
var bookingDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Booking represents a sold booking as stored by the booking system.
// Only the date, sport, event and the three monetary fields matter for analytics;
// booker details are carried for listing.
type Booking struct {
	ID            string    `json:"booking_id"`
	BookingDate   string    `json:"booking_date"`
	Sport         *string   `json:"sport"`
	EventName     *string   `json:"event_name"`
	TotalSoldGBP  Amount    `json:"total_sold_gbp"`
	TotalCost     Amount    `json:"total_cost"`
	ProfitAndLoss Amount    `json:"profit_and_loss"`
	BookerName    string    `json:"booker_name,omitempty"`
	BookerEmail   string    `json:"booker_email,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// Date parses BookingDate. The second return value is false when the stored
// value is not a valid calendar date.
func (b Booking) Date() (time.Time, bool) {
	return ParseBookingDate(b.BookingDate)
}

// ParseBookingDate parses a booking date string, reporting whether it was valid.
// Datetimes are reduced to the calendar day as written, ignoring the offset.
func ParseBookingDate(str string) (time.Time, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, false
	}
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// BookingFilter narrows a booking query. A nil field means "no filter"; a
// non-nil empty string is a real filter.
type BookingFilter struct {
	Sport    *string
	Event    *string
	DateFrom *time.Time
	DateTo   *time.Time
}

// IsEmpty reports whether no filter is set.
func (f BookingFilter) IsEmpty() bool {
	return f.Sport == nil && f.Event == nil && f.DateFrom == nil && f.DateTo == nil
}
