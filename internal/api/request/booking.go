package request

import "github.com/ndewijer/Booking-Operations-Backend/internal/model"

// CreateBookingRequest represents the request body for recording a booking.
// Monetary fields accept numbers or numeric strings; anything else is stored as 0.
type CreateBookingRequest struct {
	BookingDate   string       `json:"booking_date"`
	Sport         *string      `json:"sport"`
	EventName     *string      `json:"event_name"`
	TotalSoldGBP  model.Amount `json:"total_sold_gbp"`
	TotalCost     model.Amount `json:"total_cost"`
	ProfitAndLoss model.Amount `json:"profit_and_loss"`
	BookerName    string       `json:"booker_name,omitempty"`
	BookerEmail   string       `json:"booker_email,omitempty"`
}
