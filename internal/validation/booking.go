package validation

import (
	"net/mail"
	"strings"
	"time"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api/request"
)

const (
	maxSportLength = 100
	maxEventLength = 200
)

// ValidateCreateBooking validates a booking creation request.
//
// Required fields:
//   - booking_date: Must be in YYYY-MM-DD format
//
// Optional fields (validated if provided):
//   - sport: At most 100 characters
//   - event_name: At most 200 characters
//   - booker_email: Must be a valid email address
//
// Monetary fields are not validated; non-numeric values are stored as 0.
func ValidateCreateBooking(req request.CreateBookingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.BookingDate) == "" {
		errors["booking_date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.BookingDate); err != nil {
		errors["booking_date"] = "invalid date format, expected YYYY-MM-DD"
	}

	if req.Sport != nil && len(*req.Sport) > maxSportLength {
		errors["sport"] = "sport must be 100 characters or less"
	}

	if req.EventName != nil && len(*req.EventName) > maxEventLength {
		errors["event_name"] = "event_name must be 200 characters or less"
	}

	if req.BookerEmail != "" {
		if _, err := mail.ParseAddress(req.BookerEmail); err != nil {
			errors["booker_email"] = "invalid email address"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
