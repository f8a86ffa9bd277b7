package request

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
)

// ParseBookingFilter extracts booking filters from query parameters.
//
// A parameter that is absent does not filter. A parameter that is present but
// empty, like ?sport=, filters on the empty string.
//
// Validation rules:
//   - date_from/date_to: Must be YYYY-MM-DD or RFC3339; only the calendar day is used
//   - date_from must not be after date_to
func ParseBookingFilter(q url.Values) (model.BookingFilter, error) {
	var filter model.BookingFilter

	if q.Has("sport") {
		sport := q.Get("sport")
		filter.Sport = &sport
	}

	if q.Has("event") {
		event := q.Get("event")
		filter.Event = &event
	}

	if v := strings.TrimSpace(q.Get("date_from")); v != "" {
		from, err := parseFilterDate(v)
		if err != nil {
			return model.BookingFilter{}, fmt.Errorf("invalid date_from format: %w", err)
		}
		filter.DateFrom = &from
	}

	if v := strings.TrimSpace(q.Get("date_to")); v != "" {
		to, err := parseFilterDate(v)
		if err != nil {
			return model.BookingFilter{}, fmt.Errorf("invalid date_to format: %w", err)
		}
		filter.DateTo = &to
	}

	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return model.BookingFilter{}, fmt.Errorf("%w: date_from is after date_to", apperrors.ErrInvalidDateRange)
	}

	return filter, nil
}

// ParseReferenceDate parses the optional reference_date parameter.
// An empty value returns the zero time, meaning "now".
func ParseReferenceDate(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, nil
	}
	t, err := parseFilterDate(str)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference_date format: %w", err)
	}
	return t, nil
}

// parseFilterDate accepts YYYY-MM-DD and RFC3339 and keeps the calendar day as written.
func parseFilterDate(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z07:00"} {
		if t, err := time.Parse(layout, str); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q as a date or datetime", apperrors.ErrInvalidDate, str)
}
