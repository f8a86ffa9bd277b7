package validation

import (
	"errors"
	"testing"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api/request"
	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
)

func strPtr(s string) *string { return &s }

func TestValidateUUID(t *testing.T) {
	if err := ValidateUUID("5f0c2d7a-3b1e-4c8d-9a6f-2e4b7c9d1a30"); err != nil {
		t.Errorf("Expected valid UUID, got %v", err)
	}
	if err := ValidateUUID("not-a-uuid"); !errors.Is(err, apperrors.ErrInvalidUUID) {
		t.Errorf("Expected ErrInvalidUUID, got %v", err)
	}
}

func TestValidateCreateBooking(t *testing.T) {
	tests := []struct {
		name      string
		req       request.CreateBookingRequest
		wantField string
	}{
		{
			name: "valid booking",
			req: request.CreateBookingRequest{
				BookingDate: "2024-03-05",
				Sport:       strPtr("Football"),
				BookerEmail: "ops@example.com",
			},
		},
		{
			name:      "missing date",
			req:       request.CreateBookingRequest{},
			wantField: "booking_date",
		},
		{
			name:      "wrong date format",
			req:       request.CreateBookingRequest{BookingDate: "05/03/2024"},
			wantField: "booking_date",
		},
		{
			name:      "bad email",
			req:       request.CreateBookingRequest{BookingDate: "2024-03-05", BookerEmail: "nobody"},
			wantField: "booker_email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateBooking(tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}

			var valErr *Error
			if !errors.As(err, &valErr) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if _, ok := valErr.Fields[tt.wantField]; !ok {
				t.Errorf("Expected error on field '%s', got %v", tt.wantField, valErr.Fields)
			}
		})
	}
}

func TestValidateUpsertRate(t *testing.T) {
	tests := []struct {
		name      string
		req       request.UpsertRateRequest
		wantField string
	}{
		{
			name: "valid rate",
			req:  request.UpsertRateRequest{From: "gbp", To: "USD", MidRate: model.ParseNullAmount("1.27")},
		},
		{
			name:      "short code",
			req:       request.UpsertRateRequest{From: "GB", To: "USD", MidRate: model.ParseNullAmount("1.27")},
			wantField: "from",
		},
		{
			name:      "self pair",
			req:       request.UpsertRateRequest{From: "GBP", To: "gbp", MidRate: model.ParseNullAmount("1")},
			wantField: "to",
		},
		{
			name:      "non-numeric rate",
			req:       request.UpsertRateRequest{From: "GBP", To: "USD", MidRate: model.ParseNullAmount("abc")},
			wantField: "mid_rate",
		},
		{
			name:      "zero rate",
			req:       request.UpsertRateRequest{From: "GBP", To: "USD", MidRate: model.ParseNullAmount("0")},
			wantField: "mid_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpsertRate(tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}

			var valErr *Error
			if !errors.As(err, &valErr) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if _, ok := valErr.Fields[tt.wantField]; !ok {
				t.Errorf("Expected error on field '%s', got %v", tt.wantField, valErr.Fields)
			}
		})
	}
}
