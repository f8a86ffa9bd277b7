package fx

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
)

// ParseSpread parses a user-supplied spread. The value must be a non-negative number.
func ParseSpread(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: value is empty", apperrors.ErrInvalidSpreadValue)
	}
	value, ok := model.ParseDecimal(raw)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number in range", apperrors.ErrInvalidSpreadValue, raw)
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s is negative", apperrors.ErrInvalidSpreadValue, value)
	}
	return value, nil
}

// ApplySpreadUpdate validates a spread update against the currently stored record.
//
// The value is checked first: a malformed value fails with ErrInvalidSpreadValue
// whether or not the record exists. A nil record or one without an ID fails with
// ErrNoSpreadRecord. On success the accepted value is returned for the caller to
// persist; current is never modified and mid rates are never touched.
func ApplySpreadUpdate(current *model.Spread, raw string) (decimal.Decimal, error) {
	value, err := ParseSpread(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if current == nil || strings.TrimSpace(current.ID) == "" {
		return decimal.Zero, apperrors.ErrNoSpreadRecord
	}
	return value, nil
}
