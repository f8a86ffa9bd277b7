package validation

import (
	"strings"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api/request"
)

// ValidateUpsertRate validates a mid rate upsert request.
//
// Required fields:
//   - from, to: Three-letter currency codes (case-insensitive), different from each other
//   - mid_rate: Must be a positive number
func ValidateUpsertRate(req request.UpsertRateRequest) error {
	errors := make(map[string]string)

	from := strings.ToUpper(strings.TrimSpace(req.From))
	to := strings.ToUpper(strings.TrimSpace(req.To))

	if !isCurrencyCode(from) {
		errors["from"] = "from must be a three-letter currency code"
	}
	if !isCurrencyCode(to) {
		errors["to"] = "to must be a three-letter currency code"
	}
	if from != "" && from == to {
		errors["to"] = "to must differ from from; self-pairs are always 1"
	}

	if !req.MidRate.Valid {
		errors["mid_rate"] = "mid_rate must be a number"
	} else if !req.MidRate.Decimal.IsPositive() {
		errors["mid_rate"] = "mid_rate must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
