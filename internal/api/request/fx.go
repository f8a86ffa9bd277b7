package request

import (
	"encoding/json"
	"strings"

	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
)

// UpsertRateRequest represents the request body for creating or replacing a directed mid rate.
type UpsertRateRequest struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	MidRate model.NullAmount `json:"mid_rate"`
}

// UpdateSpreadRequest represents the request body for updating the spread.
// Value is kept raw so that malformed input reaches spread validation instead of
// failing JSON decoding.
type UpdateSpreadRequest struct {
	Value json.RawMessage `json:"value"`
}

// RawValue returns the submitted value as text.
// JSON strings are unquoted, numbers are returned as written, null or a missing value yields "".
func (r UpdateSpreadRequest) RawValue() string {
	raw := strings.TrimSpace(string(r.Value))
	if raw == "" || raw == "null" {
		return ""
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(r.Value, &s); err != nil {
			return raw
		}
		return s
	}
	return raw
}
