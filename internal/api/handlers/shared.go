package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api/response"
	"github.com/ndewijer/Booking-Operations-Backend/internal/validation"
)

// parseJSON decodes the request body into a value of type T.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	if r.Body == nil {
		return v, fmt.Errorf("request body is empty")
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("failed to decode request body: %w", err)
	}
	return v, nil
}

// respondValidationError writes a 400 carrying the per-field messages when err is a
// *validation.Error, and the plain error text otherwise.
func respondValidationError(w http.ResponseWriter, err error) {
	var valErr *validation.Error
	if errors.As(err, &valErr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", valErr.Fields)
		return
	}
	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
}

// money renders a decimal amount as a JSON number rounded to 2 places.
func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// percent rounds a percentage to 2 places.
func percent(f float64) float64 {
	return math.Round(f*100) / 100
}
