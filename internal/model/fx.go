package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is a directed mid rate from one currency to another.
// No inverse is implied: GBP->USD says nothing about USD->GBP.
type CurrencyRate struct {
	ID        string     `json:"id"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	MidRate   NullAmount `json:"mid_rate"`
	UpdatedAt time.Time  `json:"updated_at,omitzero"`
}

// Spread is the single adjustment applied to every mid rate to derive bid and ask quotes.
type Spread struct {
	ID        string     `json:"id"`
	Value     NullAmount `json:"value"`
	UpdatedAt time.Time  `json:"updated_at,omitzero"`
}

// QuoteSide selects which matrix is derived from the mid rates.
type QuoteSide string

const (
	QuoteBid QuoteSide = "bid"
	QuoteMid QuoteSide = "mid"
	QuoteAsk QuoteSide = "ask"
)

// ValidQuoteSides lists the accepted quote sides.
var ValidQuoteSides = map[QuoteSide]bool{
	QuoteBid: true,
	QuoteMid: true,
	QuoteAsk: true,
}

// MatrixRowLabel is the key carrying the row currency in a rendered matrix row.
const MatrixRowLabel = "from/to"

// MatrixCell is one populated cell of a rate matrix. Self pairs render as the
// integer 1, everything else as a string with three decimals.
type MatrixCell struct {
	Value    decimal.Decimal
	SelfPair bool
}

// String returns the display form of the cell.
func (c MatrixCell) String() string {
	if c.SelfPair {
		return "1"
	}
	return c.Value.StringFixed(3)
}

// MarshalJSON renders self pairs as the number 1 and other cells as strings.
func (c MatrixCell) MarshalJSON() ([]byte, error) {
	if c.SelfPair {
		return []byte("1"), nil
	}
	return json.Marshal(c.Value.StringFixed(3))
}

// MatrixRow is the row for one "from" currency. Cells has no entry for pairs
// without a rate.
type MatrixRow struct {
	Currency string
	Cells    map[string]MatrixCell
}

// MarshalJSON flattens the row into an object keyed by currency code plus the row label.
func (r MatrixRow) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Cells)+1)
	for code, cell := range r.Cells {
		out[code] = cell
	}
	out[MatrixRowLabel] = r.Currency
	return json.Marshal(out)
}

// RateMatrix is a square quote grid indexed by the sorted currency universe.
type RateMatrix struct {
	Side       QuoteSide   `json:"side"`
	Currencies []string    `json:"currencies"`
	Rows       []MatrixRow `json:"rows"`
}

// Cell looks up the (from, to) cell. ok is false for absent pairs and unknown codes.
func (m RateMatrix) Cell(from, to string) (MatrixCell, bool) {
	for _, row := range m.Rows {
		if row.Currency == from {
			cell, ok := row.Cells[to]
			return cell, ok
		}
	}
	return MatrixCell{}, false
}

// RateMatrices bundles the three quote sides built from one rate snapshot.
type RateMatrices struct {
	Bid RateMatrix `json:"bid"`
	Mid RateMatrix `json:"mid"`
	Ask RateMatrix `json:"ask"`
}
