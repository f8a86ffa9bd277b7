// Package fx derives bid, mid and ask quote matrices from a table of directed
// mid rates and one shared spread.
//
// The matrices never synthesize rates: a missing GBP->USD entry stays missing
// even when USD->GBP is known.
package fx

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
)

// pair is a normalized directed currency pair.
type pair struct {
	from, to string
}

// normalizeCode trims and upper-cases a currency code.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// usableRates indexes the rates that carry a numeric mid rate and two codes.
// When a pair appears more than once the first usable entry wins.
func usableRates(rates []model.CurrencyRate) (map[pair]decimal.Decimal, []string) {
	mids := make(map[pair]decimal.Decimal, len(rates))
	seen := make(map[string]bool)
	var currencies []string

	for _, r := range rates {
		if !r.MidRate.Valid {
			continue
		}
		from, to := normalizeCode(r.From), normalizeCode(r.To)
		if from == "" || to == "" {
			continue
		}

		for _, code := range []string{from, to} {
			if !seen[code] {
				seen[code] = true
				currencies = append(currencies, code)
			}
		}

		p := pair{from: from, to: to}
		if _, exists := mids[p]; !exists {
			mids[p] = r.MidRate.Decimal
		}
	}

	sort.Strings(currencies)
	return mids, currencies
}

// Currencies returns the sorted, de-duplicated codes of every usable rate.
func Currencies(rates []model.CurrencyRate) []string {
	_, currencies := usableRates(rates)
	if currencies == nil {
		return []string{}
	}
	return currencies
}

// EffectiveSpread returns the spread used for bid/ask derivation.
// Malformed and negative spreads count as zero.
func EffectiveSpread(spread model.NullAmount) decimal.Decimal {
	if !spread.Valid || spread.Decimal.IsNegative() {
		return decimal.Zero
	}
	return spread.Decimal
}

// BuildMatrix builds the quote matrix for one side.
//
// Cells:
//   - a currency against itself is exactly 1 on every side
//   - a pair with a directed rate is mid, mid-spread (bid) or mid+spread (ask),
//     displayed with three decimals
//   - every other pair is absent
//
// BuildMatrix keeps no state between calls.
func BuildMatrix(rates []model.CurrencyRate, spread model.NullAmount, side model.QuoteSide) model.RateMatrix {
	mids, currencies := usableRates(rates)
	return buildMatrix(mids, currencies, EffectiveSpread(spread), side)
}

// BuildMatrices builds the bid, mid and ask matrices from one rate snapshot.
func BuildMatrices(rates []model.CurrencyRate, spread model.NullAmount) model.RateMatrices {
	mids, currencies := usableRates(rates)
	s := EffectiveSpread(spread)
	return model.RateMatrices{
		Bid: buildMatrix(mids, currencies, s, model.QuoteBid),
		Mid: buildMatrix(mids, currencies, s, model.QuoteMid),
		Ask: buildMatrix(mids, currencies, s, model.QuoteAsk),
	}
}

func buildMatrix(mids map[pair]decimal.Decimal, currencies []string, spread decimal.Decimal, side model.QuoteSide) model.RateMatrix {
	matrix := model.RateMatrix{
		Side:       side,
		Currencies: make([]string, len(currencies)),
		Rows:       make([]model.MatrixRow, 0, len(currencies)),
	}
	copy(matrix.Currencies, currencies)

	for _, from := range currencies {
		row := model.MatrixRow{
			Currency: from,
			Cells:    make(map[string]model.MatrixCell, len(currencies)),
		}
		for _, to := range currencies {
			if from == to {
				row.Cells[to] = model.MatrixCell{Value: decimal.NewFromInt(1), SelfPair: true}
				continue
			}
			mid, ok := mids[pair{from: from, to: to}]
			if !ok {
				continue
			}
			row.Cells[to] = model.MatrixCell{Value: quote(mid, spread, side).Round(3)}
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	return matrix
}

func quote(mid, spread decimal.Decimal, side model.QuoteSide) decimal.Decimal {
	switch side {
	case model.QuoteBid:
		return mid.Sub(spread)
	case model.QuoteAsk:
		return mid.Add(spread)
	default:
		return mid
	}
}

// ParseQuoteSide validates a quote side name. An empty string selects mid.
func ParseQuoteSide(s string) (model.QuoteSide, error) {
	if strings.TrimSpace(s) == "" {
		return model.QuoteMid, nil
	}
	side := model.QuoteSide(strings.ToLower(strings.TrimSpace(s)))
	if !model.ValidQuoteSides[side] {
		return "", apperrors.ErrInvalidQuoteSide
	}
	return side, nil
}
