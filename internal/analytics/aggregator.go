// Package analytics turns raw booking records into calendar-month buckets,
// an all-time summary and period-over-period metrics.
//
// Everything here is a pure function of its inputs. Dirty data is absorbed:
// unparsable dates are left out of the buckets and non-numeric amounts count
// as zero, so a single bad row never breaks a dashboard.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
)

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var hundred = decimal.NewFromInt(100)

// totals accumulates one set of counters during the scan.
type totals struct {
	count int
	sold  decimal.Decimal
	cost  decimal.Decimal
	pnl   decimal.Decimal
}

func newTotals() totals {
	return totals{sold: decimal.Zero, cost: decimal.Zero, pnl: decimal.Zero}
}

func (t *totals) add(b model.Booking) {
	t.count++
	t.sold = t.sold.Add(b.TotalSoldGBP.Decimal)
	t.cost = t.cost.Add(b.TotalCost.Decimal)
	t.pnl = t.pnl.Add(b.ProfitAndLoss.Decimal)
}

// NewMonthlyBuckets returns the twelve empty buckets for a pass, January first.
func NewMonthlyBuckets() []model.MonthlyBucket {
	buckets := make([]model.MonthlyBucket, 12)
	for i := range buckets {
		buckets[i] = model.MonthlyBucket{
			Month:         i + 1,
			MonthLabel:    monthLabels[i],
			TotalSold:     decimal.Zero,
			TotalCost:     decimal.Zero,
			ProfitAndLoss: decimal.Zero,
		}
	}
	return buckets
}

// Empty returns the zeroed result shape for the given reference date.
func Empty(reference time.Time) model.BookingAnalytics {
	if reference.IsZero() {
		reference = time.Now()
	}
	zero := newTotals()
	return model.BookingAnalytics{
		Year:    reference.Year(),
		Month:   int(reference.Month()),
		Monthly: NewMonthlyBuckets(),
		Summary: zero.summary(),
		Metrics: buildMetrics(zero, zero, zero),
	}
}

// Aggregate buckets the bookings that pass filter into the months of the
// reference year and compares the reference month against its predecessors.
//
// A zero reference means time.Now(). Record order never changes the result.
//
// Period rules:
//   - current: reference year and month
//   - prior month: reference year, month-1. January has no prior month, the
//     counters stay zero rather than reaching into December of the year before.
//   - prior year: reference year-1, same month
//
// The summary counts every filtered booking regardless of year, including
// bookings whose date cannot be parsed (those can only pass when no date bound is set).
func Aggregate(records []model.Booking, filter model.BookingFilter, reference time.Time) model.BookingAnalytics {
	result := Empty(reference)
	if len(records) == 0 {
		return result
	}

	year, month := result.Year, result.Month
	summary := newTotals()
	current, priorMonth, priorYear := newTotals(), newTotals(), newTotals()
	monthly := make([]totals, 12)
	for i := range monthly {
		monthly[i] = newTotals()
	}

	for _, b := range records {
		date, valid := b.Date()
		if !matches(b, date, valid, filter) {
			continue
		}

		summary.add(b)
		if !valid {
			continue
		}

		y, m := date.Year(), int(date.Month())
		if y == year {
			monthly[m-1].add(b)
		}

		switch {
		case y == year && m == month:
			current.add(b)
		case y == year && m == month-1:
			priorMonth.add(b)
		case y == year-1 && m == month:
			priorYear.add(b)
		}
	}

	for i, t := range monthly {
		result.Monthly[i].BookingCount = t.count
		result.Monthly[i].TotalSold = t.sold
		result.Monthly[i].TotalCost = t.cost
		result.Monthly[i].ProfitAndLoss = t.pnl
	}
	result.Summary = summary.summary()
	result.Metrics = buildMetrics(current, priorMonth, priorYear)

	return result
}

// Matches reports whether a booking passes every filter that is set.
func Matches(b model.Booking, filter model.BookingFilter) bool {
	date, valid := b.Date()
	return matches(b, date, valid, filter)
}

func matches(b model.Booking, date time.Time, valid bool, filter model.BookingFilter) bool {
	if !matchString(filter.Sport, b.Sport) {
		return false
	}
	if !matchString(filter.Event, b.EventName) {
		return false
	}
	if filter.DateFrom != nil && (!valid || date.Before(day(*filter.DateFrom))) {
		return false
	}
	if filter.DateTo != nil && (!valid || date.After(day(*filter.DateTo))) {
		return false
	}
	return true
}

// matchString treats a nil filter as "no filter". A set filter, even "", only
// matches a record carrying the same value.
func matchString(filter, value *string) bool {
	if filter == nil {
		return true
	}
	return value != nil && *value == *filter
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (t totals) summary() model.BookingSummary {
	return model.BookingSummary{
		BookingCount:  t.count,
		TotalSold:     t.sold,
		TotalCost:     t.cost,
		ProfitAndLoss: t.pnl,
	}
}

func buildMetrics(current, priorMonth, priorYear totals) model.PeriodMetrics {
	return model.PeriodMetrics{
		Bookings: newPeriodMetric(
			decimal.NewFromInt(int64(current.count)),
			decimal.NewFromInt(int64(priorMonth.count)),
			decimal.NewFromInt(int64(priorYear.count)),
		),
		TotalSold:     newPeriodMetric(current.sold, priorMonth.sold, priorYear.sold),
		TotalCost:     newPeriodMetric(current.cost, priorMonth.cost, priorYear.cost),
		ProfitAndLoss: newPeriodMetric(current.pnl, priorMonth.pnl, priorYear.pnl),
	}
}

func newPeriodMetric(current, priorMonth, priorYear decimal.Decimal) model.PeriodMetric {
	return model.PeriodMetric{
		Current:            current,
		PriorMonth:         priorMonth,
		PriorYear:          priorYear,
		ChangeVsPriorMonth: PercentChange(current, priorMonth),
		ChangeVsPriorYear:  PercentChange(current, priorYear),
	}
}

// PercentChange returns the change from prior to current in percent.
//
//	PercentChange(0, 0)    // 0
//	PercentChange(50, 0)   // 100
//	PercentChange(80, 100) // -20
//
// A zero prior yields 100 for any non-zero current, whatever its sign.
func PercentChange(current, prior decimal.Decimal) float64 {
	if prior.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	return current.Sub(prior).Div(prior.Abs()).Mul(hundred).InexactFloat64()
}
