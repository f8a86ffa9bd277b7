package model

import "github.com/shopspring/decimal"

// MonthlyBucket holds the booking totals for one calendar month of the reference year.
type MonthlyBucket struct {
	Month         int             `json:"month"`
	MonthLabel    string          `json:"month_label"`
	BookingCount  int             `json:"booking_count"`
	TotalSold     decimal.Decimal `json:"total_sold"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	ProfitAndLoss decimal.Decimal `json:"profit_and_loss"`
}

// BookingSummary holds all-time totals across every filtered booking.
type BookingSummary struct {
	BookingCount  int             `json:"booking_count"`
	TotalSold     decimal.Decimal `json:"total_sold"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	ProfitAndLoss decimal.Decimal `json:"profit_and_loss"`
}

// PeriodMetric compares the reference month against the preceding month of the
// same year and the same month one year earlier.
type PeriodMetric struct {
	Current            decimal.Decimal `json:"current"`
	PriorMonth         decimal.Decimal `json:"prior_month"`
	PriorYear          decimal.Decimal `json:"prior_year"`
	ChangeVsPriorMonth float64         `json:"change_vs_prior_month"`
	ChangeVsPriorYear  float64         `json:"change_vs_prior_year"`
}

// PeriodMetrics groups the period comparisons for each tracked measure.
type PeriodMetrics struct {
	Bookings      PeriodMetric `json:"bookings"`
	TotalSold     PeriodMetric `json:"total_sold"`
	TotalCost     PeriodMetric `json:"total_cost"`
	ProfitAndLoss PeriodMetric `json:"profit_and_loss"`
}

// BookingAnalytics is the full result of one aggregation pass.
// Monthly always has 12 entries ordered January to December.
type BookingAnalytics struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Monthly []MonthlyBucket `json:"monthly"`
	Summary BookingSummary  `json:"summary"`
	Metrics PeriodMetrics   `json:"metrics"`
}
