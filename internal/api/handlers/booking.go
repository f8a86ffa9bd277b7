package handlers

import (
	"net/http"
	"time"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api/request"
	"github.com/ndewijer/Booking-Operations-Backend/internal/api/response"
	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
	"github.com/ndewijer/Booking-Operations-Backend/internal/service"
	"github.com/ndewijer/Booking-Operations-Backend/internal/validation"
)

// BookingHandler handles HTTP requests for booking and booking analytics endpoints.
type BookingHandler struct {
	bookingService   *service.BookingService
	analyticsService *service.AnalyticsService
}

// NewBookingHandler creates a new BookingHandler with the provided service dependencies.
func NewBookingHandler(bookingService *service.BookingService, analyticsService *service.AnalyticsService) *BookingHandler {
	return &BookingHandler{
		bookingService:   bookingService,
		analyticsService: analyticsService,
	}
}

// BookingResponse is a booking as rendered over HTTP, with amounts rounded to 2 places.
type BookingResponse struct {
	ID            string    `json:"booking_id"`
	BookingDate   string    `json:"booking_date"`
	Sport         *string   `json:"sport"`
	EventName     *string   `json:"event_name"`
	TotalSoldGBP  float64   `json:"total_sold_gbp"`
	TotalCost     float64   `json:"total_cost"`
	ProfitAndLoss float64   `json:"profit_and_loss"`
	BookerName    string    `json:"booker_name,omitempty"`
	BookerEmail   string    `json:"booker_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func newBookingResponse(b model.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		BookingDate:   b.BookingDate,
		Sport:         b.Sport,
		EventName:     b.EventName,
		TotalSoldGBP:  money(b.TotalSoldGBP.Decimal),
		TotalCost:     money(b.TotalCost.Decimal),
		ProfitAndLoss: money(b.ProfitAndLoss.Decimal),
		BookerName:    b.BookerName,
		BookerEmail:   b.BookerEmail,
		CreatedAt:     b.CreatedAt,
	}
}

// Bookings handles GET requests to list bookings.
//
// Endpoint: GET /api/booking
// Query Parameters: sport, event, date_from, date_to (all optional; ?sport= filters on an empty sport)
// Response: 200 OK with array of BookingResponse
// Error: 400 Bad Request if a filter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *BookingHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseBookingFilter(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	bookings, err := h.bookingService.ListBookings(r.Context(), filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBookings.Error(), err.Error())
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, newBookingResponse(b))
	}

	response.RespondJSON(w, http.StatusOK, out)
}

// CreateBooking handles POST requests to record a booking.
//
// Endpoint: POST /api/booking
// Request Body: CreateBookingRequest (booking_date required)
// Response: 201 Created with BookingResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateBookingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateBooking(req); err != nil {
		respondValidationError(w, err)
		return
	}

	booking, err := h.bookingService.CreateBooking(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateBooking.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, newBookingResponse(booking))
}

// MonthlyBucketResponse is one calendar month of the reference year.
type MonthlyBucketResponse struct {
	Month         int     `json:"month"`
	MonthLabel    string  `json:"month_label"`
	BookingCount  int     `json:"booking_count"`
	TotalSold     float64 `json:"total_sold"`
	TotalCost     float64 `json:"total_cost"`
	ProfitAndLoss float64 `json:"profit_and_loss"`
}

// SummaryResponse holds all-time totals across the filtered bookings.
type SummaryResponse struct {
	BookingCount  int     `json:"booking_count"`
	TotalSold     float64 `json:"total_sold"`
	TotalCost     float64 `json:"total_cost"`
	ProfitAndLoss float64 `json:"profit_and_loss"`
}

// PeriodMetricResponse compares the reference month with the prior month and the prior year.
type PeriodMetricResponse struct {
	Current            float64 `json:"current"`
	PriorMonth         float64 `json:"prior_month"`
	PriorYear          float64 `json:"prior_year"`
	ChangeVsPriorMonth float64 `json:"change_vs_prior_month"`
	ChangeVsPriorYear  float64 `json:"change_vs_prior_year"`
}

// MetricsResponse groups the period comparisons.
type MetricsResponse struct {
	Bookings      PeriodMetricResponse `json:"bookings"`
	TotalSold     PeriodMetricResponse `json:"total_sold"`
	TotalCost     PeriodMetricResponse `json:"total_cost"`
	ProfitAndLoss PeriodMetricResponse `json:"profit_and_loss"`
}

// AnalyticsResponse is the booking analytics payload.
type AnalyticsResponse struct {
	Year    int                     `json:"year"`
	Month   int                     `json:"month"`
	Monthly []MonthlyBucketResponse `json:"monthly"`
	Summary SummaryResponse         `json:"summary"`
	Metrics MetricsResponse         `json:"metrics"`
}

func newPeriodMetricResponse(m model.PeriodMetric) PeriodMetricResponse {
	return PeriodMetricResponse{
		Current:            money(m.Current),
		PriorMonth:         money(m.PriorMonth),
		PriorYear:          money(m.PriorYear),
		ChangeVsPriorMonth: percent(m.ChangeVsPriorMonth),
		ChangeVsPriorYear:  percent(m.ChangeVsPriorYear),
	}
}

func newAnalyticsResponse(a model.BookingAnalytics) AnalyticsResponse {
	monthly := make([]MonthlyBucketResponse, 0, len(a.Monthly))
	for _, b := range a.Monthly {
		monthly = append(monthly, MonthlyBucketResponse{
			Month:         b.Month,
			MonthLabel:    b.MonthLabel,
			BookingCount:  b.BookingCount,
			TotalSold:     money(b.TotalSold),
			TotalCost:     money(b.TotalCost),
			ProfitAndLoss: money(b.ProfitAndLoss),
		})
	}

	return AnalyticsResponse{
		Year:    a.Year,
		Month:   a.Month,
		Monthly: monthly,
		Summary: SummaryResponse{
			BookingCount:  a.Summary.BookingCount,
			TotalSold:     money(a.Summary.TotalSold),
			TotalCost:     money(a.Summary.TotalCost),
			ProfitAndLoss: money(a.Summary.ProfitAndLoss),
		},
		Metrics: MetricsResponse{
			Bookings:      newPeriodMetricResponse(a.Metrics.Bookings),
			TotalSold:     newPeriodMetricResponse(a.Metrics.TotalSold),
			TotalCost:     newPeriodMetricResponse(a.Metrics.TotalCost),
			ProfitAndLoss: newPeriodMetricResponse(a.Metrics.ProfitAndLoss),
		},
	}
}

// Analytics handles GET requests for the booking aggregation.
//
// Endpoint: GET /api/booking/analytics
// Query Parameters: sport, event, date_from, date_to, reference_date (all optional)
// Response: 200 OK with AnalyticsResponse (always 12 monthly buckets)
// Error: 400 Bad Request if a parameter is malformed
// Error: 500 Internal Server Error if the bookings cannot be loaded
func (h *BookingHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := request.ParseBookingFilter(q)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	reference, err := request.ParseReferenceDate(q.Get("reference_date"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	result, err := h.analyticsService.GetBookingAnalytics(r.Context(), filter, reference)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToAggregateBookings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, newAnalyticsResponse(result))
}
