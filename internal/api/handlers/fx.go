package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api/request"
	"github.com/ndewijer/Booking-Operations-Backend/internal/api/response"
	"github.com/ndewijer/Booking-Operations-Backend/internal/apperrors"
	"github.com/ndewijer/Booking-Operations-Backend/internal/fx"
	"github.com/ndewijer/Booking-Operations-Backend/internal/model"
	"github.com/ndewijer/Booking-Operations-Backend/internal/service"
	"github.com/ndewijer/Booking-Operations-Backend/internal/validation"
)

// FxHandler handles HTTP requests for mid rates, the spread and the rate matrices.
type FxHandler struct {
	fxService *service.FxService
}

// NewFxHandler creates a new FxHandler with the provided service dependency.
func NewFxHandler(fxService *service.FxService) *FxHandler {
	return &FxHandler{
		fxService: fxService,
	}
}

// SpreadResponse is the spread record as rendered over HTTP.
// Value is null when the stored value is not numeric.
type SpreadResponse struct {
	ID        string           `json:"id"`
	Value     model.NullAmount `json:"value"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func newSpreadResponse(s model.Spread) SpreadResponse {
	return SpreadResponse{
		ID:        s.ID,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}

// Rates handles GET requests to list the stored directed mid rates.
//
// Endpoint: GET /api/fx/rate
// Response: 200 OK with array of CurrencyRate
// Error: 500 Internal Server Error if retrieval fails
func (h *FxHandler) Rates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.fxService.GetRates(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveRates.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rates)
}

// UpsertRate handles POST requests to create or replace a directed mid rate.
//
// Endpoint: POST /api/fx/rate
// Request Body: UpsertRateRequest (from, to, mid_rate)
// Response: 200 OK with CurrencyRate
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the rate cannot be stored
func (h *FxHandler) UpsertRate(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpsertRateRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpsertRate(req); err != nil {
		respondValidationError(w, err)
		return
	}

	rate, err := h.fxService.UpsertRate(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateRate.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rate)
}

// Matrix handles GET requests for the rate matrix of one quote side.
//
// Endpoint: GET /api/fx/matrix
// Query Parameters: side (bid, mid or ask; defaults to mid)
// Response: 200 OK with RateMatrix
// Error: 400 Bad Request if side is unknown
// Error: 500 Internal Server Error if rates or spread cannot be loaded
func (h *FxHandler) Matrix(w http.ResponseWriter, r *http.Request) {
	side, err := fx.ParseQuoteSide(r.URL.Query().Get("side"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidQuoteSide.Error(), "side must be one of bid, mid, ask")
		return
	}

	matrix, err := h.fxService.GetMatrix(r.Context(), side)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildMatrix.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, matrix)
}

// Matrices handles GET requests for the bid, mid and ask matrices together.
//
// Endpoint: GET /api/fx/matrix/all
// Response: 200 OK with RateMatrices
// Error: 500 Internal Server Error if rates or spread cannot be loaded
func (h *FxHandler) Matrices(w http.ResponseWriter, r *http.Request) {
	matrices, err := h.fxService.GetMatrices(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildMatrix.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, matrices)
}

// Spread handles GET requests for the current spread record.
//
// Endpoint: GET /api/fx/spread
// Response: 200 OK with SpreadResponse
// Error: 404 Not Found if no spread record exists
// Error: 500 Internal Server Error if retrieval fails
func (h *FxHandler) Spread(w http.ResponseWriter, r *http.Request) {
	spread, err := h.fxService.GetSpread(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSpreadRecord) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrNoSpreadRecord.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSpread.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, newSpreadResponse(spread))
}

// UpdateSpread handles PUT requests to replace the spread value.
// Mid rates are never touched.
//
// Endpoint: PUT /api/fx/spread/{uuid}
// Request Body: UpdateSpreadRequest (value as a number or numeric string)
// Response: 200 OK with SpreadResponse
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or the value is not a non-negative number
// Error: 404 Not Found if the spread record does not exist
// Error: 500 Internal Server Error if the update fails
func (h *FxHandler) UpdateSpread(w http.ResponseWriter, r *http.Request) {
	spreadID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateSpreadRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	spread, err := h.fxService.UpdateSpread(r.Context(), spreadID, req.RawValue())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidSpreadValue):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSpreadValue.Error(), err.Error())
		case errors.Is(err, apperrors.ErrNoSpreadRecord):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrNoSpreadRecord.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateSpread.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, newSpreadResponse(spread))
}
