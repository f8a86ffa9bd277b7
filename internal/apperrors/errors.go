package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrBookingNotFound indicates that a booking with the given ID does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNoSpreadRecord indicates that the spread update did not address a known spread record.
	ErrNoSpreadRecord = errors.New("no spread record")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidSpreadValue indicates that a spread update was not a non-negative number.
	// The stored spread is left untouched.
	ErrInvalidSpreadValue = errors.New("invalid spread value")

	// ErrInvalidQuoteSide indicates a quote side other than bid, mid or ask.
	ErrInvalidQuoteSide = errors.New("invalid quote side")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidDate indicates that a date query parameter is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("date parameter is invalid")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Booking operation errors
	ErrFailedToRetrieveBookings  = errors.New("failed to retrieve bookings")
	ErrFailedToCreateBooking     = errors.New("failed to create booking")
	ErrFailedToAggregateBookings = errors.New("failed to aggregate bookings")

	// FX operation errors
	ErrFailedToRetrieveRates  = errors.New("failed to retrieve exchange rates")
	ErrFailedToUpdateRate     = errors.New("failed to update exchange rate")
	ErrFailedToRetrieveSpread = errors.New("failed to retrieve spread")
	ErrFailedToUpdateSpread   = errors.New("failed to update spread")
	ErrFailedToBuildMatrix    = errors.New("failed to build rate matrix")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
