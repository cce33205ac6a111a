package custom_err

import "errors"

var (
	// Rate source errors
	ErrNoResult = errors.New("no result from rate source")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrInvalidTimeframe = errors.New("invalid timeframe")
)
