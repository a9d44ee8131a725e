package errs

import "errors"

// Domain-specific sentinel errors for the booking gateway
var (
	// Date normalization errors
	ErrDateParse = errors.New("unable to parse date")

	// Booking validation errors
	ErrPartySizeOutOfRange    = errors.New("party size out of range")
	ErrMenuSelectionsRequired = errors.New("menu selections required for sunday lunch")
	ErrInvalidMenuSelection   = errors.New("invalid menu selection")

	// Upstream errors
	ErrAnchorNotConfigured = errors.New("anchor api key not configured")
	ErrBookingNotFound     = errors.New("booking not found")
)
