package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"anchor-gateway/internal/domain/booking"
	"anchor-gateway/internal/infra/anchor"
	"anchor-gateway/internal/pkg/config"
	"anchor-gateway/internal/pkg/errs"
	"anchor-gateway/internal/usecase"
)

// Translated is the outward-facing rendering of a booking-pipeline error.
type Translated struct {
	Status        int
	Message       string
	Detail        any
	CorrelationID string
}

// Translate maps every error the booking pipeline can produce onto an HTTP
// status and a customer-safe message. Auth failures against the upstream
// are deliberately reported as service unavailability: the caller can do
// nothing about our credentials, and leaking them helps nobody.
func Translate(err error, contact config.ContactConfig) Translated {
	var validationErr *booking.ValidationError
	if errors.As(err, &validationErr) {
		return Translated{
			Status:  http.StatusBadRequest,
			Message: "Missing required fields: " + strings.Join(validationErr.Missing, ", "),
		}
	}

	var kitchenErr *usecase.KitchenClosedError
	if errors.As(err, &kitchenErr) {
		return Translated{Status: http.StatusBadRequest, Message: kitchenErr.Message}
	}

	switch {
	case errors.Is(err, errs.ErrPartySizeOutOfRange):
		return Translated{
			Status: http.StatusBadRequest,
			Message: fmt.Sprintf("Party size must be between %d and %d guests",
				booking.MinPartySize, booking.MaxPartySize),
		}
	case errors.Is(err, errs.ErrMenuSelectionsRequired):
		return Translated{
			Status:  http.StatusBadRequest,
			Message: "Menu selections are required for Sunday lunch bookings",
		}
	case errors.Is(err, errs.ErrInvalidMenuSelection):
		return Translated{
			Status:  http.StatusBadRequest,
			Message: "Invalid menu selection. Each selection must include guest name, menu item, type, quantity, and price",
		}
	case errors.Is(err, errs.ErrAnchorNotConfigured):
		return Translated{
			Status:  http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable. Please try again later.",
		}
	}

	var apiErr *anchor.APIError
	if errors.As(err, &apiErr) {
		return translateAPIError(apiErr)
	}

	// Anything unrecognized is an internal failure: never echo it, always
	// offer the phone fallback.
	return Translated{
		Status: http.StatusServiceUnavailable,
		Message: fmt.Sprintf(
			"We couldn't process your booking online. Please call us at %s and we'll reserve your table right away.",
			contact.Phone),
	}
}

func translateAPIError(apiErr *anchor.APIError) Translated {
	t := Translated{CorrelationID: apiErr.CorrelationID}

	switch apiErr.Code {
	case anchor.CodeValidationError:
		t.Status = http.StatusBadRequest
		t.Message = apiErr.Message
		t.Detail = apiErr.Details
	case anchor.CodeNoAvailability:
		t.Status = http.StatusConflict
		t.Message = "This time slot is no longer available. Please choose a different time."
		t.Detail = apiErr.Details
	case anchor.CodeUnauthorized:
		t.Status = http.StatusServiceUnavailable
		t.Message = "Authentication failed. Service temporarily unavailable."
	case anchor.CodeForbidden:
		t.Status = http.StatusServiceUnavailable
		t.Message = "Insufficient permissions. Please contact support."
	case anchor.CodeRateLimitExceeded:
		t.Status = http.StatusTooManyRequests
		t.Message = "Too many requests. Please try again later."
		t.Detail = apiErr.Details
	case anchor.CodeDatabaseError, anchor.CodeInternalError:
		t.Status = http.StatusServiceUnavailable
		t.Message = "Service temporarily unavailable. Please try again later."
	case "":
		return translateBareStatus(apiErr, t)
	default:
		// Unrecognized code: surface the upstream message when there is one.
		t.Status = http.StatusBadRequest
		t.Message = apiErr.Message
		if t.Message == "" {
			t.Message = "Failed to create booking"
		}
		t.Detail = apiErr.Details
	}

	return t
}

func translateBareStatus(apiErr *anchor.APIError, t Translated) Translated {
	switch {
	case apiErr.StatusCode == http.StatusUnauthorized:
		t.Status = http.StatusServiceUnavailable
		t.Message = "Authentication failed. Service temporarily unavailable."
	case apiErr.StatusCode == http.StatusConflict:
		t.Status = http.StatusConflict
		t.Message = "This time slot is no longer available. Please choose a different time."
	case apiErr.StatusCode == http.StatusNotFound:
		t.Status = http.StatusNotFound
		t.Message = apiErr.Message
	case apiErr.StatusCode >= http.StatusInternalServerError:
		t.Status = http.StatusServiceUnavailable
		t.Message = "Service temporarily unavailable. Please try again later."
	default:
		t.Status = apiErr.StatusCode
		t.Message = apiErr.Message
	}
	return t
}

