package usecase

import (
	"context"
	"encoding/json"

	"anchor-gateway/internal/domain/booking"
	"anchor-gateway/internal/infra/anchor"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

// AnchorClient is the outbound port to the external reservations API.
type AnchorClient interface {
	CreateTableBooking(ctx context.Context, payload booking.Payload, idempotencyKey string) (*anchor.Booking, error)
	GetBusinessHours(ctx context.Context) (*anchor.BusinessHours, error)
	CheckTableAvailability(ctx context.Context, q anchor.AvailabilityQuery) (*anchor.Availability, error)
	GetTableBooking(ctx context.Context, reference string) (json.RawMessage, error)
	CancelTableBooking(ctx context.Context, reference string) (json.RawMessage, error)
	GetSundayLunchMenu(ctx context.Context) (json.RawMessage, error)
}
