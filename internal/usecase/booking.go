package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"anchor-gateway/internal/domain/booking"
	"anchor-gateway/internal/infra/anchor"
	"anchor-gateway/internal/pkg/clock"
)

//go:generate mockgen -source=booking.go -destination=../../tests/mock/usecase/booking.go -package=usecasemock

// KitchenClosedError rejects a food booking for a day without food service.
// The message is customer-facing and already channel-neutral.
type KitchenClosedError struct {
	Message string
}

func (e *KitchenClosedError) Error() string {
	return e.Message
}

// TableBookingUseCase orchestrates the booking submission pipeline:
// validate, gate on kitchen status, map to the wire payload, dispatch with
// retry. No booking state is held here; the external system is the only
// record.
type TableBookingUseCase interface {
	CreateBooking(ctx context.Context, req booking.Request, idempotencyKey string) (*anchor.Booking, error)
	CheckAvailability(ctx context.Context, q anchor.AvailabilityQuery, bookingType string) (*anchor.Availability, error)
	GetBooking(ctx context.Context, reference string) (json.RawMessage, error)
	CancelBooking(ctx context.Context, reference string) (json.RawMessage, error)
	SundayLunchMenu(ctx context.Context) (json.RawMessage, error)
}

type tableBookingUseCaseImpl struct {
	client AnchorClient
	gate   *KitchenGate
	clock  clock.Clock
	logger *slog.Logger
	menu   menuCache
}

func NewTableBookingUseCase(client AnchorClient, gate *KitchenGate, clk clock.Clock, logger *slog.Logger) TableBookingUseCase {
	return &tableBookingUseCaseImpl{
		client: client,
		gate:   gate,
		clock:  clk,
		logger: logger,
	}
}

func (u *tableBookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req booking.Request,
	idempotencyKey string,
) (*anchor.Booking, error) {
	// Structural validation runs before any network call.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.BookingType.RequiresKitchen() {
		if status := u.gate.Check(ctx, req.Date); !status.Open {
			return nil, &KitchenClosedError{Message: status.Message}
		}
	}

	if idempotencyKey == "" {
		idempotencyKey = req.IdempotencyKey()
	}

	result, err := u.client.CreateTableBooking(ctx, req.ToPayload(), idempotencyKey)
	if err != nil {
		return nil, err
	}

	u.logger.Info("table booking created",
		"reference", result.Reference(),
		"status", result.Status,
		"booking_type", req.BookingType,
		"party_size", req.PartySize,
		"payment_required", result.PaymentRequired,
	)

	return result, nil
}

func (u *tableBookingUseCaseImpl) CheckAvailability(
	ctx context.Context,
	q anchor.AvailabilityQuery,
	bookingType string,
) (*anchor.Availability, error) {
	// Food-service availability is gated the same way bookings are: a closed
	// kitchen means no slots, without consulting the upstream slot engine.
	if bookingType == string(booking.TypeSundayLunch) || bookingType == "food" {
		if status := u.gate.Check(ctx, q.Date); !status.Open {
			return &anchor.Availability{
				Available: false,
				Message:   status.Message,
				TimeSlots: []anchor.TimeSlot{},
			}, nil
		}
	}

	return u.client.CheckTableAvailability(ctx, q)
}

func (u *tableBookingUseCaseImpl) GetBooking(ctx context.Context, reference string) (json.RawMessage, error) {
	return u.client.GetTableBooking(ctx, reference)
}

func (u *tableBookingUseCaseImpl) CancelBooking(ctx context.Context, reference string) (json.RawMessage, error) {
	raw, err := u.client.CancelTableBooking(ctx, reference)
	if err != nil {
		return nil, err
	}
	u.logger.Info("table booking cancelled", "reference", reference)
	return raw, nil
}
