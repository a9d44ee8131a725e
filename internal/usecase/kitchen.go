package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"anchor-gateway/internal/domain/schedule"
	"anchor-gateway/internal/pkg/config"
)

// KitchenStatus is the gate's verdict for one calendar date. Message is only
// set when closed and is already worded for the customer.
type KitchenStatus struct {
	Open    bool
	Message string
}

// KitchenGate decides whether food-service bookings are allowed on a date,
// from the upstream weekly hours plus special-date overrides.
//
// The gate FAILS OPEN: if the hours endpoint cannot be reached the booking
// proceeds. Losing bookings to an observability failure is worse than
// letting the odd one through on a closed day; staff can still ring back.
type KitchenGate struct {
	client  AnchorClient
	contact config.ContactConfig
	logger  *slog.Logger
}

func NewKitchenGate(client AnchorClient, contact config.ContactConfig, logger *slog.Logger) *KitchenGate {
	return &KitchenGate{
		client:  client,
		contact: contact,
		logger:  logger,
	}
}

// Check resolves the kitchen status for a canonical YYYY-MM-DD date.
func (g *KitchenGate) Check(ctx context.Context, date string) KitchenStatus {
	dayName, err := schedule.WeekdayName(date)
	if err != nil {
		g.logger.Warn("kitchen gate: unresolvable date, failing open", "date", date, "error", err)
		return KitchenStatus{Open: true}
	}

	hours, err := g.client.GetBusinessHours(ctx)
	if err != nil {
		g.logger.Warn("kitchen gate: hours fetch failed, failing open", "date", date, "error", err)
		return KitchenStatus{Open: true}
	}

	// A special-hours override for the exact date wins over the weekly
	// schedule.
	for _, special := range hours.SpecialHours {
		if special.Date == date && special.ClosesKitchen() {
			msg := special.Note
			if msg == "" {
				msg = "Kitchen is closed on this date due to special circumstances."
			}
			return KitchenStatus{Open: false, Message: msg}
		}
	}

	day, ok := hours.RegularHours[dayName]
	if !ok || day.KitchenClosed() {
		return KitchenStatus{Open: false, Message: g.closedMessage(dayName)}
	}

	return KitchenStatus{Open: true}
}

func (g *KitchenGate) closedMessage(dayName string) string {
	if dayName == "monday" {
		return fmt.Sprintf(
			"Kitchen is closed on Mondays. Bar service only - please call %s for drinks-only reservations.",
			g.contact.Phone)
	}
	// capitalize the day for customer-facing text
	title := dayName
	if len(title) > 0 {
		title = string(title[0]-'a'+'A') + title[1:]
	}
	return fmt.Sprintf("Kitchen is closed on %ss. No food service available.", title)
}
