//go:build unit

package builder

import (
	"anchor-gateway/internal/domain/booking"
)

// Reference dates used across tests. 2026-09-18 is a Friday, 2026-09-20 a
// Sunday and 2026-09-21 a Monday.
const (
	FridayDate = "2026-09-18"
	SundayDate = "2026-09-20"
	MondayDate = "2026-09-21"
)

type BookingBuilder struct {
	req booking.Request
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		req: booking.Request{
			BookingType: booking.TypeRegular,
			Date:        FridayDate,
			Time:        "19:00",
			PartySize:   4,
			Customer: booking.Customer{
				FirstName:    "Alice",
				LastName:     "Smith",
				MobileNumber: "07700900123",
				Email:        "alice@example.com",
			},
			Source: booking.SourceWebsite,
		},
	}
}

func (b *BookingBuilder) WithType(t booking.Type) *BookingBuilder {
	b.req.BookingType = t
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.req.Date = date
	return b
}

func (b *BookingBuilder) WithTime(t string) *BookingBuilder {
	b.req.Time = t
	return b
}

func (b *BookingBuilder) WithPartySize(n int) *BookingBuilder {
	b.req.PartySize = n
	return b
}

func (b *BookingBuilder) WithCustomer(c booking.Customer) *BookingBuilder {
	b.req.Customer = c
	return b
}

func (b *BookingBuilder) WithSMSOptIn(v bool) *BookingBuilder {
	b.req.Customer.SMSOptIn = &v
	return b
}

func (b *BookingBuilder) WithMenuSelections(sels ...booking.MenuSelection) *BookingBuilder {
	b.req.MenuSelections = sels
	return b
}

func (b *BookingBuilder) WithSource(source string) *BookingBuilder {
	b.req.Source = source
	return b
}

func (b *BookingBuilder) Build() booking.Request {
	return b.req
}

// MenuSelection returns a valid Sunday lunch course selection.
func MenuSelection() booking.MenuSelection {
	price := 13.99
	return booking.MenuSelection{
		GuestName:      "Alice Smith",
		MenuItemID:     "main-uuid-1",
		ItemType:       booking.ItemMain,
		Quantity:       1,
		PriceAtBooking: &price,
	}
}
