package request

import (
	"anchor-gateway/internal/domain/booking"
)

// CreateTableBookingRequest is the canonical snake_case booking payload as
// sent by the website frontend. No gin binding tags: field presence is the
// domain validator's job so missing fields come back as a list, not as a
// binder error.
type CreateTableBookingRequest struct {
	BookingType         string                  `json:"booking_type"`
	Date                string                  `json:"date"`
	Time                string                  `json:"time"`
	PartySize           int                     `json:"party_size"`
	Customer            *BookingCustomer        `json:"customer"`
	DurationMinutes     int                     `json:"duration_minutes"`
	SpecialRequirements string                  `json:"special_requirements"`
	DietaryRequirements booking.StringList      `json:"dietary_requirements"`
	Allergies           booking.StringList      `json:"allergies"`
	CelebrationType     string                  `json:"celebration_type"`
	Source              string                  `json:"source"`
	MenuSelections      []booking.MenuSelection `json:"menu_selections"`
}

type BookingCustomer struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	SMSOptIn     *bool  `json:"sms_opt_in"`
}

func (r CreateTableBookingRequest) ToDomain() booking.Request {
	req := booking.Request{
		BookingType:         booking.Type(r.BookingType),
		Date:                r.Date,
		Time:                r.Time,
		PartySize:           r.PartySize,
		DurationMinutes:     r.DurationMinutes,
		SpecialRequirements: r.SpecialRequirements,
		DietaryRequirements: r.DietaryRequirements,
		Allergies:           r.Allergies,
		CelebrationType:     r.CelebrationType,
		Source:              r.Source,
		MenuSelections:      r.MenuSelections,
	}
	if r.Source == "" {
		req.Source = booking.SourceWebsite
	}
	if r.Customer != nil {
		req.Customer = booking.Customer{
			FirstName:    r.Customer.FirstName,
			LastName:     r.Customer.LastName,
			MobileNumber: r.Customer.MobileNumber,
			Email:        r.Customer.Email,
			SMSOptIn:     r.Customer.SMSOptIn,
		}
	}
	return req
}
