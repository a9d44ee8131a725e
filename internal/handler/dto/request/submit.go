package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"anchor-gateway/internal/domain/booking"
)

// SubmitBookingRequest is the booking-wizard contract. The wizard posts JSON
// from its final step but degrades to a plain form submit when scripting is
// unavailable, so both encodings map onto this one shape.
type SubmitBookingRequest struct {
	Date                string                  `json:"date"`
	Time                string                  `json:"time"`
	PartySize           int                     `json:"partySize"`
	BookingType         string                  `json:"bookingType"`
	FirstName           string                  `json:"firstName"`
	LastName            string                  `json:"lastName"`
	Phone               string                  `json:"phone"`
	Email               string                  `json:"email"`
	SpecialRequirements string                  `json:"specialRequirements"`
	DietaryRequirements booking.StringList      `json:"dietaryRequirements"`
	Allergies           booking.StringList      `json:"allergies"`
	Occasion            string                  `json:"occasion"`
	MarketingOptIn      bool                    `json:"marketingOptIn"`
	MenuSelections      []booking.MenuSelection `json:"menuSelections"`
}

// SubmitFromForm reads the no-script form encoding. Multi-valued selects
// (dietary requirements, allergies) arrive as repeated fields.
func SubmitFromForm(c *gin.Context) SubmitBookingRequest {
	partySize, _ := strconv.Atoi(c.PostForm("party_size"))
	if partySize == 0 {
		partySize = 2
	}
	return SubmitBookingRequest{
		Date:                c.PostForm("date"),
		Time:                c.PostForm("time"),
		PartySize:           partySize,
		BookingType:         c.PostForm("booking_type"),
		FirstName:           c.PostForm("first_name"),
		LastName:            c.PostForm("last_name"),
		Phone:               c.PostForm("phone"),
		Email:               c.PostForm("email"),
		SpecialRequirements: c.PostForm("special_requirements"),
		DietaryRequirements: c.PostFormArray("dietary_requirements"),
		Allergies:           c.PostFormArray("allergies"),
		Occasion:            c.PostForm("occasion"),
		MarketingOptIn:      c.PostForm("marketing_opt_in") == "true",
	}
}

// MissingFields lists the required wizard fields that were left empty.
func (r SubmitBookingRequest) MissingFields() []string {
	var missing []string
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.Time == "" {
		missing = append(missing, "time")
	}
	if r.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if r.LastName == "" {
		missing = append(missing, "lastName")
	}
	if r.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// ResolveType picks the effective booking type. The wizard labels Sunday
// bookings "sunday_roast", but the external API only knows sunday_lunch
// (with pre-ordered courses) and regular. A roast with courses is a Sunday
// lunch upstream; without courses it is a regular table on a Sunday.
func (r SubmitBookingRequest) ResolveType() booking.Type {
	switch booking.Type(r.BookingType) {
	case booking.TypeSundayLunch:
		return booking.TypeSundayLunch
	case booking.TypeSundayRoast:
		if len(r.MenuSelections) > 0 {
			return booking.TypeSundayLunch
		}
	}
	return booking.TypeRegular
}

func (r SubmitBookingRequest) ToDomain() booking.Request {
	optIn := r.MarketingOptIn
	return booking.Request{
		BookingType: r.ResolveType(),
		Date:        r.Date,
		Time:        r.Time,
		PartySize:   r.PartySize,
		Customer: booking.Customer{
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			MobileNumber: r.Phone,
			Email:        r.Email,
			SMSOptIn:     &optIn,
		},
		SpecialRequirements: r.SpecialRequirements,
		DietaryRequirements: r.DietaryRequirements,
		Allergies:           r.Allergies,
		CelebrationType:     r.Occasion,
		Source:              booking.SourceWebsiteWizard,
		MenuSelections:      r.MenuSelections,
	}
}
