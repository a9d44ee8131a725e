// Package booking holds the canonical table-booking request: the shape the
// external reservations API expects, plus the validation and normalization
// rules the gateway enforces before anything crosses the wire.
package booking

import (
	"fmt"
	"strings"

	"anchor-gateway/internal/domain/schedule"
)

type Type string

const (
	TypeRegular     Type = "regular"
	TypeSundayLunch Type = "sunday_lunch"
	TypeSundayRoast Type = "sunday_roast"
)

// Booking channels reported to the external system via the source field.
const (
	SourceWebsite       = "website"
	SourceWebsiteWizard = "website_wizard"
	SourceAIAgent       = "ai_agent"
)

const (
	MinPartySize           = 1
	MaxPartySize           = 20
	DefaultDurationMinutes = 120
)

// RequiresKitchen reports whether this booking type needs food service and
// therefore the kitchen-open check.
func (t Type) RequiresKitchen() bool {
	return t == TypeRegular || t == TypeSundayLunch
}

// InferType resolves the effective booking type: an explicit request wins,
// otherwise a Sunday date defaults to a Sunday roast.
func InferType(requested Type, date string) Type {
	if requested != "" {
		return requested
	}
	if schedule.IsSunday(date) {
		return TypeSundayRoast
	}
	return TypeRegular
}

type ItemType string

const (
	ItemStarter ItemType = "starter"
	ItemMain    ItemType = "main"
	ItemDessert ItemType = "dessert"
)

// MenuSelection is one pre-ordered Sunday lunch course for one guest.
// Price is captured at booking time and never recomputed. The pointer
// distinguishes an explicit £0.00 from an absent price; only the latter
// fails validation.
type MenuSelection struct {
	GuestName      string   `json:"guest_name"`
	MenuItemID     string   `json:"menu_item_id"`
	ItemType       ItemType `json:"item_type"`
	Quantity       int      `json:"quantity"`
	PriceAtBooking *float64 `json:"price_at_booking"`
}

type Customer struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email,omitempty"`
	// nil means "not stated", which maps to the channel default.
	SMSOptIn *bool `json:"sms_opt_in,omitempty"`
}

// Request is the gateway-internal booking request after channel-specific
// field names have been mapped onto the canonical contract.
type Request struct {
	BookingType         Type
	Date                string // YYYY-MM-DD
	Time                string // HH:MM
	PartySize           int
	Customer            Customer
	DurationMinutes     int
	SpecialRequirements string
	DietaryRequirements StringList
	Allergies           StringList
	CelebrationType     string
	Source              string
	MenuSelections      []MenuSelection
}

// Payload is the external API's wire contract. Optional fields are omitted
// entirely when empty; the upstream validator rejects empty-string noise.
type Payload struct {
	BookingType         Type            `json:"booking_type"`
	Date                string          `json:"date"`
	Time                string          `json:"time"`
	PartySize           int             `json:"party_size"`
	Customer            CustomerPayload `json:"customer"`
	DurationMinutes     int             `json:"duration_minutes"`
	SpecialRequirements string          `json:"special_requirements,omitempty"`
	DietaryRequirements []string        `json:"dietary_requirements,omitempty"`
	Allergies           []string        `json:"allergies,omitempty"`
	CelebrationType     string          `json:"celebration_type,omitempty"`
	Source              string          `json:"source"`
	MenuSelections      []MenuSelection `json:"menu_selections,omitempty"`
}

type CustomerPayload struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email,omitempty"`
	SMSOptIn     bool   `json:"sms_opt_in"`
}

// ToPayload applies the channel defaults and empty-field pruning rules.
func (r Request) ToPayload() Payload {
	p := Payload{
		BookingType:         r.BookingType,
		Date:                r.Date,
		Time:                r.Time,
		PartySize:           r.PartySize,
		DurationMinutes:     r.DurationMinutes,
		SpecialRequirements: strings.TrimSpace(r.SpecialRequirements),
		DietaryRequirements: r.DietaryRequirements.Normalized(),
		Allergies:           r.Allergies.Normalized(),
		CelebrationType:     strings.TrimSpace(r.CelebrationType),
		Source:              r.Source,
		Customer: CustomerPayload{
			FirstName:    r.Customer.FirstName,
			LastName:     r.Customer.LastName,
			MobileNumber: r.Customer.MobileNumber,
			Email:        r.Customer.Email,
			SMSOptIn:     true,
		},
	}

	if r.Customer.SMSOptIn != nil {
		p.Customer.SMSOptIn = *r.Customer.SMSOptIn
	}
	if p.DurationMinutes == 0 {
		p.DurationMinutes = DefaultDurationMinutes
	}
	if p.Source == "" {
		p.Source = SourceWebsite
	}
	if r.BookingType == TypeSundayLunch {
		p.MenuSelections = r.MenuSelections
	}

	return p
}

// IdempotencyKey derives a stable deduplication token from the fields that
// identify the logical booking. No timestamp component: a client retry of
// the same booking must produce the same key.
func (r Request) IdempotencyKey() string {
	return fmt.Sprintf("%s-%s-%s-%d", r.Date, r.Time, r.Customer.MobileNumber, r.PartySize)
}
