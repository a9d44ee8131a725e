package request

import (
	"anchor-gateway/internal/domain/booking"
)

// AgentBookingRequest is the camelCase contract used by conversational AI
// agents. Dates may be natural language ("tomorrow", "next friday") and are
// normalized before the request is mapped onto the canonical shape.
type AgentBookingRequest struct {
	Date                string             `json:"date"`
	Time                string             `json:"time"`
	PartySize           int                `json:"partySize"`
	Customer            *AgentCustomer     `json:"customer"`
	Duration            int                `json:"duration"`
	SpecialRequirements string             `json:"specialRequirements"`
	DietaryRequirements booking.StringList `json:"dietaryRequirements"`
	Allergies           booking.StringList `json:"allergies"`
	Occasion            string             `json:"occasion"`
	Type                string             `json:"type"`
}

type AgentCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// MissingFields reports absent top-level fields, using the camelCase names
// the agent sent.
func (r AgentBookingRequest) MissingFields() []string {
	var missing []string
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.Time == "" {
		missing = append(missing, "time")
	}
	if r.PartySize == 0 {
		missing = append(missing, "partySize")
	}
	if r.Customer == nil {
		missing = append(missing, "customer")
	}
	return missing
}

// MissingCustomerFields reports absent nested customer fields. Only
// meaningful once Customer itself is present.
func (r AgentBookingRequest) MissingCustomerFields() []string {
	var missing []string
	if r.Customer == nil {
		return missing
	}
	if r.Customer.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if r.Customer.LastName == "" {
		missing = append(missing, "lastName")
	}
	if r.Customer.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// ToDomain maps onto the canonical request. normalizedDate is the ISO date
// produced from the natural-language input; bookingType the inferred type.
func (r AgentBookingRequest) ToDomain(normalizedDate string, bookingType booking.Type) booking.Request {
	optIn := true
	req := booking.Request{
		BookingType:         bookingType,
		Date:                normalizedDate,
		Time:                r.Time,
		PartySize:           r.PartySize,
		DurationMinutes:     r.Duration,
		SpecialRequirements: r.SpecialRequirements,
		DietaryRequirements: r.DietaryRequirements,
		Allergies:           r.Allergies,
		CelebrationType:     r.Occasion,
		Source:              booking.SourceAIAgent,
	}
	if r.Customer != nil {
		req.Customer = booking.Customer{
			FirstName:    r.Customer.FirstName,
			LastName:     r.Customer.LastName,
			MobileNumber: r.Customer.Phone,
			Email:        r.Customer.Email,
			SMSOptIn:     &optIn,
		}
	}
	return req
}
