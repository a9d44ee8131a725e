package response

import (
	"encoding/json"
	"fmt"

	"anchor-gateway/internal/domain/booking"
	"anchor-gateway/internal/domain/schedule"
	"anchor-gateway/internal/infra/anchor"
)

// SubmitBookingResponse is the wizard's JSON success shape. Payment fields
// only appear when the external API demands a deposit before confirming.
type SubmitBookingResponse struct {
	Success         bool                `json:"success"`
	Reference       string              `json:"reference"`
	PaymentRequired bool                `json:"payment_required,omitempty"`
	PaymentDetails  json.RawMessage     `json:"payment_details,omitempty"`
	Booking         SubmitBookingDetail `json:"booking"`
}

type SubmitBookingDetail struct {
	Reference    string `json:"reference"`
	Status       string `json:"status"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"party_size"`
	CustomerName string `json:"customer_name"`
}

// NewSubmitBookingResponse fills confirmation details from the external
// response, falling back to the request fields when the API omits them.
func NewSubmitBookingResponse(b *anchor.Booking, req booking.Request) SubmitBookingResponse {
	detail := SubmitBookingDetail{
		Reference:    b.Reference(),
		Status:       b.Status,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
		CustomerName: fmt.Sprintf("%s %s", req.Customer.FirstName, req.Customer.LastName),
	}
	if c := b.Confirmation; c != nil {
		if c.Date != "" {
			detail.Date = c.Date
		}
		if c.Time != "" {
			detail.Time = c.Time
		}
		if c.PartySize > 0 {
			detail.PartySize = c.PartySize
		}
	}
	resp := SubmitBookingResponse{
		Success:   true,
		Reference: b.Reference(),
		Booking:   detail,
	}
	if b.PaymentRequired && len(b.PaymentDetails) > 0 {
		if detail.Status == "" {
			resp.Booking.Status = "pending_payment"
		}
		resp.PaymentRequired = true
		resp.PaymentDetails = b.PaymentDetails
	}
	return resp
}

// AgentBookingResponse is the structured confirmation returned to AI agents.
type AgentBookingResponse struct {
	Success bool               `json:"success"`
	Booking AgentBookingDetail `json:"booking"`
}

type AgentBookingDetail struct {
	Reference           string               `json:"reference"`
	Status              string               `json:"status"`
	Date                string               `json:"date"`
	Time                string               `json:"time"`
	PartySize           int                  `json:"partySize"`
	Type                string               `json:"type"`
	Customer            AgentCustomerSummary `json:"customer"`
	Message             string               `json:"message"`
	SpecialInstructions *string              `json:"specialInstructions"`
}

type AgentCustomerSummary struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

const sundayRoastDepositNote = "Sunday roast booking requires £5 per person deposit. Payment link will be sent via SMS."

func NewAgentBookingResponse(b *anchor.Booking, req booking.Request) AgentBookingResponse {
	detail := AgentBookingDetail{
		Reference: b.Reference(),
		Status:    b.Status,
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
		Type:      string(req.BookingType),
		Customer: AgentCustomerSummary{
			Name:  fmt.Sprintf("%s %s", req.Customer.FirstName, req.Customer.LastName),
			Phone: req.Customer.MobileNumber,
		},
	}
	if c := b.Confirmation; c != nil {
		if c.Date != "" {
			detail.Date = c.Date
		}
		if c.Time != "" {
			detail.Time = c.Time
		}
		if c.PartySize > 0 {
			detail.PartySize = c.PartySize
		}
	}
	detail.Message = fmt.Sprintf("Booking confirmed for %d people on %s at %s",
		req.PartySize, schedule.FormatDateForDisplay(req.Date), schedule.FormatTimeForDisplay(req.Time))
	if req.BookingType == booking.TypeSundayRoast && schedule.IsSunday(req.Date) {
		note := sundayRoastDepositNote
		detail.SpecialInstructions = &note
	}
	return AgentBookingResponse{Success: true, Booking: detail}
}

// AgentErrorResponse keeps agent-facing failures machine-actionable: a flat
// error string plus a human-readable recovery suggestion.
type AgentErrorResponse struct {
	Success       bool   `json:"success"`
	Error         string `json:"error"`
	Suggestion    string `json:"suggestion,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// AgentAvailabilityResponse summarizes a day's table availability for agents.
type AgentAvailabilityResponse struct {
	Success   bool            `json:"success"`
	Date      string          `json:"date"`
	Available bool            `json:"available"`
	Times     []AgentTimeSlot `json:"times"`
	IsSunday  bool            `json:"isSunday"`
	Message   string          `json:"message,omitempty"`
}

type AgentTimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func NewAgentAvailabilityResponse(date string, avail *anchor.Availability) AgentAvailabilityResponse {
	times := make([]AgentTimeSlot, 0, len(avail.TimeSlots))
	for _, slot := range avail.TimeSlots {
		times = append(times, AgentTimeSlot{Time: slot.Time, Available: slot.Available})
	}
	return AgentAvailabilityResponse{
		Success:   true,
		Date:      date,
		Available: avail.Available,
		Times:     times,
		IsSunday:  schedule.IsSunday(date),
		Message:   avail.Message,
	}
}
