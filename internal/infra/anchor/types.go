package anchor

import "encoding/json"

// envelope is the upstream response wrapper. Newer endpoints answer
// {success, data, error}; older ones return the object bare. data is kept
// raw so passthrough routes can forward it untouched.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *wireError      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type wireError struct {
	Code          string          `json:"code"`
	Message       string          `json:"message"`
	Details       json.RawMessage `json:"details,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
}

// Booking is the upstream's view of a created table booking. Raw carries the
// undecoded body for routes that pass the external object straight through.
type Booking struct {
	BookingReference string               `json:"booking_reference"`
	BookingID        string               `json:"booking_id,omitempty"`
	Status           string               `json:"status"`
	PaymentRequired  bool                 `json:"payment_required,omitempty"`
	PaymentDetails   json.RawMessage      `json:"payment_details,omitempty"`
	Confirmation     *ConfirmationDetails `json:"confirmation_details,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Reference returns the booking reference, falling back to the booking id
// for upstream responses that only carry the latter.
func (b *Booking) Reference() string {
	if b.BookingReference != "" {
		return b.BookingReference
	}
	return b.BookingID
}

type ConfirmationDetails struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
}

// BusinessHours is the subset of the upstream hours document the kitchen
// gate needs. The kitchen sub-schedule can be an object, null, or absent;
// null and absent both decode to a nil pointer, which counts as closed.
type BusinessHours struct {
	RegularHours map[string]DayHours `json:"regularHours"`
	SpecialHours []SpecialHours      `json:"specialHours,omitempty"`
}

type DayHours struct {
	Opens    string        `json:"opens,omitempty"`
	Closes   string        `json:"closes,omitempty"`
	IsClosed bool          `json:"is_closed"`
	Kitchen  *KitchenHours `json:"kitchen,omitempty"`
}

type KitchenHours struct {
	Opens    string `json:"opens,omitempty"`
	Closes   string `json:"closes,omitempty"`
	IsClosed bool   `json:"is_closed"`
}

// KitchenClosed reports whether food service is off for the day.
func (d DayHours) KitchenClosed() bool {
	return d.IsClosed || d.Kitchen == nil || d.Kitchen.IsClosed
}

type SpecialHours struct {
	Date     string        `json:"date"`
	Opens    string        `json:"opens,omitempty"`
	Closes   string        `json:"closes,omitempty"`
	IsClosed bool          `json:"is_closed"`
	Kitchen  *KitchenHours `json:"kitchen,omitempty"`
	Reason   string        `json:"reason,omitempty"`
	Note     string        `json:"note,omitempty"`
}

// ClosesKitchen reports whether the override shuts food service on its date.
func (s SpecialHours) ClosesKitchen() bool {
	return s.IsClosed || s.Kitchen == nil || s.Kitchen.IsClosed
}

// AvailabilityQuery selects which slots to check for a given day.
type AvailabilityQuery struct {
	Date      string
	PartySize int
	Time      string // optional, for a specific slot
	Duration  string // optional, minutes
}

// Availability summarizes free slots for a day.
type Availability struct {
	Available bool            `json:"available"`
	Message   string          `json:"message,omitempty"`
	TimeSlots []TimeSlot      `json:"time_slots"`
	Raw       json.RawMessage `json:"-"`
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Busy      bool   `json:"busy,omitempty"`
	Remaining int    `json:"remaining,omitempty"`
}
