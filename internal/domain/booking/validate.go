package booking

import (
	"fmt"
	"strings"

	"anchor-gateway/internal/pkg/errs"
)

// ValidationError lists the required fields absent from a request. It is a
// distinct failure from out-of-range values so handlers can word the two
// differently.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate enforces structural completeness and the Sunday lunch menu
// contract. It never touches the network; business-day gating happens later
// in the usecase.
func (r Request) Validate() error {
	var missing []string

	if r.BookingType == "" {
		missing = append(missing, "booking_type")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.Time == "" {
		missing = append(missing, "time")
	}
	if r.PartySize == 0 {
		missing = append(missing, "party_size")
	}
	if r.Customer.FirstName == "" {
		missing = append(missing, "customer.first_name")
	}
	if r.Customer.LastName == "" {
		missing = append(missing, "customer.last_name")
	}
	if r.Customer.MobileNumber == "" {
		missing = append(missing, "customer.mobile_number")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	if r.PartySize < MinPartySize || r.PartySize > MaxPartySize {
		return errs.Wrap(errs.ErrPartySizeOutOfRange,
			fmt.Sprintf("party_size %d outside %d..%d", r.PartySize, MinPartySize, MaxPartySize))
	}

	if r.BookingType == TypeSundayLunch {
		if len(r.MenuSelections) == 0 {
			return errs.ErrMenuSelectionsRequired
		}
		for _, sel := range r.MenuSelections {
			if err := sel.validate(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (m MenuSelection) validate() error {
	// price_at_booking must be present but may be zero.
	if m.GuestName == "" || m.MenuItemID == "" || m.ItemType == "" || m.Quantity <= 0 || m.PriceAtBooking == nil {
		return errs.ErrInvalidMenuSelection
	}
	return nil
}
