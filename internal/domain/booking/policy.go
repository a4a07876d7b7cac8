package booking

import (
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

// Actor is whoever is acting on a booking. The zero value is a guest.
type Actor struct {
	UserID  string
	IsAdmin bool
}

func (a Actor) IsGuest() bool {
	return a.UserID == ""
}

var errNotYours = httperr.Forbidden("booking_forbidden", "You are not allowed to access this booking.")

// CanAccess allows admins and the booking owner.
func CanAccess(a Actor, b *models.Booking) error {
	if a.IsAdmin || b.OwnedBy(a.UserID) {
		return nil
	}
	return errNotYours
}

// CanTransition validates moving b to the target status.
//
//	pending -> confirmed   admin only
//	pending -> cancelled   admin or owner
//
// Re-sending the current status is a no-op. Everything else is denied.
func CanTransition(a Actor, b *models.Booking, to Status) error {
	from := Status(b.Status)
	if from == to {
		return nil
	}
	if from != StatusPending {
		return httperr.Forbidden("invalid_transition", "This booking can no longer change status.")
	}

	switch to {
	case StatusConfirmed:
		if !a.IsAdmin {
			return httperr.Forbidden("admin_required", "Only the clinic can confirm a booking.")
		}
		return nil
	case StatusCancelled:
		return CanAccess(a, b)
	default:
		return httperr.Forbidden("invalid_transition", "This booking can no longer change status.")
	}
}

// StatusOnCreate resolves the status of a new booking. Only admins may
// create a booking in a status other than pending.
func StatusOnCreate(a Actor, requested *string) (Status, error) {
	if requested == nil || *requested == "" {
		return InitialStatus(), nil
	}
	st, err := ParseStatus(*requested)
	if err != nil {
		return "", err
	}
	if st != StatusPending && !a.IsAdmin {
		return "", httperr.Forbidden("admin_required", "Only the clinic can set the status of a booking.")
	}
	return st, nil
}
