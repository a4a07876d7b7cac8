package booking

import "github.com/BruksfildServices01/physio-clinic/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return st, nil
	default:
		return "", httperr.Validation("invalid_status", "Status must be pending, confirmed or cancelled.")
	}
}

func InitialStatus() Status {
	return StatusPending
}
