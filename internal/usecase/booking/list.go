package booking

import (
	"context"

	domainBooking "github.com/BruksfildServices01/physio-clinic/internal/domain/booking"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type ListBookings struct {
	repo domainBooking.Repository
}

func NewListBookings(repo domainBooking.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns every booking for admins and only the caller's own
// bookings otherwise.
func (uc *ListBookings) Execute(
	ctx context.Context,
	actor domainBooking.Actor,
) ([]models.Booking, error) {
	if actor.IsAdmin {
		return uc.repo.List(ctx)
	}
	return uc.repo.ListByUser(ctx, actor.UserID)
}

type GetBooking struct {
	repo domainBooking.Repository
}

func NewGetBooking(repo domainBooking.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	actor domainBooking.Actor,
	id string,
) (*models.Booking, error) {
	b, err := loadBooking(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := domainBooking.CanAccess(actor, b); err != nil {
		return nil, err
	}
	return b, nil
}
