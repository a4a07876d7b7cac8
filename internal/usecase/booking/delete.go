package booking

import (
	"context"

	domainBooking "github.com/BruksfildServices01/physio-clinic/internal/domain/booking"
)

// DeleteBooking removes a booking permanently, whatever its status.
type DeleteBooking struct {
	repo domainBooking.Repository
}

func NewDeleteBooking(repo domainBooking.Repository) *DeleteBooking {
	return &DeleteBooking{repo: repo}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actor domainBooking.Actor,
	id string,
) error {

	b, err := loadBooking(ctx, uc.repo, id)
	if err != nil {
		return err
	}

	if err := domainBooking.CanAccess(actor, b); err != nil {
		return err
	}

	return uc.repo.Delete(ctx, b.ID)
}
