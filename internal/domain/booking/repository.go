package booking

import (
	"context"

	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Booking) error
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	// Delete removes the booking permanently.
	Delete(ctx context.Context, id string) error
}
