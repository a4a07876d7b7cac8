package contact

import (
	"context"

	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
	Get(ctx context.Context, id string) (*models.Contact, error)
}
