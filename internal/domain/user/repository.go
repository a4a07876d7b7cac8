package user

import (
	"context"

	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

// Repository is the credential store. Lookups return domain.ErrNotFound
// for absent users; Create returns domain.ErrDuplicateEmail when the
// address is taken.
type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
