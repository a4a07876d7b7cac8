package memory

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	domainUser "github.com/BruksfildServices01/physio-clinic/internal/domain/user"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type userRow = models.User

type UserRepository struct {
	rows *table[userRow]
	now  func() time.Time
}

func (r *UserRepository) Create(_ context.Context, u *models.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.ID == "" {
		u.ID = models.NewID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = r.now()
	}
	return r.rows.insert(u.ID, *u, func(existing userRow) error {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
		return nil
	})
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.rows.all() {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete exists for tests that need a user to vanish after login.
func (r *UserRepository) Delete(id string) {
	r.rows.remove(id)
}

var _ domainUser.Repository = (*UserRepository)(nil)
