package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	domainUser "github.com/BruksfildServices01/physio-clinic/internal/domain/user"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type GetProfile struct {
	users domainUser.Repository
}

func NewGetProfile(users domainUser.Repository) *GetProfile {
	return &GetProfile{users: users}
}

func (uc *GetProfile) Execute(ctx context.Context, userID string) (*models.User, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr("user_not_found", "User not found.")
		}
		return nil, err
	}
	return u, nil
}
