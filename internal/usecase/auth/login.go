package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/physio-clinic/internal/audit"
	"github.com/BruksfildServices01/physio-clinic/internal/auth"
	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	domainUser "github.com/BruksfildServices01/physio-clinic/internal/domain/user"
)

type Login struct {
	users  domainUser.Repository
	hasher auth.PasswordHasher
	issuer TokenIssuer
	audit  audit.Recorder

	// decoy is verified when the e-mail is unknown so both failure paths
	// cost one hash comparison.
	decoy string
}

func NewLogin(
	users domainUser.Repository,
	hasher auth.PasswordHasher,
	issuer TokenIssuer,
	audit audit.Recorder,
) (*Login, error) {
	decoy, err := hasher.Hash("decoy-password-for-unknown-accounts")
	if err != nil {
		return nil, err
	}
	return &Login{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		audit:  audit,
		decoy:  decoy,
	}, nil
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	u, err := uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.hasher.Verify(password, uc.decoy)
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !uc.hasher.Verify(password, u.PasswordHash) {
		return nil, errInvalidCredentials
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserLoggedIn,
		Entity:   audit.EntityUser,
		EntityID: &u.ID,
	})

	return issueSession(uc.issuer, u)
}
