package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/physio-clinic/internal/audit"
	"github.com/BruksfildServices01/physio-clinic/internal/auth"
	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	domainUser "github.com/BruksfildServices01/physio-clinic/internal/domain/user"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type Register struct {
	users  domainUser.Repository
	hasher auth.PasswordHasher
	issuer TokenIssuer
	audit  audit.Recorder

	// EmailDomainOK, when set, rejects addresses whose domain does not
	// resolve.
	EmailDomainOK func(email string) bool
}

func NewRegister(
	users domainUser.Repository,
	hasher auth.PasswordHasher,
	issuer TokenIssuer,
	audit audit.Recorder,
) *Register {
	return &Register{
		users:  users,
		hasher: hasher,
		issuer: issuer,
		audit:  audit,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	phone := strings.TrimSpace(in.Phone)
	if first == "" || last == "" {
		return nil, errBlankName
	}
	if phone == "" {
		return nil, errBlankPhone
	}

	if uc.EmailDomainOK != nil && !uc.EmailDomainOK(email) {
		return nil, httperr.Validation("invalid_email_domain", "The e-mail domain does not look valid.")
	}

	_, err := uc.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errEmailTaken
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hashed, err := uc.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, errPasswordTooLong
		}
		return nil, err
	}

	u := &models.User{
		Email:        email,
		PasswordHash: hashed,
		FirstName:    first,
		LastName:     last,
		Phone:        phone,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, errEmailTaken
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   audit.EntityUser,
		EntityID: &u.ID,
	})

	return issueSession(uc.issuer, u)
}
