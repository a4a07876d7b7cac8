package auth

import (
	"github.com/BruksfildServices01/physio-clinic/internal/auth"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

// Session is the result of a successful register or login.
type Session struct {
	Token string
	User  *models.User
}

type TokenIssuer interface {
	Issue(c auth.Claims) (string, error)
}

func issueSession(issuer TokenIssuer, u *models.User) (*Session, error) {
	token, err := issuer.Issue(auth.Claims{
		UserID:  u.ID,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	})
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u}, nil
}
