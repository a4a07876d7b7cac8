package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/BruksfildServices01/physio-clinic/internal/audit"
	"github.com/BruksfildServices01/physio-clinic/internal/auth"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/infra/repository/memory"
)

type authFixture struct {
	store    *memory.Store
	issuer   *auth.TokenIssuer
	register *Register
	login    *Login
	profile  *GetProfile
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	store := memory.NewStore()
	hasher := &auth.BcryptHasher{Cost: 4}
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	login, err := NewLogin(store.Users, hasher, issuer, audit.Nop{})
	if err != nil {
		t.Fatalf("new login: %v", err)
	}

	return &authFixture{
		store:    store,
		issuer:   issuer,
		register: NewRegister(store.Users, hasher, issuer, audit.Nop{}),
		login:    login,
		profile:  NewGetProfile(store.Users),
	}
}

func validInput() RegisterInput {
	return RegisterInput{
		Email:     "Asha@Example.com ",
		Password:  "s3cret!",
		FirstName: "Asha",
		LastName:  "Rao",
		Phone:     "9999999999",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	session, err := f.register.Execute(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if session.User.Email != "asha@example.com" {
		t.Fatalf("expected normalized email, got %q", session.User.Email)
	}
	if session.User.IsAdmin {
		t.Fatal("new users must not be admins")
	}
	if session.User.PasswordHash == "s3cret!" {
		t.Fatal("password must be stored hashed")
	}

	claims, err := f.issuer.Verify(session.Token)
	if err != nil {
		t.Fatalf("verify register token: %v", err)
	}
	if claims.UserID != session.User.ID {
		t.Fatalf("token subject %q does not match user %q", claims.UserID, session.User.ID)
	}

	loggedIn, err := f.login.Execute(ctx, "asha@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.User.ID != session.User.ID {
		t.Fatal("login returned a different user")
	}

	me, err := f.profile.Execute(ctx, session.User.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if me.FirstName != "Asha" {
		t.Fatalf("unexpected profile %+v", me)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	if _, err := f.register.Execute(ctx, validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	in := validInput()
	in.Email = "ASHA@example.com"
	_, err := f.register.Execute(ctx, in)
	kind, ok := httperr.KindOf(err)
	if !ok || kind != httperr.KindDuplicate {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRegisterEmailDomainCheck(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	f.register.EmailDomainOK = func(string) bool { return false }

	_, err := f.register.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "invalid_email_domain") {
		t.Fatalf("expected invalid_email_domain, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	if _, err := f.register.Execute(ctx, validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPassword := f.login.Execute(ctx, "asha@example.com", "nope")
	_, unknownEmail := f.login.Execute(ctx, "nobody@example.com", "s3cret!")

	if wrongPassword == nil || unknownEmail == nil {
		t.Fatal("expected both logins to fail")
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("errors differ: %v vs %v", wrongPassword, unknownEmail)
	}
}

func TestProfileOfVanishedUser(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	_, err := f.profile.Execute(context.Background(), "ghost")
	kind, ok := httperr.KindOf(err)
	if !ok || kind != httperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	tests := []struct {
		name     string
		mutate   func(*RegisterInput)
		wantCode string
	}{
		{name: "blank first name", mutate: func(in *RegisterInput) { in.FirstName = "  " }, wantCode: "invalid_name"},
		{name: "blank last name", mutate: func(in *RegisterInput) { in.LastName = "" }, wantCode: "invalid_name"},
		{name: "blank phone", mutate: func(in *RegisterInput) { in.Phone = "\t" }, wantCode: "invalid_phone"},
		{name: "password over 72 bytes", mutate: func(in *RegisterInput) { in.Password = strings.Repeat("x", 80) }, wantCode: "password_too_long"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := f.register.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
			if kind, _ := httperr.KindOf(err); kind != httperr.KindValidation {
				t.Fatalf("expected a validation error, got %s", kind)
			}
		})
	}

	if _, err := f.store.Users.GetByEmail(context.Background(), "asha@example.com"); err == nil {
		t.Fatal("rejected registration must not create a user")
	}
}
