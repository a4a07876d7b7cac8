package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/auth"
	domainBooking "github.com/BruksfildServices01/physio-clinic/internal/domain/booking"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
)

const (
	ContextUserID  = "userID"
	ContextIsAdmin = "userIsAdmin"
)

var (
	errAuthRequired = httperr.Unauthenticated("authentication_required", "Authentication required.")
	errTokenExpired = httperr.Unauthenticated("token_expired", "Session expired. Please log in again.")
	errInvalidToken = httperr.Unauthenticated("invalid_token", "Invalid session credential.")
	errAdminOnly    = httperr.Forbidden("admin_required", "Administrator access required.")
)

// TokenVerifier is satisfied by auth.TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// Authenticate requires a valid session credential, read from the
// Authorization header first and from the session cookie second.
func Authenticate(verifier TokenVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			httperr.AbortWith(c, errAuthRequired)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				httperr.AbortWith(c, errTokenExpired)
				return
			}
			httperr.AbortWith(c, errInvalidToken)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid credential is present and
// otherwise lets the request through as a guest.
func OptionalAuth(verifier TokenVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c, cookieName); token != "" {
			if claims, err := verifier.Verify(token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			httperr.AbortWith(c, errAdminOnly)
			return
		}
		c.Next()
	}
}

// Actor returns the caller as seen by the booking policy. Requests
// without claims yield a guest.
func Actor(c *gin.Context) domainBooking.Actor {
	return domainBooking.Actor{
		UserID:  c.GetString(ContextUserID),
		IsAdmin: c.GetBool(ContextIsAdmin),
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdmin)
}

func setClaims(c *gin.Context, claims auth.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextIsAdmin, claims.IsAdmin)
}

func extractToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookieName == "" {
		return ""
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
