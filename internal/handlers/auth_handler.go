package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/dto"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/httpresp"
	"github.com/BruksfildServices01/physio-clinic/internal/middleware"
	usecaseAuth "github.com/BruksfildServices01/physio-clinic/internal/usecase/auth"
)

// CookieSettings controls the session cookie set next to the bearer token.
type CookieSettings struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	register *usecaseAuth.Register
	login    *usecaseAuth.Login
	profile  *usecaseAuth.GetProfile
	cookie   CookieSettings
	log      *slog.Logger
}

func NewAuthHandler(
	register *usecaseAuth.Register,
	login *usecaseAuth.Login,
	profile *usecaseAuth.GetProfile,
	cookie CookieSettings,
	log *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		profile:  profile,
		cookie:   cookie,
		log:      log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindingFailed(c, err)
		return
	}

	session, err := h.register.Execute(c.Request.Context(), usecaseAuth.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	h.writeSession(c, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindingFailed(c, err)
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	h.writeSession(c, session)
}

// Logout clears the session cookie. Tokens are stateless and stay valid
// until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	httpresp.Message(c, "Logged out.")
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.profile.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewUserResponse(u))
}

func (h *AuthHandler) writeSession(c *gin.Context, session *usecaseAuth.Session) {
	h.setCookie(c, session.Token, int(h.cookie.TTL.Seconds()))
	httpresp.OK(c, dto.AuthResponse{
		Token: session.Token,
		User:  dto.NewUserResponse(session.User),
	})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	if h.cookie.Name == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
