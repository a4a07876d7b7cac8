package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func gatedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		actor := Actor(c)
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID, "isAdmin": actor.IsAdmin})
	})
	r.GET("/gated", chain...)
	return r
}

func call(r *gin.Engine, header, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body.Code
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenIssuer("secret", time.Hour)
	valid, _ := issuer.Issue(auth.Claims{UserID: "u-1", Email: "a@example.com"})

	past := time.Now().Add(-2 * time.Hour)
	expired, _ := auth.NewTokenIssuer("secret", time.Hour).
		WithClock(func() time.Time { return past }).
		Issue(auth.Claims{UserID: "u-1"})

	r := gatedRouter(Authenticate(issuer, "token"))

	tests := []struct {
		name     string
		header   string
		cookie   string
		status   int
		wantCode string
	}{
		{name: "bearer header", header: "Bearer " + valid, status: http.StatusOK},
		{name: "cookie", cookie: valid, status: http.StatusOK},
		{name: "missing", status: http.StatusUnauthorized, wantCode: "authentication_required"},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized, wantCode: "authentication_required"},
		{name: "tampered", header: "Bearer " + valid + "x", status: http.StatusUnauthorized, wantCode: "invalid_token"},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized, wantCode: "token_expired"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := call(r, tc.header, tc.cookie)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if tc.wantCode != "" && errorCode(t, w) != tc.wantCode {
				t.Fatalf("expected %s, got %s", tc.wantCode, w.Body.String())
			}
		})
	}
}

func TestOptionalAuthFallsBackToGuest(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenIssuer("secret", time.Hour)
	r := gatedRouter(OptionalAuth(issuer, "token"))

	w := call(r, "Bearer broken", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["userId"] != "" {
		t.Fatalf("expected a guest, got %v", body["userId"])
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenIssuer("secret", time.Hour)
	r := gatedRouter(Authenticate(issuer, "token"), RequireAdmin())

	user, _ := issuer.Issue(auth.Claims{UserID: "u-1"})
	admin, _ := issuer.Issue(auth.Claims{UserID: "a-1", IsAdmin: true})

	if w := call(r, "Bearer "+user, ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}
	if w := call(r, "Bearer "+admin, ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}

type fakeLimiter struct {
	allow bool
	err   error
}

func (f fakeLimiter) Allow(context.Context, string) (bool, error) { return f.allow, f.err }

func TestRateLimit(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		limiter Limiter
		status  int
	}{
		{name: "disabled", limiter: nil, status: http.StatusOK},
		{name: "under limit", limiter: fakeLimiter{allow: true}, status: http.StatusOK},
		{name: "over limit", limiter: fakeLimiter{allow: false}, status: http.StatusTooManyRequests},
		{name: "limiter down", limiter: fakeLimiter{err: errors.New("redis down")}, status: http.StatusOK},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := gatedRouter(RateLimit(tc.limiter, logger))
			if w := call(r, "", ""); w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	r := gatedRouter(CORSMiddleware([]string{"https://clinic.example"}))

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Origin", "https://clinic.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://clinic.example" {
		t.Fatalf("expected allowed origin to be echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}
