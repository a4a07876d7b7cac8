package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindDuplicate, http.StatusBadRequest},
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindUnavailable, http.StatusServiceUnavailable},
		{Kind("other"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		if got := StatusFor(tc.kind); got != tc.want {
			t.Errorf("StatusFor(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestAbortWith(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "unauthenticated", err: Unauthenticated("token_expired", "expired"), wantStatus: http.StatusUnauthorized, wantCode: "token_expired"},
		{name: "forbidden", err: Forbidden("admin_required", "no"), wantStatus: http.StatusForbidden, wantCode: "admin_required"},
		{name: "plain error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			reached := false
			r.GET("/", func(c *gin.Context) { AbortWith(c, tc.err) }, func(c *gin.Context) { reached = true })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			var body HTTPError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tc.wantCode {
				t.Fatalf("expected %s, got %s", tc.wantCode, body.Code)
			}
			if reached {
				t.Fatal("handler chain continued after abort")
			}
		})
	}
}
