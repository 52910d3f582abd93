package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/aptmart-service/internal/pkg/auth"
	"github.com/light-bringer/aptmart-service/internal/pkg/clock"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestLogging_EchoesTraceID(t *testing.T) {
	h := Logging(logging.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-123", logging.TraceID(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(TraceHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(TraceHeader))
}

func TestLogging_GeneratesTraceID(t *testing.T) {
	rec := httptest.NewRecorder()
	Logging(logging.NewNop())(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, rec.Header().Get(TraceHeader), 36)
}

func TestRequireRole(t *testing.T) {
	issuer := auth.NewIssuer("0123456789abcdef-secret", "aptmart", time.Hour, clock.NewMockClock(time.Now()))
	adminToken, _, err := issuer.Issue("admin@aptmart.local", auth.RoleAdmin, "")
	require.NoError(t, err)
	sellerToken, _, err := issuer.Issue("98765 43210", auth.RoleSeller, "seller-1")
	require.NoError(t, err)

	var seen *auth.Claims
	h := RequireRole(issuer, auth.RoleAdmin, logging.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"missing token", "", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + adminToken, "", http.StatusUnauthorized},
		{"seller token", "Bearer " + sellerToken, "", http.StatusForbidden},
		{"admin token", "Bearer " + adminToken, "", http.StatusOK},
		{"admin token in query", "", "?access_token=" + adminToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/overview"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
	require.NotNil(t, seen)
	assert.Equal(t, auth.RoleAdmin, seen.Role)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := rl.Middleware(http.HandlerFunc(ok))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		req.RemoteAddr = "10.0.0.7:5000" // port changes must not matter
		if i == 1 {
			req.RemoteAddr = "10.0.0.7:5001"
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodPost, "/orders", nil)
	other.RemoteAddr = "10.0.0.8:5000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 2, rl.Sweep(time.Now().Add(time.Minute)))
}

func TestCORS(t *testing.T) {
	r := mux.NewRouter()
	r.Use(CORS([]string{"https://app.aptmart.in"}))
	r.HandleFunc("/x", ok)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.aptmart.in")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "https://app.aptmart.in", rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://other.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
