package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-dashboard/internal/auth"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims auth.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func authedHandler(t *testing.T) (http.Handler, *AuthContext) {
	t.Helper()
	captured := &AuthContext{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ac, ok := GetAuthContext(r.Context()); ok {
			*captured = *ac
		}
		w.WriteHeader(http.StatusOK)
	})
	return DashboardAuth(testSecret)(next), captured
}

func TestDashboardAuthAcceptsValidToken(t *testing.T) {
	handler, captured := authedHandler(t)

	token := signToken(t, auth.Claims{
		UserID:      "user-1",
		Role:        auth.RoleManager,
		Email:       "manager@example.com",
		LocationIDs: []string{"loc-1"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/reports/sales", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", captured.UserID)
	assert.Equal(t, auth.RoleManager, captured.Role)
	assert.Equal(t, []string{"loc-1"}, captured.LocationIDs)
}

func TestDashboardAuthRejectsMissingOrBadTokens(t *testing.T) {
	handler, _ := authedHandler(t)

	expired := signToken(t, auth.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	cases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: "Bearer " + expired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/reports/sales", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
