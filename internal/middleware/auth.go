package middleware

import (
	"context"
	"net/http"

	"resto-dashboard/internal/auth"
	"resto-dashboard/pkg/response"
)

type contextKey string

const authContextKey contextKey = "authContext"

type AuthContext struct {
	UserID      string
	Role        auth.UserRole
	Email       string
	LocationIDs []string
}

func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, authCtx)
}

func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	value := ctx.Value(authContextKey)
	if value == nil {
		return nil, false
	}
	ac, ok := value.(*AuthContext)
	return ac, ok
}

// DashboardAuth guards the reporting API with tokens issued by the external
// identity service. It only verifies; it never issues or refreshes.
func DashboardAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ParseBearerToken(r.Header.Get("Authorization"))
			claims, err := auth.VerifyAccessToken(token, secret)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Valid access token required")
				return
			}

			authCtx := &AuthContext{
				UserID:      claims.UserID,
				Role:        claims.Role,
				Email:       claims.Email,
				LocationIDs: claims.LocationIDs,
			}
			next.ServeHTTP(w, r.WithContext(WithAuthContext(r.Context(), authCtx)))
		})
	}
}
