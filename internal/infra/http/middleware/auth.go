package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/horsepowerelectrical/horsepower-api/internal/security"
)

type contextKey string

const adminClaimsKey contextKey = "adminClaims"

// RequireAdmin guards the admin-panel routes with the Bearer token issued at
// login.
func RequireAdmin(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}

			claims, err := security.ParseAdminToken(strings.TrimPrefix(header, "Bearer "), jwtSecret)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AdminClaimsFrom(ctx context.Context) (*security.AdminClaims, bool) {
	claims, ok := ctx.Value(adminClaimsKey).(*security.AdminClaims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
