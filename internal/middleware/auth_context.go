package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-exercise-tracker/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

const DebugUserHeader = "X-Debug-User-ID"

type AuthOptions struct {
	Verifier auth.AuthVerifier

	// DevMode acepta X-Debug-User-ID sin token. Nunca en prod.
	DevMode bool
}

// AuthContext:
// - Si viene Bearer token y hay verifier => intenta Verify() y setea claims.
// - En DevMode, si no hay token válido y viene X-Debug-User-ID => setea claims.
// - Si no hay claims, el request sigue igual; los handlers deciden 401.
func AuthContext(opts AuthOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r.Header.Get("Authorization")); token != "" && opts.Verifier != nil {
				if claims, err := opts.Verifier.Verify(r.Context(), token); err == nil {
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
					return
				}
			}

			if opts.DevMode {
				if uid := strings.TrimSpace(r.Header.Get(DebugUserHeader)); uid != "" {
					claims := auth.Claims{UserID: uid, Provider: "debug"}
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func WithClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// RequireUserID devuelve el user id autenticado o escribe 401.
func RequireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return claims.UserID, true
}

// BearerToken expone el parseo para handlers que necesitan el token crudo (logout).
func BearerToken(r *http.Request) string {
	return bearerToken(r.Header.Get("Authorization"))
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
