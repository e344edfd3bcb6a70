package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/PelusheLD/Pepito-s-House/server/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// claimsFrom extracts verified token claims from a request, or nil when the
// request carries no valid token. Public endpoints use this to vary output
// for admins without requiring authentication.
func (h *Handler) claimsFrom(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(claimsKey).(*auth.Claims); ok {
		return claims
	}

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}

	claims, err := h.Tokens.VerifyToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil
	}
	return claims
}

// isAdmin gates mutating endpoints: 401 without a valid token, 403 when the
// token's role is not admin.
func (h *Handler) isAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := h.claimsFrom(r)
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if claims.Role != "admin" {
			writeMessage(w, http.StatusForbidden, "Not authorized")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}
