package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	h "rsvp/internal/delivery/http/helpers"
	"rsvp/internal/domain"
)

type contextKey string

// MsgWrongPassword is the detail of every rejected admin request.
const MsgWrongPassword = "Senha incorreta"

// RequireAdmin returns a wrapper that accepts either an admin Bearer token or
// the admin password in the "senha" query parameter. Anything else is answered
// with 401 and next is not called.
func RequireAdmin(auth domain.AdminAuthService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if err := checkAdmin(auth, r); err != nil {
				logger.WarnContext(r.Context(), "admin access denied", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, MsgWrongPassword)
				return
			}
			next(w, r)
		}
	}
}

func checkAdmin(auth domain.AdminAuthService, r *http.Request) error {
	const prefix = "Bearer "
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, prefix) {
		return auth.CheckToken(strings.TrimSpace(header[len(prefix):]))
	}
	return auth.CheckPassword(r.URL.Query().Get("senha"))
}
