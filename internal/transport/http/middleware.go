package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/stammy-cpu/Jtech/internal/domain"
)

const sessionCookie = "jtech_session"

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// sessionToken pulls the session handle from the cookie, or from a bearer
// Authorization header for non-browser clients.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// withIdentity resolves the session on every request and stashes the result;
// it never rejects. requireUser/requireAdmin do the gating where it matters.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := sessionToken(r); token != "" {
			if id, err := h.accounts.Resolve(r.Context(), token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), ctxKeyIdentity, id))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func identityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(domain.Identity)
	return id, ok
}

func requireUser(next func(w http.ResponseWriter, r *http.Request, id domain.Identity)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(r.Context())
		if !ok {
			writeError(w, domain.ErrUnauthenticated)
			return
		}
		next(w, r, id)
	}
}

func requireAdmin(next func(w http.ResponseWriter, r *http.Request, id domain.Identity)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(r.Context())
		if !ok {
			writeError(w, domain.ErrUnauthenticated)
			return
		}
		if !id.IsAdmin {
			writeError(w, domain.ErrAdminRequired)
			return
		}
		next(w, r, id)
	}
}
