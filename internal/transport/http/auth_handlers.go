package http

import (
	"net/http"
	"time"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/dto"
)

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func authResponse(u *domain.User) dto.AuthResponse {
	return dto.AuthResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	user, err := h.accounts.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse(user))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	user, token, err := h.accounts.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	h.setSessionCookie(w, token, h.sessionTTL)
	writeJSON(w, http.StatusOK, authResponse(user))
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := h.accounts.Logout(r.Context(), token); err != nil {
			writeError(w, err)
			return
		}
	}
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request, id domain.Identity) {
	user, err := h.accounts.GetUser(r.Context(), id.UserID)
	if err != nil {
		writeError(w, domain.ErrUnauthenticated)
		return
	}
	writeJSON(w, http.StatusOK, authResponse(user))
}
