package server

import (
	"awty-football/internal/constants"
	"awty-football/internal/middleware"
	"awty-football/internal/server/respond"
	"net/http"
	"time"
)

type signInRequest struct {
	Credential string `json:"credential"`
}

func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, session, err := h.auth.SignIn(r.Context(), req.Credential)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	respond.JSON(w, http.StatusOK, user)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		respond.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "not signed in")
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil {
		if err := h.auth.SignOut(r.Context(), cookie.Value); err != nil {
			respond.Error(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
