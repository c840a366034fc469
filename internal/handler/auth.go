package handler

import (
	"net/http"

	"github.com/mader-project/mader/internal/middleware"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges form-encoded credentials for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid form data"})
		return
	}

	token, err := h.svc.Login(r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}

// Refresh issues a fresh token for the authenticated user.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Detail: "Could not validate credentials"})
		return
	}

	token, err := h.svc.RefreshToken(user)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}
