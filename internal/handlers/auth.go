package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"oyokai/internal/api"
)

// LoginPage shows the login form. A still-valid stored token skips it,
// like the original back office did on startup.
func (h *Admin) LoginPage(w http.ResponseWriter, r *http.Request) {
	if token, ok := h.Sess.Token(r); ok {
		if _, err := h.API.Verify(r.Context(), token); err == nil {
			http.Redirect(w, r, "/admin/panel/dashboard", http.StatusFound)
			return
		}
		_ = h.Sess.Clear(w, r)
	}
	h.renderLogin(w, r, "", "")
}

func (h *Admin) renderLogin(w http.ResponseWriter, r *http.Request, errMsg, username string) {
	render(w, r, map[string]any{
		"Title":    "Administration OYOKAÏ",
		"Error":    errMsg,
		"Username": username,
	}, "admin/login.html")
}

// Login exchanges the submitted credentials for a backend token. The
// server-provided error message is shown on failure, with the username
// kept in the form.
func (h *Admin) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, "Formulaire invalide", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		h.renderLogin(w, r, "Veuillez renseigner tous les champs", username)
		return
	}

	token, user, err := h.API.Login(r.Context(), username, password)
	if err != nil {
		// A 401 here is a credentials problem, not a dead session.
		msg := errMessage(err)
		if errors.Is(err, api.ErrUnauthorized) {
			msg = "Identifiants invalides"
		}
		h.renderLogin(w, r, msg, username)
		return
	}

	if err := h.Sess.Establish(w, r, token, user); err != nil {
		h.Log.Error("session save failed", zap.Error(err))
		h.renderLogin(w, r, "Erreur de session", username)
		return
	}
	http.Redirect(w, r, "/admin/panel/dashboard", http.StatusFound)
}

// Logout discards the session and returns to the login page.
func (h *Admin) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sess.Clear(w, r); err != nil {
		http.Error(w, "Erreur de déconnexion", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}
