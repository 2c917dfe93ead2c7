package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"oyokai/internal/api"
	"oyokai/internal/models"
	"oyokai/internal/sessions"
)

type ctxUserKey struct{}
type ctxTokenKey struct{}

// Auth gates the back office. A stored token is re-verified against the
// backend on every admin page load; verify failure or a network error
// discards it and the request falls back to the login page.
type Auth struct {
	API  *api.Client
	Sess *sessions.Manager
	Log  *zap.Logger
}

func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := a.Sess.Token(r)
		if !ok {
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}

		user, err := a.API.Verify(r.Context(), token)
		if err != nil {
			a.Log.Info("token verification failed, forcing logout", zap.Error(err))
			_ = a.Sess.Clear(w, r)
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserKey{}, user)
		ctx = context.WithValue(ctx, ctxTokenKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFrom returns the verified operator placed in the context by
// RequireAdmin.
func UserFrom(ctx context.Context) (models.AuthUser, bool) {
	u, ok := ctx.Value(ctxUserKey{}).(models.AuthUser)
	return u, ok
}

// TokenFrom returns the verified bearer token for the current request.
func TokenFrom(ctx context.Context) string {
	t, _ := ctx.Value(ctxTokenKey{}).(string)
	return t
}
