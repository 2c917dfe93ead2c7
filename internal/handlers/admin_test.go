package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oyokai/internal/api"
	"oyokai/internal/middleware"
	"oyokai/internal/sessions"
)

func TestSectionUnknownSlugIs404(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"user":{"id":1,"username":"admin","role":"admin"}}`))
	}))
	t.Cleanup(srv.Close)

	sess := sessions.NewManager("test-secret", false)
	client := api.NewClient(srv.URL, zap.NewNop())
	admin := &Admin{API: client, Sess: sess, Log: zap.NewNop()}
	auth := &middleware.Auth{API: client, Sess: sess, Log: zap.NewNop()}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Get("/admin/panel/{section}", admin.Section)
	})

	w := httptest.NewRecorder()
	wLogin := httptest.NewRecorder()
	rLogin := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	require.NoError(t, sess.Establish(wLogin, rLogin, "tok", authUser(1)))

	req := httptest.NewRequest(http.MethodGet, "/admin/panel/inexistant", nil)
	for _, c := range wLogin.Result().Cookies() {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuFor(t *testing.T) {
	menu := menuFor("contacts")
	require.Len(t, menu, len(sectionList))

	var activeCount int
	for _, entry := range menu {
		if entry.Active {
			activeCount++
			assert.Equal(t, "contacts", entry.Slug)
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestSectionRegistryCoversAllSections(t *testing.T) {
	want := []string{"dashboard", "formations", "testimonials", "contacts", "users", "stats"}
	require.Len(t, sectionList, len(want))
	for i, slug := range want {
		assert.Equal(t, slug, sectionList[i].Slug)
		assert.NotNil(t, sectionsBySlug[slug].load)
	}
}
