package main

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"oyokai/internal/api"
	"oyokai/internal/config"
	"oyokai/internal/handlers"
	mw "oyokai/internal/middleware"
	"oyokai/internal/sessions"
)

func main() {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	client := api.NewClient(cfg.APIBaseURL, log)
	sess := sessions.NewManager(cfg.SessionSecret, cfg.Secure)

	pub := &handlers.Public{API: client, Sess: sess, Log: log}
	adm := &handlers.Admin{API: client, Sess: sess, Log: log}
	auth := &mw.Auth{API: client, Sess: sess, Log: log}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(chimw.RedirectSlashes)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	// ---------- Public site ----------
	r.Get("/", pub.Index)
	r.Post("/contact", pub.SubmitContact)
	r.Post("/temoignage", pub.SubmitTestimonial)

	// ---------- Admin authentication ----------
	r.Get("/admin/login", adm.LoginPage)
	r.Post("/admin/login", adm.Login)
	r.Post("/admin/logout", adm.Logout)
	r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/panel/dashboard", http.StatusFound)
	})

	// ---------- Back office (valid session required) ----------
	r.Group(func(g chi.Router) {
		g.Use(auth.RequireAdmin)

		g.Get("/admin/panel/{section}", adm.Section)

		g.Get("/admin/panel/formations/new", adm.FormationForm)
		g.Get("/admin/panel/formations/{id}/edit", adm.FormationForm)
		g.Post("/admin/panel/formations/save", adm.SaveFormation)
		g.Post("/admin/panel/formations/{id}/toggle", adm.ToggleFormation)
		g.Post("/admin/panel/formations/{id}/delete", adm.DeleteFormation)

		g.Post("/admin/panel/testimonials/{id}/approve", adm.ApproveTestimonial)
		g.Post("/admin/panel/testimonials/{id}/reject", adm.RejectTestimonial)

		g.Post("/admin/panel/contacts/{id}/read", adm.MarkContactRead)

		g.Get("/admin/panel/users/new", adm.UserForm)
		g.Post("/admin/panel/users/create", adm.CreateUser)
		g.Post("/admin/panel/users/{id}/toggle", adm.ToggleUser)
	})

	csrfKey := sha256.Sum256([]byte(cfg.CSRFSecret))
	protect := csrf.Protect(csrfKey[:],
		csrf.Secure(cfg.Secure),
		csrf.Path("/"),
	)

	log.Info("listening",
		zap.String("addr", cfg.Addr()),
		zap.String("api", cfg.APIBaseURL))
	if err := http.ListenAndServe(cfg.Addr(), protect(r)); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
