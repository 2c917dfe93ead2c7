package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"oyokai/internal/api"
	"oyokai/internal/middleware"
	"oyokai/internal/models"
	"oyokai/internal/sessions"
	"oyokai/internal/view"
)

// Admin serves the back office: one page per section plus the form and
// action endpoints that drive the CRUD operations.
type Admin struct {
	API  *api.Client
	Sess *sessions.Manager
	Log  *zap.Logger
}

// section is one entry of the back-office navigation. The registry is the
// only place a section slug is interpreted: every slug carries its title,
// template and loader, so an unknown slug is a 404 rather than a blank
// page.
type section struct {
	Slug  string
	Title string
	Tmpl  string
	load  func(h *Admin, r *http.Request, token string, user models.AuthUser) (any, error)
}

var sectionList = []section{
	{
		Slug:  "dashboard",
		Title: "Dashboard",
		Tmpl:  "admin/dashboard.html",
		load: func(h *Admin, r *http.Request, token string, _ models.AuthUser) (any, error) {
			d, err := h.API.Dashboard(r.Context(), token)
			if err != nil {
				return nil, err
			}
			return view.BuildDashboard(d), nil
		},
	},
	{
		Slug:  "formations",
		Title: "Gestion des Formations",
		Tmpl:  "admin/formations.html",
		load: func(h *Admin, r *http.Request, token string, _ models.AuthUser) (any, error) {
			status := r.URL.Query().Get("status")
			list, err := h.API.Formations(r.Context(), token, status)
			if err != nil {
				return nil, err
			}
			return struct {
				Rows   []view.FormationRow
				Status string
			}{view.FormationRows(list), status}, nil
		},
	},
	{
		Slug:  "testimonials",
		Title: "Gestion des Témoignages",
		Tmpl:  "admin/testimonials.html",
		load: func(h *Admin, r *http.Request, token string, _ models.AuthUser) (any, error) {
			list, err := h.API.AllTestimonials(r.Context(), token)
			if err != nil {
				return nil, err
			}
			return view.TestimonialRows(list), nil
		},
	},
	{
		Slug:  "contacts",
		Title: "Messages de Contact",
		Tmpl:  "admin/contacts.html",
		load: func(h *Admin, r *http.Request, token string, _ models.AuthUser) (any, error) {
			list, err := h.API.AllContacts(r.Context(), token)
			if err != nil {
				return nil, err
			}
			return view.ContactRows(list), nil
		},
	},
	{
		Slug:  "users",
		Title: "Utilisateurs Administrateurs",
		Tmpl:  "admin/users.html",
		load: func(h *Admin, r *http.Request, token string, user models.AuthUser) (any, error) {
			list, err := h.API.Users(r.Context(), token)
			if err != nil {
				return nil, err
			}
			return view.UserRows(list, user.ID), nil
		},
	},
	{
		Slug:  "stats",
		Title: "Statistiques Avancées",
		Tmpl:  "admin/stats.html",
		load: func(h *Admin, r *http.Request, token string, _ models.AuthUser) (any, error) {
			period := r.URL.Query().Get("period")
			if period == "" {
				period = "30"
			}
			s, err := h.API.Stats(r.Context(), token, period)
			if err != nil {
				return nil, err
			}
			return view.BuildStats(s, period), nil
		},
	},
}

var sectionsBySlug = func() map[string]section {
	m := make(map[string]section, len(sectionList))
	for _, s := range sectionList {
		m[s.Slug] = s
	}
	return m
}()

// MenuEntry feeds the sidebar; Active highlights the current section.
type MenuEntry struct {
	Slug   string
	Title  string
	Active bool
}

func menuFor(active string) []MenuEntry {
	menu := make([]MenuEntry, 0, len(sectionList))
	for _, s := range sectionList {
		menu = append(menu, MenuEntry{Slug: s.Slug, Title: s.Title, Active: s.Slug == active})
	}
	return menu
}

// Section renders one back-office section. Exactly one loader runs per
// request; a load failure keeps the shell and shows the generic failure
// message where the table would be.
func (h *Admin) Section(w http.ResponseWriter, r *http.Request) {
	sec, ok := sectionsBySlug[chi.URLParam(r, "section")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	token := middleware.TokenFrom(r.Context())
	user, _ := middleware.UserFrom(r.Context())
	data := h.pageData(w, r, sec.Slug, sec.Title, user)

	payload, err := sec.load(h, r, token, user)
	if err != nil {
		if h.forceLogoutOn401(w, r, err) {
			return
		}
		h.Log.Warn("section load failed", zap.String("section", sec.Slug), zap.Error(err))
		data["LoadError"] = "Erreur lors du chargement"
	} else {
		data["View"] = payload
	}

	render(w, r, data, "admin/base.html", sec.Tmpl)
}

// pageData assembles the admin shell: menu, title, operator identity and
// any pending flash notices.
func (h *Admin) pageData(w http.ResponseWriter, r *http.Request, slug, title string, user models.AuthUser) map[string]any {
	return map[string]any{
		"Section":     slug,
		"Title":       title,
		"Menu":        menuFor(slug),
		"User":        user,
		"Welcome":     "Bienvenue " + user.DisplayName(),
		"CurrentUser": user.DisplayName() + " (" + user.Role + ")",
		"Success":     h.Sess.PopFlash(w, r, sessions.FlashSuccess),
		"Error":       h.Sess.PopFlash(w, r, sessions.FlashError),
	}
}

// forceLogoutOn401 implements the forced-logout rule: a 401 from any
// authenticated call clears the session and lands on the login page, no
// matter which section initiated the call.
func (h *Admin) forceLogoutOn401(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, api.ErrUnauthorized) {
		return false
	}
	_ = h.Sess.Clear(w, r)
	http.Redirect(w, r, "/admin/login", http.StatusFound)
	return true
}

// errMessage maps an error to what the operator should read: structured
// backend failures keep their message, anything else is a connectivity
// problem.
func errMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Erreur de connexion"
}
