package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"oyokai/internal/middleware"
	"oyokai/internal/models"
	"oyokai/internal/sessions"
	"oyokai/internal/view"
)

// FormationForm opens the formation form, empty for a creation or
// prefilled from a fetched record for an edit. Edit views always carry
// the full text of every field.
func (h *Admin) FormationForm(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFrom(r.Context())
	user, _ := middleware.UserFrom(r.Context())

	f := models.Formation{Active: true}
	title := "Nouvelle Formation"

	if idStr := chi.URLParam(r, "id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		f, err = h.API.Formation(r.Context(), token, id)
		if err != nil {
			if h.forceLogoutOn401(w, r, err) {
				return
			}
			h.Sess.Flash(w, r, sessions.FlashError, errMessage(err))
			http.Redirect(w, r, "/admin/panel/formations", http.StatusSeeOther)
			return
		}
		title = "Modifier la Formation"
	}

	data := h.pageData(w, r, "formations", title, user)
	data["Formation"] = f
	render(w, r, data, "admin/base.html", "admin/formation_form.html")
}

// formationFromForm serializes the submitted fields into the entity
// shape: sort_order coerced to int with 0 as default, the active
// checkbox to a bool, and the slug derived from the title when left
// blank.
func formationFromForm(r *http.Request) models.Formation {
	sortOrder, _ := strconv.Atoi(r.FormValue("sort_order"))
	f := models.Formation{
		Title:            strings.TrimSpace(r.FormValue("title")),
		Slug:             strings.TrimSpace(r.FormValue("slug")),
		Category:         strings.TrimSpace(r.FormValue("category")),
		Duration:         strings.TrimSpace(r.FormValue("duration")),
		PriceDisplay:     strings.TrimSpace(r.FormValue("price_display")),
		ShortDescription: r.FormValue("short_description"),
		FullDescription:  r.FormValue("full_description"),
		Objectives:       r.FormValue("objectives"),
		TargetAudience:   r.FormValue("target_audience"),
		Prerequisites:    r.FormValue("prerequisites"),
		SortOrder:        sortOrder,
		Active:           r.FormValue("active") == "on",
	}
	if id, err := strconv.Atoi(r.FormValue("id")); err == nil {
		f.ID = id
	}
	if f.Slug == "" && f.Title != "" {
		f.Slug = view.Slugify(f.Title)
	}
	return f
}

// SaveFormation creates or updates depending on whether the hidden id
// field carries a record identifier. On failure the form is shown again
// with the error and the input preserved.
func (h *Admin) SaveFormation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulaire invalide", http.StatusBadRequest)
		return
	}

	token := middleware.TokenFrom(r.Context())
	user, _ := middleware.UserFrom(r.Context())
	f := formationFromForm(r)

	retry := func(errMsg string) {
		title := "Nouvelle Formation"
		if f.ID > 0 {
			title = "Modifier la Formation"
		}
		data := h.pageData(w, r, "formations", title, user)
		data["Formation"] = f
		data["Error"] = errMsg
		render(w, r, data, "admin/base.html", "admin/formation_form.html")
	}

	if f.Title == "" {
		retry("Le titre est obligatoire")
		return
	}

	var msg string
	var err error
	if f.ID > 0 {
		msg, err = h.API.UpdateFormation(r.Context(), token, f)
	} else {
		msg, err = h.API.CreateFormation(r.Context(), token, f)
	}
	if err != nil {
		if h.forceLogoutOn401(w, r, err) {
			return
		}
		retry(errMessage(err))
		return
	}

	if msg == "" {
		msg = "Formation enregistrée"
	}
	h.Sess.Flash(w, r, sessions.FlashSuccess, msg)
	http.Redirect(w, r, "/admin/panel/formations", http.StatusSeeOther)
}

// action runs one id-addressed backend operation and returns to the
// owning section with a flash notice.
func (h *Admin) action(w http.ResponseWriter, r *http.Request,
	do func(ctx context.Context, token string, id int) (string, error),
	fallbackMsg, redirect string) {

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Identifiant invalide", http.StatusBadRequest)
		return
	}

	token := middleware.TokenFrom(r.Context())
	msg, err := do(r.Context(), token, id)
	if err != nil {
		if h.forceLogoutOn401(w, r, err) {
			return
		}
		h.Sess.Flash(w, r, sessions.FlashError, errMessage(err))
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}

	if msg == "" {
		msg = fallbackMsg
	}
	h.Sess.Flash(w, r, sessions.FlashSuccess, msg)
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// ToggleFormation flips the active flag and reloads the list, keeping
// the current status filter.
func (h *Admin) ToggleFormation(w http.ResponseWriter, r *http.Request) {
	redirect := "/admin/panel/formations"
	if status := r.FormValue("status"); status != "" {
		redirect += "?status=" + status
	}
	h.action(w, r, h.API.ToggleFormation, "Formation mise à jour", redirect)
}

func (h *Admin) DeleteFormation(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.API.DeleteFormation, "Formation supprimée", "/admin/panel/formations")
}

func (h *Admin) ApproveTestimonial(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.API.ApproveTestimonial, "Témoignage approuvé", "/admin/panel/testimonials")
}

func (h *Admin) RejectTestimonial(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.API.RejectTestimonial, "Témoignage rejeté", "/admin/panel/testimonials")
}

func (h *Admin) MarkContactRead(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.API.MarkContactRead, "Message marqué comme lu", "/admin/panel/contacts")
}

// ToggleUser activates or deactivates an account. Toggling your own
// account is refused outright; the list never shows the control for it
// either.
func (h *Admin) ToggleUser(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	if id, err := strconv.Atoi(chi.URLParam(r, "id")); err == nil && id == user.ID {
		h.Sess.Flash(w, r, sessions.FlashError, "Impossible de modifier votre propre compte")
		http.Redirect(w, r, "/admin/panel/users", http.StatusSeeOther)
		return
	}
	h.action(w, r, h.API.ToggleUser, "Utilisateur mis à jour", "/admin/panel/users")
}

// UserForm opens the creation form for a back-office account.
func (h *Admin) UserForm(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	data := h.pageData(w, r, "users", "Nouvel Utilisateur", user)
	data["Form"] = models.UserRequest{}
	render(w, r, data, "admin/base.html", "admin/user_form.html")
}

// CreateUser submits a new account. The password goes straight to the
// backend and is never persisted here.
func (h *Admin) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulaire invalide", http.StatusBadRequest)
		return
	}

	token := middleware.TokenFrom(r.Context())
	user, _ := middleware.UserFrom(r.Context())
	form := models.UserRequest{
		Username:  strings.TrimSpace(r.FormValue("username")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
		Role:      r.FormValue("role"),
	}

	retry := func(errMsg string) {
		data := h.pageData(w, r, "users", "Nouvel Utilisateur", user)
		form.Password = ""
		data["Form"] = form
		data["Error"] = errMsg
		render(w, r, data, "admin/base.html", "admin/user_form.html")
	}

	if form.Username == "" || form.Email == "" || form.Password == "" || form.Role == "" {
		retry("Veuillez renseigner tous les champs obligatoires")
		return
	}

	msg, err := h.API.CreateUser(r.Context(), token, form)
	if err != nil {
		if h.forceLogoutOn401(w, r, err) {
			return
		}
		retry(errMessage(err))
		return
	}

	if msg == "" {
		msg = "Utilisateur créé"
	}
	h.Sess.Flash(w, r, sessions.FlashSuccess, msg)
	http.Redirect(w, r, "/admin/panel/users", http.StatusSeeOther)
}
