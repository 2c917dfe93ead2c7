package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"oyokai/internal/api"
	"oyokai/internal/models"
	"oyokai/internal/sessions"
	"oyokai/internal/view"
)

// Public serves the marketing page and its two submission forms.
type Public struct {
	API  *api.Client
	Sess *sessions.Manager
	Log  *zap.Logger
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// formationOption maps the short code used in the form selects to the
// canonical course name sent to the backend.
type formationOption struct {
	Code string
	Name string
}

var formationOptions = []formationOption{
	{"gestion-projet", "Gestion de Projet"},
	{"management", "Management d'Équipe"},
	{"communication", "Communication Professionnelle"},
	{"bureautique", "Bureautique et Outils Numériques"},
	{"autre", "Autre formation"},
}

var formationNames = func() map[string]string {
	m := make(map[string]string, len(formationOptions))
	for _, o := range formationOptions {
		m[o.Code] = o.Name
	}
	return m
}()

// Index renders the marketing page: formation cards, the approved
// testimonial carousel and both submission forms. A failed fetch only
// degrades its own block.
func (h *Public) Index(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title":            "OYOKAÏ Formation",
		"Year":             time.Now().Year(),
		"Success":          h.Sess.PopFlash(w, r, sessions.FlashSuccess),
		"Error":            h.Sess.PopFlash(w, r, sessions.FlashError),
		"FormationOptions": formationOptions,
	}

	formations, err := h.API.PublicFormations(r.Context())
	if err != nil {
		h.Log.Warn("public formations load failed", zap.Error(err))
		data["FormationsError"] = true
	} else {
		data["Formations"] = view.FormationCards(formations)
	}

	testimonials, err := h.API.ApprovedTestimonials(r.Context())
	if err != nil {
		h.Log.Warn("public testimonials load failed", zap.Error(err))
		data["TestimonialsError"] = true
	} else {
		data["Slides"] = view.Carousel(testimonials, 3)
	}

	render(w, r, data, "base.html", "index.html")
}

// SubmitContact validates the contact form before any backend call:
// required fields first, then the email format. Redirecting after the
// POST doubles as the double-submission guard.
func (h *Public) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Sess.Flash(w, r, sessions.FlashError, "Formulaire invalide")
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	message := strings.TrimSpace(r.FormValue("message"))
	interest := r.FormValue("formation_interest")

	if name == "" || email == "" || message == "" {
		h.Sess.Flash(w, r, sessions.FlashError, "Veuillez remplir tous les champs obligatoires")
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}
	if !emailRe.MatchString(email) {
		h.Sess.Flash(w, r, sessions.FlashError, "Adresse email invalide")
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}

	if canonical, ok := formationNames[interest]; ok {
		interest = canonical
	}

	msg, err := h.API.SubmitContact(r.Context(), models.ContactRequest{
		Name:              name,
		Email:             email,
		FormationInterest: interest,
		Message:           message,
	})
	if err != nil {
		h.Sess.Flash(w, r, sessions.FlashError, errMessage(err))
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}

	if msg == "" {
		msg = "Merci pour votre message ! Nous vous recontacterons bientôt."
	}
	h.Sess.Flash(w, r, sessions.FlashSuccess, msg)
	http.Redirect(w, r, "/#contact", http.StatusSeeOther)
}

// SubmitTestimonial validates the testimonial form: all fields required
// and a non-zero star rating, with the short course code mapped to its
// canonical name before sending. The backend stores it as pending.
func (h *Public) SubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	back := "/#temoignages"
	if err := r.ParseForm(); err != nil {
		h.Sess.Flash(w, r, sessions.FlashError, "Formulaire invalide")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	firstName := strings.TrimSpace(r.FormValue("first_name"))
	lastName := strings.TrimSpace(r.FormValue("last_name"))
	code := r.FormValue("formation")
	message := strings.TrimSpace(r.FormValue("message"))
	rating, _ := strconv.Atoi(r.FormValue("rating"))

	if firstName == "" || lastName == "" || code == "" || message == "" {
		h.Sess.Flash(w, r, sessions.FlashError, "Veuillez remplir tous les champs obligatoires")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	if rating < 1 || rating > 5 {
		h.Sess.Flash(w, r, sessions.FlashError, "Veuillez donner une note en cliquant sur les étoiles.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	canonical, ok := formationNames[code]
	if !ok {
		h.Sess.Flash(w, r, sessions.FlashError, "Formation inconnue")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	msg, err := h.API.SubmitTestimonial(r.Context(), models.TestimonialRequest{
		FirstName: firstName,
		LastName:  lastName,
		Formation: canonical,
		Rating:    rating,
		Message:   message,
	})
	if err != nil {
		h.Sess.Flash(w, r, sessions.FlashError, errMessage(err))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	if msg == "" {
		msg = "Merci pour votre témoignage ! Il sera publié après validation."
	}
	h.Sess.Flash(w, r, sessions.FlashSuccess, msg)
	http.Redirect(w, r, back, http.StatusSeeOther)
}
