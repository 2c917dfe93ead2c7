package view

import (
	"strings"

	"oyokai/internal/models"
)

// Row models turn backend payloads into exactly what the templates print.
// Keeping the mapping here, away from html/template, makes the truncation,
// placeholder and status rules testable on their own.

type FormationRow struct {
	ID          int
	Title       string
	Category    string
	Duration    string
	Price       string
	Active      bool
	StatusLabel string
	BadgeClass  string
}

func FormationRows(list []models.Formation) []FormationRow {
	rows := make([]FormationRow, 0, len(list))
	for _, f := range list {
		row := FormationRow{
			ID:          f.ID,
			Title:       f.Title,
			Category:    OrDash(f.Category),
			Duration:    OrDash(f.Duration),
			Price:       OrDash(f.PriceDisplay),
			Active:      f.Active,
			StatusLabel: "Inactive",
			BadgeClass:  "secondary",
		}
		if f.Active {
			row.StatusLabel = "Active"
			row.BadgeClass = "success"
		}
		rows = append(rows, row)
	}
	return rows
}

type TestimonialRow struct {
	ID          int
	Name        string
	Formation   string
	Stars       string
	Excerpt     string
	StatusLabel string
	BadgeClass  string
	Date        string
	// Pending exposes the approve/reject controls; approved and rejected
	// are terminal and render none.
	Pending bool
}

func TestimonialRows(list []models.Testimonial) []TestimonialRow {
	rows := make([]TestimonialRow, 0, len(list))
	for _, t := range list {
		row := TestimonialRow{
			ID:        t.ID,
			Name:      strings.TrimSpace(t.FirstName + " " + t.LastName),
			Formation: t.Formation,
			Stars:     Stars(t.Rating),
			Excerpt:   Excerpt(t.Message),
			Date:      ShortDate(t.CreatedAt),
			Pending:   t.Status == models.TestimonialPending,
		}
		switch t.Status {
		case models.TestimonialApproved:
			row.StatusLabel, row.BadgeClass = "Approuvé", "success"
		case models.TestimonialRejected:
			row.StatusLabel, row.BadgeClass = "Rejeté", "danger"
		default:
			row.StatusLabel, row.BadgeClass = "En attente", "warning"
		}
		rows = append(rows, row)
	}
	return rows
}

type ContactRow struct {
	ID                int
	Name              string
	Email             string
	FormationInterest string
	Excerpt           string
	StatusLabel       string
	BadgeClass        string
	Date              string
	// Unread drives the row highlight and the mark-as-read control; read
	// is terminal.
	Unread bool
}

func ContactRows(list []models.Contact) []ContactRow {
	rows := make([]ContactRow, 0, len(list))
	for _, c := range list {
		row := ContactRow{
			ID:                c.ID,
			Name:              c.Name,
			Email:             c.Email,
			FormationInterest: OrDash(c.FormationInterest),
			Excerpt:           Excerpt(c.Message),
			Date:              ShortDate(c.CreatedAt),
			Unread:            c.Status == models.ContactUnread,
			StatusLabel:       "Lu",
			BadgeClass:        "secondary",
		}
		if row.Unread {
			row.StatusLabel = "Non lu"
			row.BadgeClass = "warning"
		}
		rows = append(rows, row)
	}
	return rows
}

type UserRow struct {
	ID          int
	Username    string
	Email       string
	FullName    string
	Role        string
	Active      bool
	StatusLabel string
	BadgeClass  string
	LastLogin   string
	// Self marks the authenticated operator's own row, which never shows
	// a toggle control whatever the role.
	Self bool
}

// UserRows builds the user table for the operator identified by currentID.
func UserRows(list []models.AdminUser, currentID int) []UserRow {
	rows := make([]UserRow, 0, len(list))
	for _, u := range list {
		row := UserRow{
			ID:          u.ID,
			Username:    u.Username,
			Email:       u.Email,
			FullName:    strings.TrimSpace(u.FirstName + " " + u.LastName),
			Role:        u.Role,
			Active:      u.Active,
			StatusLabel: "Inactif",
			BadgeClass:  "secondary",
			LastLogin:   LastLogin(u.LastLogin),
			Self:        u.ID == currentID,
		}
		if u.Active {
			row.StatusLabel = "Actif"
			row.BadgeClass = "success"
		}
		rows = append(rows, row)
	}
	return rows
}
