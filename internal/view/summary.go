package view

import "oyokai/internal/models"

type RecentContact struct {
	Name        string
	Email       string
	Interest    string
	StatusLabel string
	BadgeClass  string
	Unread      bool
}

type DashboardView struct {
	TotalFormations     int
	PendingTestimonials int
	UnreadContacts      int
	RecentContacts      []RecentContact
}

func BuildDashboard(d models.Dashboard) DashboardView {
	out := DashboardView{
		TotalFormations:     d.Formations.Total,
		PendingTestimonials: d.Testimonials.Pending,
		UnreadContacts:      d.Contacts.Unread,
	}
	for _, c := range d.RecentContacts {
		rc := RecentContact{
			Name:        c.Name,
			Email:       c.Email,
			Interest:    c.FormationInterest,
			Unread:      c.Status == models.ContactUnread,
			StatusLabel: "Lu",
			BadgeClass:  "secondary",
		}
		if rc.Interest == "" {
			rc.Interest = "Demande générale"
		}
		if rc.Unread {
			rc.StatusLabel = "Non lu"
			rc.BadgeClass = "warning"
		}
		out.RecentContacts = append(out.RecentContacts, rc)
	}
	return out
}

type TopFormation struct {
	Formation string
	Count     int
}

type StatsView struct {
	Period           string
	ContactTotal     int
	TestimonialTotal int
	TopFormations    []TopFormation
	HasTopFormations bool
}

func BuildStats(s models.Stats, period string) StatsView {
	out := StatsView{
		Period:           period,
		ContactTotal:     sumCounts(s.ContactsEvolution),
		TestimonialTotal: sumCounts(s.TestimonialsEvolution),
	}
	for _, item := range s.TopFormationsInterest {
		n, _ := item.Count.Int64()
		out.TopFormations = append(out.TopFormations, TopFormation{
			Formation: item.FormationInterest,
			Count:     int(n),
		})
	}
	out.HasTopFormations = len(out.TopFormations) > 0
	return out
}

func sumCounts(days []models.DayCount) int {
	total := 0
	for _, d := range days {
		n, err := d.Count.Int64()
		if err != nil {
			continue
		}
		total += int(n)
	}
	return total
}
