package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oyokai/internal/models"
)

func TestBuildDashboard(t *testing.T) {
	var d models.Dashboard
	d.Formations.Total = 6
	d.Testimonials.Pending = 2
	d.Contacts.Unread = 4
	d.RecentContacts = []models.Contact{
		{Name: "Jean Dupont", Email: "jean@example.com", FormationInterest: "Management d'Équipe", Status: models.ContactUnread},
		{Name: "Anne Leroy", Email: "anne@example.com", Status: models.ContactRead},
	}

	v := BuildDashboard(d)
	assert.Equal(t, 6, v.TotalFormations)
	assert.Equal(t, 2, v.PendingTestimonials)
	assert.Equal(t, 4, v.UnreadContacts)
	require.Len(t, v.RecentContacts, 2)

	assert.Equal(t, "Management d'Équipe", v.RecentContacts[0].Interest)
	assert.True(t, v.RecentContacts[0].Unread)
	assert.Equal(t, "Non lu", v.RecentContacts[0].StatusLabel)

	// A contact with no named formation shows as a general enquiry.
	assert.Equal(t, "Demande générale", v.RecentContacts[1].Interest)
	assert.Equal(t, "Lu", v.RecentContacts[1].StatusLabel)
}

func TestBuildStats(t *testing.T) {
	s := models.Stats{
		ContactsEvolution: []models.DayCount{
			{Date: "2025-03-01", Count: "3"},
			{Date: "2025-03-02", Count: "2"},
			{Date: "2025-03-03", Count: "n/a"}, // unparseable points are skipped
		},
		TestimonialsEvolution: []models.DayCount{
			{Date: "2025-03-01", Count: "1"},
		},
		TopFormationsInterest: []models.InterestCount{
			{FormationInterest: "Gestion de Projet", Count: "7"},
			{FormationInterest: "Bureautique et Outils Numériques", Count: "4"},
		},
	}

	v := BuildStats(s, "30")
	assert.Equal(t, "30", v.Period)
	assert.Equal(t, 5, v.ContactTotal)
	assert.Equal(t, 1, v.TestimonialTotal)
	require.True(t, v.HasTopFormations)
	require.Len(t, v.TopFormations, 2)
	assert.Equal(t, "Gestion de Projet", v.TopFormations[0].Formation)
	assert.Equal(t, 7, v.TopFormations[0].Count)
}

func TestBuildStatsEmpty(t *testing.T) {
	v := BuildStats(models.Stats{}, "7")
	assert.Equal(t, 0, v.ContactTotal)
	assert.Equal(t, 0, v.TestimonialTotal)
	assert.False(t, v.HasTopFormations)
}
