package models

import "encoding/json"

// Dashboard is the aggregate served by admin/dashboard.
type Dashboard struct {
	Formations struct {
		Total int `json:"total"`
	} `json:"formations"`
	Testimonials struct {
		Pending int `json:"pending"`
	} `json:"testimonials"`
	Contacts struct {
		Unread int `json:"unread"`
	} `json:"contacts"`
	RecentContacts []Contact `json:"recentContacts"`
}

// DayCount is one point of an evolution series. The backend emits counts
// as strings in some deployments, so json.Number keeps both forms readable.
type DayCount struct {
	Date  string      `json:"date"`
	Count json.Number `json:"count"`
}

// InterestCount ranks a formation by how many contact requests named it.
type InterestCount struct {
	FormationInterest string      `json:"formation_interest"`
	Count             json.Number `json:"count"`
}

// Stats is the admin/stats?period= report.
type Stats struct {
	ContactsEvolution     []DayCount      `json:"contactsEvolution"`
	TestimonialsEvolution []DayCount      `json:"testimonialsEvolution"`
	TopFormationsInterest []InterestCount `json:"topFormationsInterest"`
}
