package models

// Formation is a training course as served by the backend API.
// Optional fields come back as empty strings; the backend is the source
// of truth and nothing is cached locally.
type Formation struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Category         string `json:"category,omitempty"`
	Duration         string `json:"duration,omitempty"`
	PriceDisplay     string `json:"price_display,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	FullDescription  string `json:"full_description,omitempty"`
	Objectives       string `json:"objectives,omitempty"`
	TargetAudience   string `json:"target_audience,omitempty"`
	Prerequisites    string `json:"prerequisites,omitempty"`
	SortOrder        int    `json:"sort_order"`
	Active           bool   `json:"active"`
}
