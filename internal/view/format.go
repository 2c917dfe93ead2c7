package view

import (
	"regexp"
	"strings"
	"time"
)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL identifier from a formation title: lowercase,
// every run of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens stripped. The slug stays editable in the
// admin form; this is only the default.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Stars renders a 1..5 rating as filled then empty glyphs.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// excerptLen is the list-view cutoff. Detail and edit views always show
// the full text.
const excerptLen = 100

// Excerpt truncates a message body for list views.
func Excerpt(s string) string {
	r := []rune(s)
	if len(r) <= excerptLen {
		return s
	}
	return string(r[:excerptLen]) + "..."
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ShortDate renders a backend timestamp in the French short date format.
// An empty value becomes the "-" placeholder; an unparseable value is
// passed through untouched.
func ShortDate(raw string) string {
	if raw == "" {
		return "-"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

// LastLogin is ShortDate with the "Jamais" placeholder for accounts that
// never signed in.
func LastLogin(raw string) string {
	if raw == "" {
		return "Jamais"
	}
	return ShortDate(raw)
}

// OrDash substitutes the table placeholder for absent optional fields.
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
