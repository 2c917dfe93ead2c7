package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Management", "management"},
		{"spaces", "Gestion de Projet", "gestion-de-projet"},
		{"trailing punctuation", "Gestion de Projet!!", "gestion-de-projet"},
		{"mixed separators", "Bureautique & Outils / Numériques", "bureautique-outils-num-riques"},
		{"leading symbols", "  ---Communication", "communication"},
		{"digits kept", "Excel 2024", "excel-2024"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★★", Stars(5))
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "☆☆☆☆☆", Stars(0))

	// Out-of-range ratings are clamped, never panic.
	assert.Equal(t, "☆☆☆☆☆", Stars(-2))
	assert.Equal(t, "★★★★★", Stars(9))

	for r := 0; r <= 5; r++ {
		s := Stars(r)
		assert.Equal(t, r, strings.Count(s, "★"), "rating %d", r)
		assert.Equal(t, 5-r, strings.Count(s, "☆"), "rating %d", r)
	}
}

func TestExcerpt(t *testing.T) {
	short := strings.Repeat("a", 100)
	assert.Equal(t, short, Excerpt(short))

	long := strings.Repeat("b", 150)
	got := Excerpt(long)
	assert.Equal(t, strings.Repeat("b", 100)+"...", got)
	assert.Len(t, got, 103)

	// Truncation counts runes, not bytes.
	accented := strings.Repeat("é", 150)
	assert.Equal(t, strings.Repeat("é", 100)+"...", Excerpt(accented))

	assert.Equal(t, "", Excerpt(""))
}

func TestShortDate(t *testing.T) {
	assert.Equal(t, "15/03/2025", ShortDate("2025-03-15T10:30:00Z"))
	assert.Equal(t, "15/03/2025", ShortDate("2025-03-15T10:30:00"))
	assert.Equal(t, "15/03/2025", ShortDate("2025-03-15 10:30:00"))
	assert.Equal(t, "15/03/2025", ShortDate("2025-03-15"))
	assert.Equal(t, "-", ShortDate(""))
	assert.Equal(t, "pas une date", ShortDate("pas une date"))
}

func TestLastLogin(t *testing.T) {
	assert.Equal(t, "Jamais", LastLogin(""))
	assert.Equal(t, "01/02/2025", LastLogin("2025-02-01T08:00:00Z"))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", OrDash(""))
	assert.Equal(t, "2 jours", OrDash("2 jours"))
}
