package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oyokai/internal/models"
)

func TestCarousel(t *testing.T) {
	list := make([]models.Testimonial, 7)
	for i := range list {
		list[i] = models.Testimonial{FirstName: "T", LastName: "U", Rating: 5, Message: "ok"}
	}

	slides := Carousel(list, 3)
	require.Len(t, slides, 3)
	assert.Len(t, slides[0].Cards, 3)
	assert.Len(t, slides[1].Cards, 3)
	assert.Len(t, slides[2].Cards, 1)
	assert.Equal(t, 0, slides[0].Index)
	assert.Equal(t, 2, slides[2].Index)
}

func TestCarouselEmpty(t *testing.T) {
	assert.Empty(t, Carousel(nil, 3))
}

func TestCarouselKeepsFullMessage(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'm'
	}
	slides := Carousel([]models.Testimonial{
		{FirstName: "Marie", LastName: "Durand", Formation: "Communication Professionnelle", Rating: 4, Message: string(long)},
	}, 3)
	require.Len(t, slides, 1)
	require.Len(t, slides[0].Cards, 1)

	card := slides[0].Cards[0]
	assert.Equal(t, "Marie Durand", card.Name)
	assert.Equal(t, "★★★★☆", card.Stars)
	// Public cards never truncate; the excerpt rule is back-office only.
	assert.Len(t, card.Message, 300)
}

func TestFormationCards(t *testing.T) {
	cards := FormationCards([]models.Formation{
		{Title: "Gestion de Projet", Slug: "gestion-de-projet", Category: "management", Duration: "3 jours", PriceDisplay: "1200 €", ShortDescription: "Les bases."},
	})
	require.Len(t, cards, 1)
	assert.Equal(t, "gestion-de-projet", cards[0].Slug)
	assert.Equal(t, "1200 €", cards[0].Price)
}
