package view

import (
	"strings"

	"oyokai/internal/models"
)

// FormationCard is a public catalog entry. Only active formations reach
// the public endpoint, so there is no status handling here.
type FormationCard struct {
	Title            string
	Slug             string
	Category         string
	Duration         string
	Price            string
	ShortDescription string
}

func FormationCards(list []models.Formation) []FormationCard {
	cards := make([]FormationCard, 0, len(list))
	for _, f := range list {
		cards = append(cards, FormationCard{
			Title:            f.Title,
			Slug:             f.Slug,
			Category:         f.Category,
			Duration:         f.Duration,
			Price:            f.PriceDisplay,
			ShortDescription: f.ShortDescription,
		})
	}
	return cards
}

// TestimonialCard shows the full message; truncation is a list-view rule
// for the back office only.
type TestimonialCard struct {
	Name      string
	Formation string
	Stars     string
	Message   string
}

// CarouselSlide groups approved testimonials for the public slider. The
// slide index lives in the view model handed to the template, not in a
// script-global counter.
type CarouselSlide struct {
	Index int
	Cards []TestimonialCard
}

func Carousel(list []models.Testimonial, perSlide int) []CarouselSlide {
	if perSlide < 1 {
		perSlide = 1
	}
	var slides []CarouselSlide
	for i := 0; i < len(list); i += perSlide {
		end := i + perSlide
		if end > len(list) {
			end = len(list)
		}
		slide := CarouselSlide{Index: len(slides)}
		for _, t := range list[i:end] {
			slide.Cards = append(slide.Cards, TestimonialCard{
				Name:      strings.TrimSpace(t.FirstName + " " + t.LastName),
				Formation: t.Formation,
				Stars:     Stars(t.Rating),
				Message:   t.Message,
			})
		}
		slides = append(slides, slide)
	}
	return slides
}
