package domain

import (
	"fmt"
	"strings"
)

const (
	CardWidth  = 1200
	CardHeight = 630

	titleLimit       = 25
	descriptionLimit = 60
)

type Dot struct {
	X       int
	Y       int
	Opacity string
}

// Card is the share image shown in frames and link previews.
type Card struct {
	Width        int
	Height       int
	Title        string
	Description  string
	CallToAction string
	Host         string
	Pattern      []Dot
}

// BuildCard falls back to the app title and description when either is
// blank and clips both to fit the card.
func BuildCard(kind Kind, title, description, appURL string) Card {
	if strings.TrimSpace(title) == "" {
		title = AppTitle
	}
	if strings.TrimSpace(description) == "" {
		description = AppDescription
	}
	c := Card{
		Width:       CardWidth,
		Height:      CardHeight,
		Title:       clip(title, titleLimit),
		Description: clip(description, descriptionLimit),
		Host:        strings.TrimPrefix(strings.TrimRight(appURL, "/"), "https://"),
	}
	switch kind {
	case KindCouple:
		c.CallToAction = "Make Prediction"
	case KindLeaderboard:
		c.CallToAction = "View Rankings"
	default:
		c.CallToAction = "Start Swiping"
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			c.Pattern = append(c.Pattern, Dot{
				X:       200 + i*160,
				Y:       150 + j*160,
				Opacity: fmt.Sprintf("%.2f", 0.3-float64(i+j)*0.02),
			})
		}
	}
	return c
}

func clip(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
