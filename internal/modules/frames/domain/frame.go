package domain

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindDefault     Kind = "default"
	KindCouple      Kind = "couple"
	KindLeaderboard Kind = "leaderboard"
)

const (
	Version          = "next"
	ImageAspectRatio = "1.91:1"
	AppTitle         = "BAEsed - Chemistry Lab on Base"
	AppDescription   = "A Tinder-like, swipe-based dating app built for Farcaster and Base that transforms matchmaking into a community-driven experience."
)

// ParseKind maps unknown and empty values to the default frame.
func ParseKind(raw string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindCouple:
		return KindCouple
	case KindLeaderboard:
		return KindLeaderboard
	default:
		return KindDefault
	}
}

type Button struct {
	Label  string
	Action string
	Target string
}

type Frame struct {
	Kind        Kind
	Version     string
	Title       string
	Description string
	Image       string
	AspectRatio string
	PostURL     string
	AppURL      string
	Buttons     []Button
}

// Build assembles the frame for kind with every link rooted at appURL.
func Build(kind Kind, appURL string) Frame {
	appURL = strings.TrimRight(appURL, "/")
	f := Frame{
		Kind:        kind,
		Version:     Version,
		Image:       fmt.Sprintf("%s/api/og?type=%s", appURL, kind),
		AspectRatio: ImageAspectRatio,
		PostURL:     appURL + "/api/frames/action",
		AppURL:      appURL,
	}
	switch kind {
	case KindCouple:
		f.Title = "Chemistry Prediction"
		f.Description = "Make your chemistry prediction on Base!"
		f.Buttons = []Button{
			{Label: "Spark! 💙", Action: "post", Target: appURL + "/api/frames/predict?choice=spark"},
			{Label: "No Chemistry", Action: "post", Target: appURL + "/api/frames/predict?choice=no"},
			{Label: "View Profile", Action: "link", Target: appURL},
		}
	case KindLeaderboard:
		f.Title = "Chemistry Lab Leaderboard"
		f.Description = "Top Chemistry Predictors on Base"
		f.Buttons = []Button{
			{Label: "Join Chemistry Lab", Action: "link", Target: appURL},
			{Label: "View Rankings", Action: "post", Target: appURL + "/api/frames/leaderboard"},
		}
	default:
		f.Title = AppTitle
		f.Description = AppDescription
		f.Buttons = []Button{
			{Label: "Start Swiping", Action: "link", Target: appURL},
			{Label: "Chemistry Lab", Action: "link", Target: appURL + "?mode=chemistry"},
			{Label: "Leaderboard", Action: "link", Target: appURL + "?view=leaderboard"},
		}
	}
	return f
}
