package dto

type ButtonOutput struct {
	Index  int
	Label  string
	Action string
	Target string
}

type FrameOutput struct {
	Kind        string
	Version     string
	Title       string
	Description string
	Image       string
	AspectRatio string
	PostURL     string
	AppURL      string
	Buttons     []ButtonOutput
}

type CardInput struct {
	Kind        string
	Title       string
	Description string
}

type DotOutput struct {
	X       int
	Y       int
	Opacity string
}

type CardOutput struct {
	Width        int
	Height       int
	Title        string
	Description  string
	CallToAction string
	Host         string
	Pattern      []DotOutput
}
