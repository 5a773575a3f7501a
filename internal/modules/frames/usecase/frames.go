package usecase

import (
	"context"

	"chemlab/internal/modules/frames/domain"
	"chemlab/internal/modules/frames/dto"
	framesin "chemlab/internal/modules/frames/port/in"
)

type Interactor struct {
	appURL string
}

func NewInteractor(appURL string) framesin.Usecase {
	return &Interactor{appURL: appURL}
}

func (i *Interactor) Frame(_ context.Context, kind string) (dto.FrameOutput, error) {
	f := domain.Build(domain.ParseKind(kind), i.appURL)
	out := dto.FrameOutput{
		Kind:        string(f.Kind),
		Version:     f.Version,
		Title:       f.Title,
		Description: f.Description,
		Image:       f.Image,
		AspectRatio: f.AspectRatio,
		PostURL:     f.PostURL,
		AppURL:      f.AppURL,
		Buttons:     make([]dto.ButtonOutput, 0, len(f.Buttons)),
	}
	for idx, b := range f.Buttons {
		out.Buttons = append(out.Buttons, dto.ButtonOutput{Index: idx + 1, Label: b.Label, Action: b.Action, Target: b.Target})
	}
	return out, nil
}

func (i *Interactor) Card(_ context.Context, input dto.CardInput) (dto.CardOutput, error) {
	c := domain.BuildCard(domain.ParseKind(input.Kind), input.Title, input.Description, i.appURL)
	out := dto.CardOutput{
		Width:        c.Width,
		Height:       c.Height,
		Title:        c.Title,
		Description:  c.Description,
		CallToAction: c.CallToAction,
		Host:         c.Host,
		Pattern:      make([]dto.DotOutput, 0, len(c.Pattern)),
	}
	for _, d := range c.Pattern {
		out.Pattern = append(out.Pattern, dto.DotOutput{X: d.X, Y: d.Y, Opacity: d.Opacity})
	}
	return out, nil
}
