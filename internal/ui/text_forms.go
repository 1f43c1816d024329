package ui

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
	"github.com/renato0307/appdeck/internal/services"
)

// NewInputForm asks for one line of text and hands it to submit
func NewInputForm(title, initial string, submit func(string) error) *ActionForm {
	value := initial
	return NewActionForm(func() error {
		return submit(value)
	}, huh.NewGroup(huh.NewInput().Title(title).Value(&value)))
}

// NewTextAreaForm edits multi-line text such as ideas, docs and notes
func NewTextAreaForm(title, description, initial string, submit func(string) error) *ActionForm {
	value := initial
	return NewActionForm(func() error {
		return submit(value)
	}, huh.NewGroup(huh.NewText().
		Title(title).
		Description(description).
		Value(&value).
		Lines(12).
		CharLimit(0)))
}

// NewConfirmForm asks before a destructive action. The answer is returned to
// the service through the confirmer passed to apply.
func NewConfirmForm(title, description string, apply func(ports.Confirmer) error) *ActionForm {
	var confirmed bool
	return NewActionForm(func() error {
		return apply(ports.ConfirmFunc(func(string) bool { return confirmed }))
	}, huh.NewGroup(huh.NewConfirm().
		Title(title).
		Description(description).
		Value(&confirmed).
		Affirmative("Delete").
		Negative("Cancel")))
}

// NewIdeaForm creates an idea, or edits it when idea is not nil
func NewIdeaForm(dashboard *services.Dashboard, idea *domain.ShortIdea) *ActionForm {
	var title, description string
	if idea != nil {
		title, description = idea.Title, idea.Description
	}

	return NewActionForm(func() error {
		ctx := context.Background()
		if idea == nil {
			_, err := dashboard.Ideas.AddIdea(ctx, title, description)
			return err
		}
		_, err := dashboard.Ideas.UpdateIdea(ctx, idea.ID, domain.IdeaPatch{Description: &description, Title: &title})
		return err
	},
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title).Validate(requireText("title")),
			huh.NewText().Title("Description").Value(&description).Lines(4),
		),
	)
}

// NewIdeaStatusForm picks any pipeline status for an idea
func NewIdeaStatusForm(dashboard *services.Dashboard, idea domain.ShortIdea) *ActionForm {
	status := idea.Status
	options := make([]huh.Option[domain.IdeaStatus], 0, len(domain.IdeaPipeline))
	for _, s := range domain.IdeaPipeline {
		options = append(options, huh.NewOption(string(s), s))
	}

	return NewActionForm(func() error {
		_, err := dashboard.Ideas.SetStatus(context.Background(), idea.ID, status)
		return err
	}, huh.NewGroup(huh.NewSelect[domain.IdeaStatus]().
		Title("Status").
		Description(idea.Title).
		Options(options...).
		Value(&status)))
}
