package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
)

const ideaIDPrefix = "s-"

// IdeaService manages the short-video idea pipeline
type IdeaService struct {
	ideas *collection[domain.ShortIdea]
	opts  options
}

// NewIdeaService creates a new IdeaService; call Load before use
func NewIdeaService(store ports.CollectionStore, opts ...Option) *IdeaService {
	return &IdeaService{
		ideas: newCollection[domain.ShortIdea](store, domain.CollectionIdeas),
		opts:  buildOptions(opts),
	}
}

// Load reads the ideas; there is no seed data
func (s *IdeaService) Load(ctx context.Context) []domain.ShortIdea {
	ideas := s.ideas.load(ctx, func() []domain.ShortIdea { return nil }, domain.ShortIdea.Validate)
	logging.Logger.Info("Short ideas loaded", "count", len(ideas))
	return ideas
}

// List returns the ideas, newest first
func (s *IdeaService) List() []domain.ShortIdea {
	return s.ideas.list()
}

// Get returns the idea with the given id
func (s *IdeaService) Get(id string) (*domain.ShortIdea, error) {
	idea, ok := s.ideas.find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrIdeaNotFound, id)
	}
	return &idea, nil
}

// CountByStatus tallies the ideas per pipeline status
func (s *IdeaService) CountByStatus() map[domain.IdeaStatus]int {
	return domain.CountByStatus(s.ideas.list())
}

// AddIdea puts a new idea at the top in status Idea.
// A blank title yields a nil idea without error.
func (s *IdeaService) AddIdea(ctx context.Context, title, description string) (*domain.ShortIdea, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}

	idea := domain.ShortIdea{
		CreatedAt:   s.opts.now(),
		Description: strings.TrimSpace(description),
		ID:          s.opts.newID(ideaIDPrefix),
		Status:      domain.IdeaStatusIdea,
		Title:       title,
	}

	if err := s.ideas.update(ctx, func(items []domain.ShortIdea) ([]domain.ShortIdea, error) {
		return domain.Prepend(items, idea), nil
	}); err != nil {
		return nil, err
	}

	logging.Logger.Info("Short idea added", "idea_id", idea.ID)
	return &idea, nil
}

// UpdateIdea shallow-merges the patch. Title and description are trimmed;
// a blank title is ignored.
func (s *IdeaService) UpdateIdea(ctx context.Context, id string, patch domain.IdeaPatch) (*domain.ShortIdea, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			patch.Title = nil
		} else {
			patch.Title = &title
		}
	}
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		patch.Description = &desc
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidIdeaStatus, *patch.Status)
	}

	return s.mutate(ctx, id, func(idea domain.ShortIdea) domain.ShortIdea {
		return domain.ApplyIdeaPatch(idea, patch)
	})
}

// SetStatus moves the idea to any pipeline status
func (s *IdeaService) SetStatus(ctx context.Context, id string, status domain.IdeaStatus) (*domain.ShortIdea, error) {
	return s.UpdateIdea(ctx, id, domain.IdeaPatch{Status: &status})
}

// Advance moves the idea one step down the pipeline; Uploaded stays put
func (s *IdeaService) Advance(ctx context.Context, id string) (*domain.ShortIdea, error) {
	return s.mutate(ctx, id, func(idea domain.ShortIdea) domain.ShortIdea {
		idea.Status = idea.Status.Next()
		return idea
	})
}

// SetStatusNote writes the note for one status, leaving the others alone
func (s *IdeaService) SetStatusNote(ctx context.Context, id string, status domain.IdeaStatus, text string) (*domain.ShortIdea, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidIdeaStatus, status)
	}

	return s.mutate(ctx, id, func(idea domain.ShortIdea) domain.ShortIdea {
		return idea.WithStatusNote(status, text)
	})
}

// DeleteIdea removes the idea after the confirmer agrees.
// Returns false without touching state when the user declines.
func (s *IdeaService) DeleteIdea(ctx context.Context, id string, confirmer ports.Confirmer) (bool, error) {
	idea, err := s.Get(id)
	if err != nil {
		return false, err
	}

	prompt := fmt.Sprintf("Delete short idea %q?", idea.Title)
	if confirmer == nil || !confirmer.Confirm(prompt) {
		logging.Logger.Info("Idea deletion declined", "idea_id", id)
		return false, nil
	}

	if err := s.ideas.update(ctx, func(items []domain.ShortIdea) ([]domain.ShortIdea, error) {
		return domain.Remove(items, id), nil
	}); err != nil {
		return false, err
	}

	logging.Logger.Info("Short idea deleted", "idea_id", id)
	return true, nil
}

func (s *IdeaService) mutate(ctx context.Context, id string, fn func(domain.ShortIdea) domain.ShortIdea) (*domain.ShortIdea, error) {
	var updated domain.ShortIdea
	err := s.ideas.update(ctx, func(items []domain.ShortIdea) ([]domain.ShortIdea, error) {
		idea, ok := domain.Find(items, id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrIdeaNotFound, id)
		}
		updated = fn(idea)
		return domain.Update(items, updated), nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
