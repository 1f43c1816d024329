package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
	portsmocks "github.com/renato0307/appdeck/internal/ports/mocks"
)

func newIdeaService(t *testing.T) *IdeaService {
	t.Helper()
	svc := NewIdeaService(newMemoryStore(), testOptions()...)
	svc.Load(context.Background())
	return svc
}

func TestIdeaService_StartsEmpty(t *testing.T) {
	svc := newIdeaService(t)

	assert.NotNil(t, svc.List())
	assert.Empty(t, svc.List())
}

func TestAddIdea_Defaults(t *testing.T) {
	svc := newIdeaService(t)

	idea, err := svc.AddIdea(context.Background(), "  Short A ", "  why Go  ")

	require.NoError(t, err)
	assert.Equal(t, "s-id-1", idea.ID)
	assert.Equal(t, "Short A", idea.Title)
	assert.Equal(t, "why Go", idea.Description)
	assert.Equal(t, domain.IdeaStatusIdea, idea.Status)
	assert.Equal(t, fixedNow, idea.CreatedAt)
	assert.Empty(t, idea.StatusNotes)
}

func TestAddIdea_BlankTitleIsNoop(t *testing.T) {
	svc := newIdeaService(t)

	idea, err := svc.AddIdea(context.Background(), " ", "desc")

	require.NoError(t, err)
	assert.Nil(t, idea)
	assert.Empty(t, svc.List())
}

func TestAddIdea_NewestFirst(t *testing.T) {
	svc := newIdeaService(t)
	_, _ = svc.AddIdea(context.Background(), "first", "")
	second, _ := svc.AddIdea(context.Background(), "second", "")

	assert.Equal(t, second.ID, svc.List()[0].ID)
}

func TestScenario_StatusNotesSurviveStatusChange(t *testing.T) {
	svc := newIdeaService(t)
	ctx := context.Background()

	idea, err := svc.AddIdea(ctx, "Short A", "")
	require.NoError(t, err)
	assert.Equal(t, domain.IdeaStatusIdea, idea.Status)

	_, err = svc.SetStatusNote(ctx, idea.ID, domain.IdeaStatusPlanning, "outline done")
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, idea.ID, domain.IdeaStatusScripting)
	require.NoError(t, err)

	got, err := svc.Get(idea.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.IdeaStatusScripting, got.Status)
	assert.Equal(t, "outline done", got.Note(domain.IdeaStatusPlanning))
}

func TestSetStatus_AnyOrder(t *testing.T) {
	svc := newIdeaService(t)
	ctx := context.Background()
	idea, _ := svc.AddIdea(ctx, "jump", "")

	got, err := svc.SetStatus(ctx, idea.ID, domain.IdeaStatusUploaded)
	require.NoError(t, err)
	assert.Equal(t, domain.IdeaStatusUploaded, got.Status)

	got, err = svc.SetStatus(ctx, idea.ID, domain.IdeaStatusPlanning)
	require.NoError(t, err)
	assert.Equal(t, domain.IdeaStatusPlanning, got.Status)

	_, err = svc.SetStatus(ctx, idea.ID, "Viral")
	assert.ErrorIs(t, err, domain.ErrInvalidIdeaStatus)
}

func TestAdvance_StopsAtUploaded(t *testing.T) {
	svc := newIdeaService(t)
	ctx := context.Background()
	idea, _ := svc.AddIdea(ctx, "pipeline", "")

	var got *domain.ShortIdea
	for range len(domain.IdeaPipeline) + 2 {
		var err error
		got, err = svc.Advance(ctx, idea.ID)
		require.NoError(t, err)
	}

	assert.Equal(t, domain.IdeaStatusUploaded, got.Status)
}

func TestUpdateIdea_TrimsAndIgnoresBlankTitle(t *testing.T) {
	svc := newIdeaService(t)
	ctx := context.Background()
	idea, _ := svc.AddIdea(ctx, "Original", "old")

	blank := "  "
	desc := "  new description "
	got, err := svc.UpdateIdea(ctx, idea.ID, domain.IdeaPatch{Title: &blank, Description: &desc})

	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title)
	assert.Equal(t, "new description", got.Description)
	assert.Equal(t, domain.IdeaStatusIdea, got.Status)
}

func TestIdeaService_UnknownID(t *testing.T) {
	svc := newIdeaService(t)
	ctx := context.Background()

	_, err := svc.SetStatusNote(ctx, "missing", domain.IdeaStatusIdea, "x")
	assert.ErrorIs(t, err, domain.ErrIdeaNotFound)
	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, domain.ErrIdeaNotFound)
	_, err = svc.DeleteIdea(ctx, "missing", ports.ConfirmFunc(func(string) bool { return true }))
	assert.ErrorIs(t, err, domain.ErrIdeaNotFound)
}

func TestDeleteIdea_Confirmation(t *testing.T) {
	svc := newIdeaService(t)
	ctx := context.Background()
	idea, _ := svc.AddIdea(ctx, "Maybe", "")

	declined := portsmocks.NewMockConfirmer(t)
	declined.EXPECT().Confirm(mock.Anything).Return(false)
	deleted, err := svc.DeleteIdea(ctx, idea.ID, declined)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, svc.List(), 1)

	deleted, err = svc.DeleteIdea(ctx, idea.ID, ports.ConfirmFunc(func(string) bool { return true }))
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, svc.List())
}

func TestIdeaService_CountByStatus(t *testing.T) {
	svc := newIdeaService(t)
	ctx := context.Background()
	a, _ := svc.AddIdea(ctx, "a", "")
	_, _ = svc.AddIdea(ctx, "b", "")
	_, _ = svc.SetStatus(ctx, a.ID, domain.IdeaStatusFilming)

	counts := svc.CountByStatus()

	assert.Equal(t, 1, counts[domain.IdeaStatusIdea])
	assert.Equal(t, 1, counts[domain.IdeaStatusFilming])
}
