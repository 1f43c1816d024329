package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSuggester_ReturnsCopy(t *testing.T) {
	s := NewStaticSuggester()

	names, err := s.Suggest(context.Background(), "a todo app")
	require.NoError(t, err)
	assert.Equal(t, []string{"CodeGenius", "DeployMate", "Stackify", "LaunchPad", "AppHarbor"}, names)

	names[0] = "Changed"
	again, _ := s.Suggest(context.Background(), "")
	assert.Equal(t, "CodeGenius", again[0])
}

func TestStaticSuggester_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticSuggester().Suggest(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
