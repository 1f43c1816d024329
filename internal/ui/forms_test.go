package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
)

func TestCreateAppForm_Submit(t *testing.T) {
	_, d := newTestModel(t)
	var created *domain.App

	form := NewCreateAppForm(d, []string{"Go", "React"}, "Blog Engine", func(app *domain.App) { created = app })
	require.NoError(t, form.submit())

	require.NotNil(t, created)
	apps := d.Apps.List()
	require.Len(t, apps, 4)
	assert.Equal(t, "Blog Engine", apps[0].Name)
	assert.Equal(t, domain.StagePlanning, apps[0].DevStage)
}

func TestEditAppForm_KeepsValuesWhenUnchanged(t *testing.T) {
	_, d := newTestModel(t)
	before := getApp(t, d, "1")

	form := NewEditAppForm(d, nil, before)
	require.NoError(t, form.submit())

	after := getApp(t, d, "1")
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.TechStack, after.TechStack)
	assert.Equal(t, before.TestInfo, after.TestInfo)
}

func TestConfirmForm_DeclinedKeepsApp(t *testing.T) {
	_, d := newTestModel(t)

	form := NewConfirmForm("Delete?", "", func(c ports.Confirmer) error {
		_, err := d.Apps.DeleteApp(context.Background(), "1", c)
		return err
	})
	require.NoError(t, form.submit())

	assert.Len(t, d.Apps.List(), 3)
}

func TestSuggestNamesForm_RequiresPick(t *testing.T) {
	_, d := newTestModel(t)

	form := NewSuggestNamesForm(d, nil)

	assert.Error(t, form.submit())
	assert.Nil(t, form.Followup)
}

func TestActionForm_CancelSkipsSubmit(t *testing.T) {
	called := false
	var text string
	form := NewActionForm(func() error {
		called = true
		return errors.New("should not run")
	}, huh.NewGroup(huh.NewInput().Title("Text").Value(&text)))

	form.Update(keyMsg("esc"))

	assert.True(t, form.Completed)
	assert.True(t, form.Cancelled)
	assert.False(t, called)
}

func TestMetricsForm_SubmitKeepsCounters(t *testing.T) {
	_, d := newTestModel(t)
	before := getApp(t, d, "2")

	require.NoError(t, NewMetricsForm(d, before).submit())

	assert.Equal(t, before.Metrics, getApp(t, d, "2").Metrics)
}
