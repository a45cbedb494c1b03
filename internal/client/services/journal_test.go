package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/client/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_ListCachesDefaultPage(t *testing.T) {
	f := &fakeAPI{Journals: []models.JournalEntry{{ID: 1}}}
	svc := NewJournalService(f, state.NewApp())
	ctx := context.Background()
	q := models.DefaultJournalQuery()

	_, err := svc.List(ctx, q, false)
	require.NoError(t, err)
	_, err = svc.List(ctx, q, false)
	require.NoError(t, err)
	assert.Equal(t, 1, f.JournalsCalls)

	_, err = svc.List(ctx, q, true)
	require.NoError(t, err)
	assert.Equal(t, 2, f.JournalsCalls)

	other := q
	other.Offset = 20
	_, err = svc.List(ctx, other, false)
	require.NoError(t, err)
	_, err = svc.List(ctx, other, false)
	require.NoError(t, err)
	assert.Equal(t, 4, f.JournalsCalls, "non-default pages are not cached")
}

func TestJournal_WritesInvalidateCache(t *testing.T) {
	f := &fakeAPI{Journals: []models.JournalEntry{{ID: 1}}, Journal: &models.JournalEntry{ID: 2}}
	app := state.NewApp()
	svc := NewJournalService(f, app)
	ctx := context.Background()
	q := models.DefaultJournalQuery()

	fill := func() {
		_, err := svc.List(ctx, q, false)
		require.NoError(t, err)
		_, ok := app.Journals.Get()
		require.True(t, ok)
	}

	fill()
	_, err := svc.Create(ctx, models.JournalCreate{Content: "c", Mood: "happy"})
	require.NoError(t, err)
	_, ok := app.Journals.Get()
	assert.False(t, ok)

	fill()
	content := "edited"
	_, err = svc.Update(ctx, 2, models.JournalUpdate{Content: &content})
	require.NoError(t, err)
	_, ok = app.Journals.Get()
	assert.False(t, ok)

	fill()
	require.NoError(t, svc.Delete(ctx, 2))
	_, ok = app.Journals.Get()
	assert.False(t, ok)
}
