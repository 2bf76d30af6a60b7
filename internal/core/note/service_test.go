// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

func newTestService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repository := newFakeRepository()
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	service := NewService(repository, fakeSessions{"s-1": true}, slog.Default())
	service.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	return service, repository
}

func TestSave_RequiresExistingSession(t *testing.T) {
	service, repository := newTestService(t)

	_, err := service.Save(context.Background(), &Note{SessionID: "ghost", Source: "observation", Content: "x"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Study session not found", err.Error())
	assert.Empty(t, repository.notes)
}

func TestSave_ReplacesWholeNote(t *testing.T) {
	service, repository := newTestService(t)
	ctx := context.Background()

	first, err := service.Save(ctx, &Note{SessionID: "s-1", Source: "observation", Content: "first", Pinned: true})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	// A replacement without context or pin clears both.
	replaced, err := service.Save(ctx, &Note{ID: first.ID, SessionID: "s-1", Source: "grammar", Content: "second"})
	require.NoError(t, err)

	stored := repository.notes[first.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "second", stored.Content)
	assert.Equal(t, "grammar", stored.Source)
	assert.False(t, stored.Pinned)
	assert.Len(t, repository.notes, 1)
	assert.True(t, replaced.UpdatedAt.After(first.UpdatedAt))
}

func TestSave_KeepsClientCreatedAt(t *testing.T) {
	service, _ := newTestService(t)
	createdAt := time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)

	note, err := service.Save(context.Background(), &Note{
		SessionID: "s-1", Source: "semantics", Content: "logos", CreatedAt: createdAt,
	})
	require.NoError(t, err)
	assert.Equal(t, createdAt, note.CreatedAt)
}

func TestSave_Validation(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name  string
		note  Note
		field string
	}{
		{"missing session", Note{Source: "observation"}, FieldSessionID},
		{"missing source", Note{SessionID: "s-1", Source: "  "}, FieldSource},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			note := tc.note
			_, err := service.Save(context.Background(), &note)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Equal(t, tc.field, appErr.Details[0].Field)
		})
	}
}

func TestList_NewestFirstWithFilters(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	for _, note := range []Note{
		{SessionID: "s-1", Source: "observation", Content: "one"},
		{SessionID: "s-1", Source: "grammar", Content: "two", Pinned: true},
		{SessionID: "s-1", Source: "observation", Content: "three"},
	} {
		_, err := service.Save(ctx, &note)
		require.NoError(t, err)
	}

	notes, err := service.List(ctx, Filter{SessionID: "s-1"})
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "three", notes[0].Content)
	assert.Equal(t, "one", notes[2].Content)

	observation, err := service.List(ctx, Filter{Source: "observation"})
	require.NoError(t, err)
	assert.Len(t, observation, 2)

	pinned := true
	pinnedNotes, err := service.List(ctx, Filter{Pinned: &pinned})
	require.NoError(t, err)
	require.Len(t, pinnedNotes, 1)
	assert.Equal(t, "two", pinnedNotes[0].Content)
}

func TestDelete(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	note, err := service.Save(ctx, &Note{SessionID: "s-1", Source: "theology", Content: "grace"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, note.ID))
	assert.True(t, apperr.IsNotFound(service.Delete(ctx, note.ID)))

	_, err = service.Get(ctx, note.ID)
	assert.True(t, apperr.IsNotFound(err))
}
