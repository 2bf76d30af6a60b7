// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bible

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

// romans3 mirrors the seeded ACF Romans 3:21-26 passage, inserted out of order.
var romans3 = []VerseRecord{
	{Book: "Romans", Chapter: 3, Verse: 24, Text: "Sendo justificados gratuitamente pela sua graça"},
	{Book: "Romans", Chapter: 3, Verse: 21, Text: "Mas agora se manifestou, sem a lei, a justiça de Deus"},
	{Book: "Romans", Chapter: 3, Verse: 26, Text: "Para demonstração da sua justiça neste tempo presente"},
	{Book: "Romans", Chapter: 3, Verse: 22, Text: "Isto é, a justiça de Deus pela fé em Jesus Cristo"},
	{Book: "Romans", Chapter: 3, Verse: 25, Text: "Ao qual Deus propôs para propiciação pela fé no seu sangue"},
	{Book: "Romans", Chapter: 3, Verse: 23, Text: "Porque todos pecaram e destituídos estão da glória de Deus"},
}

func newTestService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repository := newFakeRepository()
	return NewService(repository, slog.Default()), repository
}

func TestResolveChapter_NormalizedWinsOverDocument(t *testing.T) {
	service, repository := newTestService(t)
	ctx := context.Background()

	_, err := repository.UpsertVerses(ctx, "ACF", romans3)
	require.NoError(t, err)

	// A conflicting document under the same identifier must be ignored.
	_, err = service.SaveTranslation(ctx, &Translation{
		ID: "ACF", Name: "Almeida Corrigida Fiel", Abbreviation: "ACF",
		Data: json.RawMessage(`{"books":{"Romans":{"3":[{"number":1,"text":"wrong"}]}}}`),
	})
	require.NoError(t, err)

	chapter, err := service.ResolveChapter(ctx, "ACF", "Romans", 3)
	require.NoError(t, err)
	assert.Equal(t, SourceNormalized, chapter.Source)

	var verses []Verse
	require.NoError(t, json.Unmarshal(chapter.Verses, &verses))
	require.Len(t, verses, 6)
	for index, verse := range verses {
		assert.Equal(t, 21+index, verse.Number)
	}
}

func TestResolveChapter_DocumentFallback(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.SaveTranslation(ctx, &Translation{
		ID: "kjv-1769", Name: "King James Version", Abbreviation: "KJV",
		Data: json.RawMessage(`{"books":[{"name":"Mark","chapters":[{"number":1,"verses":[{"number":1,"text":"The beginning"}]}]}]}`),
	})
	require.NoError(t, err)

	// Abbreviation resolves the same document as the id.
	for _, reference := range []string{"kjv-1769", "KJV"} {
		chapter, err := service.ResolveChapter(ctx, reference, "Mark", 1)
		require.NoError(t, err)
		assert.Equal(t, SourceDocument, chapter.Source)
		assert.Equal(t, reference, chapter.Translation)
		assert.JSONEq(t, `[{"number":1,"text":"The beginning"}]`, string(chapter.Verses))
	}
}

func TestResolveChapter_NotFound(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.ResolveChapter(ctx, "NVI", "John", 3)
	require.Error(t, err)
	assert.Equal(t, "Translation not found", err.Error())

	_, err = service.SaveTranslation(ctx, &Translation{
		ID: "NVI", Name: "Nova Versão Internacional", Abbreviation: "NVI",
		Data: json.RawMessage(`{"books":{"John":{"1":[]}}}`),
	})
	require.NoError(t, err)

	_, err = service.ResolveChapter(ctx, "NVI", "Acts", 1)
	assert.Equal(t, "Book not found", err.Error())

	_, err = service.ResolveChapter(ctx, "NVI", "John", 3)
	assert.Equal(t, "Chapter not found", err.Error())
	assert.True(t, apperr.IsNotFound(err))
}

func TestResolveChapter_Validation(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ResolveChapter(context.Background(), "ACF", "Romans", 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
}

func TestResolveChapter_StoreFailurePropagates(t *testing.T) {
	service, repository := newTestService(t)
	repository.failWith = apperr.Internal(errors.New("connection reset"))

	_, err := service.ResolveChapter(context.Background(), "ACF", "Romans", 3)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperr.As(err).HTTPStatus)
}

func TestSaveTranslation_Validation(t *testing.T) {
	tests := []struct {
		name        string
		translation Translation
		field       string
	}{
		{"missing id", Translation{Name: "X", Abbreviation: "X", Data: json.RawMessage(`{}`)}, FieldID},
		{"missing name", Translation{ID: "x", Abbreviation: "X", Data: json.RawMessage(`{}`)}, FieldName},
		{"array data", Translation{ID: "x", Name: "X", Abbreviation: "X", Data: json.RawMessage(`[]`)}, FieldData},
		{"missing data", Translation{ID: "x", Name: "X", Abbreviation: "X"}, FieldData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repository := newTestService(t)
			_, err := service.SaveTranslation(context.Background(), &tt.translation)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			require.NotEmpty(t, appError.Details)
			assert.Equal(t, tt.field, appError.Details[0].Field)
			assert.Empty(t, repository.translations)
		})
	}
}

func TestSaveTranslation_ReplacesWholesale(t *testing.T) {
	service, repository := newTestService(t)
	ctx := context.Background()

	_, err := service.SaveTranslation(ctx, &Translation{ID: "ARA", Name: "Old", Abbreviation: "ARA", Data: json.RawMessage(`{"books":{}}`)})
	require.NoError(t, err)
	summary, err := service.SaveTranslation(ctx, &Translation{ID: "ARA", Name: "Almeida Revista e Atualizada", Abbreviation: "ARA", Data: json.RawMessage(`{"books":[]}`)})
	require.NoError(t, err)

	assert.Equal(t, "Almeida Revista e Atualizada", summary.Name)
	assert.False(t, summary.CreatedAt.IsZero())
	require.Len(t, repository.translations, 1)
	assert.JSONEq(t, `{"books":[]}`, string(repository.translations["ARA"].Data))
}

func TestImportVerses_RejectsIncompleteBatch(t *testing.T) {
	service, repository := newTestService(t)

	_, err := service.ImportVerses(context.Background(), "ACF", []VerseRecord{
		{Book: "Genesis", Chapter: 1, Verse: 1, Text: "No princípio"},
		{Book: "Genesis", Chapter: 1, Verse: 0, Text: "bad"},
	})
	require.Error(t, err)
	assert.Equal(t, "verses[1].verse", apperr.As(err).Details[0].Field)
	assert.Empty(t, repository.verses)
}
