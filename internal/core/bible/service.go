// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/validate"
)

// # Service Layer

// Service orchestrates translation management and chapter resolution.
type Service struct {
	repository Repository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// # Translations

// ListTranslations returns every stored translation summary.
func (service *Service) ListTranslations(context context.Context) ([]TranslationSummary, error) {
	return service.repository.ListTranslations(context)
}

/*
SaveTranslation creates or wholesale replaces a translation document.

Parameters:
  - context: context.Context
  - translation: *Translation (ID, Name, Abbreviation, Data required)

Returns:
  - TranslationSummary: The stored translation without its document
  - error: 400 when a field is missing or Data is not a JSON object
*/
func (service *Service) SaveTranslation(context context.Context, translation *Translation) (TranslationSummary, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldID, translation.ID).MaxLen(FieldID, translation.ID, 64).
		Required(FieldName, translation.Name).MaxLen(FieldName, translation.Name, 200).
		Required(FieldAbbreviation, translation.Abbreviation).MaxLen(FieldAbbreviation, translation.Abbreviation, 32).
		Custom(FieldData, !isObject(translation.Data), "Must be a JSON object")

	if err := validator.Err(); err != nil {
		return TranslationSummary{}, err
	}

	translation.CreatedAt = service.now()
	if err := service.repository.UpsertTranslation(context, translation); err != nil {
		return TranslationSummary{}, err
	}

	service.logger.Info("translation_saved",
		slog.String("translation_id", translation.ID),
		slog.Int("document_bytes", len(translation.Data)),
	)

	return translation.Summary(), nil
}

// GetTranslation returns the stored document of a translation.
func (service *Service) GetTranslation(context context.Context, id string) (json.RawMessage, error) {
	translation, err := service.repository.FindTranslation(context, id)
	if err != nil {
		return nil, err
	}
	return translation.Data, nil
}

// DeleteTranslation removes a translation document. Normalized verses stay.
func (service *Service) DeleteTranslation(context context.Context, id string) error {
	if err := service.repository.DeleteTranslation(context, id); err != nil {
		return err
	}

	service.logger.Info("translation_deleted", slog.String("translation_id", id))
	return nil
}

// # Chapter Resolution

/*
ResolveChapter returns the verses of one chapter.

Description: The normalized verse table answers first and unconditionally.
Only when it holds no rows for the chapter is the translation document
loaded (matched by ID, then abbreviation) and traversed with
[ResolveDocument].

Parameters:
  - context: context.Context
  - translation: string (Translation ID or abbreviation)
  - book: string (Exact book name)
  - chapter: int (1-based)

Returns:
  - *Chapter: Verses plus the source that produced them
  - error: NotFound for a missing translation, book, or chapter
*/
func (service *Service) ResolveChapter(context context.Context, translation, book string, chapter int) (*Chapter, error) {
	validator := &validate.Validator{}
	validator.Required(FieldBook, book).Positive(FieldChapter, chapter)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	result := &Chapter{Translation: translation, Book: book, Chapter: chapter}

	// 1. Normalized rows are authoritative
	verses, err := service.repository.ChapterVerses(context, translation, book, chapter)
	if err != nil {
		return nil, err
	}

	if len(verses) > 0 {
		encoded, err := json.Marshal(verses)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("bible: encode verses: %w", err))
		}
		result.Source = SourceNormalized
		result.Verses = encoded
		return result, nil
	}

	// 2. Fall back to the uploaded document
	document, err := service.repository.FindTranslationByReference(context, translation)
	if err != nil {
		return nil, err
	}

	raw, err := ResolveDocument(document.Data, book, chapter)
	if err != nil {
		return nil, err
	}

	service.logger.Debug("chapter_resolved_from_document",
		slog.String("translation", translation),
		slog.String("book", book),
		slog.Int("chapter", chapter),
	)

	result.Source = SourceDocument
	result.Verses = raw
	return result, nil
}

// # Normalized Verses

/*
ImportVerses bulk upserts normalized verses for a translation.

Returns:
  - int: Number of verses written
  - error: 400 when any record is incomplete; nothing is written in that case
*/
func (service *Service) ImportVerses(context context.Context, translation string, verses []VerseRecord) (int, error) {
	validator := &validate.Validator{}
	validator.Required("translation", translation)

	for index, verse := range verses {
		prefix := fmt.Sprintf("verses[%d].", index)
		validator.
			Required(prefix+FieldBook, verse.Book).
			Positive(prefix+FieldChapter, verse.Chapter).
			Positive(prefix+FieldVerse, verse.Verse).
			Required(prefix+FieldText, verse.Text)
	}

	if err := validator.Err(); err != nil {
		return 0, err
	}

	written, err := service.repository.UpsertVerses(context, translation, verses)
	if err != nil {
		return 0, err
	}

	service.logger.Info("verses_imported",
		slog.String("translation", translation),
		slog.Int("count", written),
	)

	return written, nil
}

// ListBooks returns the books present in the normalized table.
func (service *Service) ListBooks(context context.Context, translation string) ([]BookSummary, error) {
	return service.repository.ListBooks(context, translation)
}
