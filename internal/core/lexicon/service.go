// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/constants"
	"github.com/taibuivan/canon/internal/platform/objectstore"
	"github.com/taibuivan/canon/internal/platform/validate"
	"github.com/taibuivan/canon/pkg/uuid"
)

// Service implements lexicon import and lookup.
type Service struct {
	repository Repository
	archive    objectstore.Store
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new lexicon [Service].
func NewService(repository Repository, archive objectstore.Store, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		archive:    archive,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

/*
Import parses an uploaded document and stores the lexicon with its entries.

Description: The document is archived under lexicons/<id>.json when object
storage is enabled, then the lexicon and every entry are inserted in one
transaction.

Returns:
  - *Lexicon: The stored lexicon with its entry count
  - error: 400 for invalid metadata or document content
*/
func (service *Service) Import(context context.Context, upload Upload) (*Lexicon, error) {
	upload.Name = strings.TrimSpace(upload.Name)
	upload.Language = Language(strings.ToLower(strings.TrimSpace(string(upload.Language))))

	validator := &validate.Validator{}
	validator.
		Required(FieldName, upload.Name).MaxLen(FieldName, upload.Name, 200).
		OneOf(FieldLanguage, string(upload.Language), Languages...).
		MaxLen(FieldSource, upload.Source, 500)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entries, err := ParseEntries(upload.Document)
	if err != nil {
		return nil, err
	}

	lexicon := &Lexicon{
		ID:         uuid.New(),
		Name:       upload.Name,
		Language:   upload.Language,
		Source:     strings.TrimSpace(upload.Source),
		EntryCount: len(entries),
		CreatedAt:  service.now(),
	}
	for index := range entries {
		entries[index].ID = uuid.New()
		entries[index].LexiconID = lexicon.ID
	}

	if service.archive.Enabled() {
		key := constants.ObjectPrefixLexicon + lexicon.ID + ".json"
		if err := service.archive.Put(context, key, "application/json", upload.Document); err != nil {
			return nil, apperr.Internal(fmt.Errorf("archive lexicon %s: %w", lexicon.ID, err))
		}
		lexicon.ArchiveKey = &key
	}

	if err := service.repository.Create(context, lexicon, entries); err != nil {
		return nil, err
	}

	service.logger.Info("lexicon_imported",
		slog.String("lexicon_id", lexicon.ID),
		slog.String("language", string(lexicon.Language)),
		slog.Int("entries", lexicon.EntryCount),
	)

	return lexicon, nil
}

func (service *Service) List(context context.Context) ([]*Lexicon, error) {
	return service.repository.List(context)
}

func (service *Service) Get(context context.Context, id string) (*Lexicon, error) {
	return service.repository.FindByID(context, id)
}

// Entries returns the entries of a lexicon, 404 when the lexicon is unknown.
func (service *Service) Entries(context context.Context, id string) ([]*Entry, error) {
	if _, err := service.repository.FindByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.Entries(context, id)
}

// Delete removes a lexicon. The archived document is kept.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}
	service.logger.Info("lexicon_deleted", slog.String("lexicon_id", id))
	return nil
}

/*
Lookup finds entries for a word across lexicons.

Description: Matching is exact on the NFC-normalised, lower-cased word,
lemma or transliteration. language narrows the search when set.
*/
func (service *Service) Lookup(context context.Context, word string, language Language) ([]*Entry, error) {
	language = Language(strings.ToLower(strings.TrimSpace(string(language))))

	validator := &validate.Validator{}
	validator.Required(FieldWord, word)
	if language != "" {
		validator.OneOf(FieldLanguage, string(language), Languages...)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repository.Lookup(context, Key(word), language)
}

// CountHits counts entries matching any word of text.
func (service *Service) CountHits(context context.Context, text string, language Language) (int, error) {
	return service.repository.CountMatches(context, QueryKeys(text), language)
}
