// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/canon/internal/core/highlight"
	"github.com/taibuivan/canon/internal/core/lexicon"
	"github.com/taibuivan/canon/internal/core/note"
	"github.com/taibuivan/canon/internal/platform/validate"
)

// Service gathers the counts behind an assistant answer.
type Service struct {
	notes      NoteLister
	highlights HighlightLister
	lexicons   LexiconCounter
	logger     *slog.Logger
}

// NewService constructs a new assistant [Service].
func NewService(notes NoteLister, highlights HighlightLister, lexicons LexiconCounter, logger *slog.Logger) *Service {
	return &Service{notes: notes, highlights: highlights, lexicons: lexicons, logger: logger}
}

/*
Ask answers a query.

Description: Notes and highlights are counted for the session in context,
zero without one. Lexicon hits count entries matching any word of the query,
restricted to the context language when given.

Returns:
  - *Answer: The composed reply
  - error: 400 on an unknown language or an oversized query
*/
func (service *Service) Ask(context context.Context, query Query) (*Answer, error) {
	query.Query = strings.TrimSpace(query.Query)
	query.Context.SessionID = strings.TrimSpace(query.Context.SessionID)
	query.Context.Language = lexicon.Language(strings.ToLower(strings.TrimSpace(string(query.Context.Language))))

	validator := &validate.Validator{}
	validator.MaxLen(FieldQuery, query.Query, 2000)
	if query.Context.Language != "" {
		validator.OneOf(FieldLanguage, string(query.Context.Language), lexicon.Languages...)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var counts Counts

	if sessionID := query.Context.SessionID; sessionID != "" {
		notes, err := service.notes.List(context, note.Filter{SessionID: sessionID})
		if err != nil {
			return nil, err
		}
		highlights, err := service.highlights.List(context, highlight.Filter{SessionID: sessionID})
		if err != nil {
			return nil, err
		}
		counts.Notes, counts.Highlights = len(notes), len(highlights)
	}

	if query.Query != "" {
		hits, err := service.lexicons.CountHits(context, query.Query, query.Context.Language)
		if err != nil {
			return nil, err
		}
		counts.LexiconHits = hits
	}

	answer := Compose(query, counts)

	service.logger.Debug("assistant_answered",
		slog.String("session_id", query.Context.SessionID),
		slog.Bool("warned", answer.Warning != ""),
		slog.Int("lexicon_hits", counts.LexiconHits),
	)

	return &answer, nil
}
