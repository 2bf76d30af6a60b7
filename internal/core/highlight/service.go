// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package highlight

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/canon/internal/platform/validate"
	"github.com/taibuivan/canon/pkg/uuid"
)

// Service implements highlight use cases.
type Service struct {
	repository Repository
	sessions   SessionChecker
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new highlight [Service].
func NewService(repository Repository, sessions SessionChecker, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		sessions:   sessions,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

/*
Create marks a span of a verse.

Returns:
  - *Highlight: The stored highlight
  - error: 400 on invalid fields, 404 when the session does not exist
*/
func (service *Service) Create(context context.Context, highlight *Highlight) (*Highlight, error) {
	highlight.ID = uuid.OrNew(strings.TrimSpace(highlight.ID))

	validator := &validate.Validator{}
	validator.
		Required(FieldSessionID, highlight.SessionID).
		Positive(FieldVerse, highlight.Verse).
		NonNegative(FieldStartOffset, highlight.StartOffset).
		Custom(FieldEndOffset, highlight.EndOffset < highlight.StartOffset, "Must not be before start_offset").
		MaxLen(FieldText, highlight.Text, 2000).
		OneOf(FieldColor, string(highlight.Color), Colors...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.sessions.Ensure(context, highlight.SessionID); err != nil {
		return nil, err
	}

	highlight.CreatedAt = service.now()
	if err := service.repository.Create(context, highlight); err != nil {
		return nil, err
	}

	service.logger.Info("highlight_created",
		slog.String("highlight_id", highlight.ID),
		slog.String("session_id", highlight.SessionID),
		slog.Int("verse", highlight.Verse),
	)

	return highlight, nil
}

func (service *Service) Get(context context.Context, id string) (*Highlight, error) {
	return service.repository.FindByID(context, id)
}

func (service *Service) List(context context.Context, filter Filter) ([]*Highlight, error) {
	return service.repository.List(context, filter)
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}
	service.logger.Info("highlight_deleted", slog.String("highlight_id", id))
	return nil
}
