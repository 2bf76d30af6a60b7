// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/canon/internal/platform/validate"
	"github.com/taibuivan/canon/pkg/uuid"
)

// Service implements note use cases.
type Service struct {
	repository Repository
	sessions   SessionChecker
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new note [Service].
func NewService(repository Repository, sessions SessionChecker, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		sessions:   sessions,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

/*
Save creates or replaces a note.

Description: The owning session is checked before anything is written. A
client-supplied ID overwrites the stored note of that ID; created_at keeps
the client value when given and defaults to now otherwise.

Returns:
  - *Note: The stored note
  - error: 400 on invalid fields, 404 when the session does not exist
*/
func (service *Service) Save(context context.Context, note *Note) (*Note, error) {
	note.ID = uuid.OrNew(strings.TrimSpace(note.ID))
	note.Source = strings.TrimSpace(note.Source)

	validator := &validate.Validator{}
	validator.
		Required(FieldSessionID, note.SessionID).
		Required(FieldSource, note.Source).MaxLen(FieldSource, note.Source, 64).
		MaxLen(FieldContent, note.Content, 20000)
	if note.Context != nil {
		validator.MaxLen(FieldContext, *note.Context, 2000)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.sessions.Ensure(context, note.SessionID); err != nil {
		return nil, err
	}

	now := service.now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	if err := service.repository.Upsert(context, note); err != nil {
		return nil, err
	}

	service.logger.Info("note_saved",
		slog.String("note_id", note.ID),
		slog.String("session_id", note.SessionID),
		slog.String("source", note.Source),
	)

	return note, nil
}

// Get returns a note by ID.
func (service *Service) Get(context context.Context, id string) (*Note, error) {
	return service.repository.FindByID(context, id)
}

// List returns notes matching filter, newest first.
func (service *Service) List(context context.Context, filter Filter) ([]*Note, error) {
	return service.repository.List(context, filter)
}

// Delete removes a note.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}
	service.logger.Info("note_deleted", slog.String("note_id", id))
	return nil
}
