// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/validate"
	"github.com/taibuivan/canon/pkg/slice"
	"github.com/taibuivan/canon/pkg/uuid"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = apperr.NotFound(resourceSession)

// # Service Layer

// Service orchestrates the study session lifecycle.
type Service struct {
	repository Repository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new session [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

/*
Start opens a new study session.

Description: Applies defaults (translation ACF, stage observation, status
in_progress), generates a UUIDv7 when no ID is supplied, and stamps every
timestamp server-side.

Returns:
  - *Session: The stored session
  - error: 400 on invalid fields, 409 when the supplied ID is taken
*/
func (service *Service) Start(context context.Context, session *Session) (*Session, error) {
	session.ID = uuid.OrNew(strings.TrimSpace(session.ID))
	applyDefaults(session)

	if err := validateSession(session); err != nil {
		return nil, err
	}

	now := service.now()
	session.LastAccessed = now
	session.CreatedAt = now
	session.UpdatedAt = now

	if err := service.repository.Create(context, session); err != nil {
		return nil, err
	}

	service.logger.Info("session_started",
		slog.String("session_id", session.ID),
		slog.String("book", session.Book),
		slog.Int("chapter", session.Chapter),
	)

	return session, nil
}

// Get returns a session without touching its last-accessed time.
func (service *Service) Get(context context.Context, id string) (*Session, error) {
	return service.repository.FindByID(context, id)
}

/*
Update replaces the mutable fields of a session and refreshes last_accessed.

Description: Last writer wins; there is no version check. CreatedAt is kept
from the stored row.
*/
func (service *Service) Update(context context.Context, id string, session *Session) (*Session, error) {
	existing, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	session.ID = id
	applyDefaults(session)
	if err := validateSession(session); err != nil {
		return nil, err
	}

	now := service.now()
	session.CreatedAt = existing.CreatedAt
	session.LastAccessed = now
	session.UpdatedAt = now

	if err := service.repository.Update(context, session); err != nil {
		return nil, err
	}

	return session, nil
}

// AdvanceStage moves a session to stage and refreshes last_accessed.
func (service *Service) AdvanceStage(context context.Context, id string, stage Stage) (*Session, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldStage, !stage.IsValid(), "Must be one of: "+joinStages())
	if err := validator.Err(); err != nil {
		return nil, err
	}

	session, err := service.repository.UpdateStage(context, id, stage, service.now())
	if err != nil {
		return nil, err
	}

	service.logger.Info("session_stage_changed",
		slog.String("session_id", id),
		slog.String("stage", string(stage)),
	)

	return session, nil
}

// Last returns the most recently accessed session, optionally for one user.
func (service *Service) Last(context context.Context, userID string) (*Session, error) {
	return service.repository.FindLast(context, userID)
}

// InProgress lists open sessions, optionally for one user.
func (service *Service) InProgress(context context.Context, userID string) ([]*Session, error) {
	return service.repository.List(context, Filter{UserID: userID, Status: StatusInProgress})
}

// List returns sessions matching filter.
func (service *Service) List(context context.Context, filter Filter) ([]*Session, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldStatus,
			Message: "Must be one of: in_progress, completed, archived",
		})
	}
	return service.repository.List(context, filter)
}

// Delete removes a session with its notes, highlights and sermons.
func (service *Service) Delete(context context.Context, id string) (DeleteResult, error) {
	result, err := service.repository.Delete(context, id)
	if err != nil {
		return DeleteResult{}, err
	}

	service.logger.Info("session_deleted",
		slog.String("session_id", id),
		slog.Int64("notes", result.Notes),
		slog.Int64("highlights", result.Highlights),
		slog.Int64("sermons", result.Sermons),
	)

	return result, nil
}

/*
Ensure fails with NotFound unless the session exists.

Description: Owned resources (notes, highlights, sermons) call this before
writing so a dangling reference is rejected without touching the store.
*/
func (service *Service) Ensure(context context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}

	exists, err := service.repository.Exists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// # Helpers

func applyDefaults(session *Session) {
	if session.Translation == "" {
		session.Translation = DefaultTranslation
	}
	if session.Stage == "" {
		session.Stage = StageObservation
	}
	if session.Status == "" {
		session.Status = StatusInProgress
	}
	if session.UnresolvedQuestions == nil {
		session.UnresolvedQuestions = []string{}
	}
}

func validateSession(session *Session) error {
	validator := &validate.Validator{}
	validator.
		MaxLen(FieldUserID, session.UserID, 128).
		Required(FieldTranslation, session.Translation).MaxLen(FieldTranslation, session.Translation, 64).
		Required(FieldBook, session.Book).MaxLen(FieldBook, session.Book, 64).
		Positive(FieldChapter, session.Chapter).
		Custom(FieldStage, !session.Stage.IsValid(), "Must be one of: "+joinStages()).
		Custom(FieldStatus, !session.Status.IsValid(), "Must be one of: in_progress, completed, archived")

	if session.VerseRange != nil {
		validator.MaxLen(FieldVerseRange, *session.VerseRange, 64)
	}

	return validator.Err()
}

func joinStages() string {
	return strings.Join(slice.Map(Stages, func(stage Stage) string { return string(stage) }), ", ")
}
