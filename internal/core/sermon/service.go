// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/constants"
	"github.com/taibuivan/canon/internal/platform/objectstore"
	"github.com/taibuivan/canon/internal/platform/sec"
	"github.com/taibuivan/canon/internal/platform/validate"
	"github.com/taibuivan/canon/pkg/slug"
	"github.com/taibuivan/canon/pkg/uuid"
)

const (
	// tokenBytes is the entropy of a download token.
	tokenBytes = 24

	maxFilenameLength = 80
)

// Service implements sermon use cases.
type Service struct {
	repository Repository
	sessions   SessionChecker
	links      LinkStore
	archive    objectstore.Store
	exportTTL  time.Duration
	logger     *slog.Logger
	now        func() time.Time
	token      func() (string, error)
}

// NewService constructs a new sermon [Service].
func NewService(repository Repository, sessions SessionChecker, links LinkStore, archive objectstore.Store, exportTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		sessions:   sessions,
		links:      links,
		archive:    archive,
		exportTTL:  exportTTL,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
		token:      func() (string, error) { return sec.GenerateSecureToken(tokenBytes) },
	}
}

/*
Create stores a new sermon for an existing session.

Returns:
  - *Sermon: The stored sermon
  - error: 400 on invalid fields, 404 when the session does not exist, 409 on a duplicate ID
*/
func (service *Service) Create(context context.Context, sermon *Sermon) (*Sermon, error) {
	sermon.ID = uuid.OrNew(strings.TrimSpace(sermon.ID))
	normalize(sermon)

	if err := validateSermon(sermon); err != nil {
		return nil, err
	}
	if err := service.sessions.Ensure(context, sermon.SessionID); err != nil {
		return nil, err
	}

	now := service.now()
	sermon.CreatedAt = now
	sermon.UpdatedAt = now

	if err := service.repository.Create(context, sermon); err != nil {
		return nil, err
	}

	service.logger.Info("sermon_created",
		slog.String("sermon_id", sermon.ID),
		slog.String("session_id", sermon.SessionID),
	)

	return sermon, nil
}

func (service *Service) Get(context context.Context, id string) (*Sermon, error) {
	return service.repository.FindByID(context, id)
}

// List returns sermons, optionally of one session, newest first.
func (service *Service) List(context context.Context, sessionID string) ([]*Sermon, error) {
	return service.repository.List(context, strings.TrimSpace(sessionID))
}

/*
Update replaces the outline of an existing sermon.

Description: The body replaces every field except created_at. An omitted
export keeps the record of the last export.
*/
func (service *Service) Update(context context.Context, id string, sermon *Sermon) (*Sermon, error) {
	existing, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	sermon.ID = existing.ID
	normalize(sermon)
	if err := validateSermon(sermon); err != nil {
		return nil, err
	}
	if err := service.sessions.Ensure(context, sermon.SessionID); err != nil {
		return nil, err
	}

	if len(sermon.Export) == 0 {
		sermon.Export = existing.Export
	}
	sermon.CreatedAt = existing.CreatedAt
	sermon.UpdatedAt = service.now()

	if err := service.repository.Update(context, sermon); err != nil {
		return nil, err
	}

	service.logger.Info("sermon_updated", slog.String("sermon_id", sermon.ID))
	return sermon, nil
}

// Delete removes a sermon.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}
	service.logger.Info("sermon_deleted", slog.String("sermon_id", id))
	return nil
}

/*
Export renders the sermon manuscript and issues a download token.

Description: The Markdown is archived under sermons/<id>.md when object
storage is enabled. The token resolves to the manuscript until the export
TTL elapses; the export record is stored on the sermon row.

Returns:
  - *Export: Token, download path and expiry
  - error: 404 when the sermon does not exist
*/
func (service *Service) Export(context context.Context, id string) (*Export, error) {
	sermon, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	markdown := RenderMarkdown(sermon)

	token, err := service.token()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	filename := slug.FromLimit(sermon.Title, maxFilenameLength)
	if filename == "" {
		filename = "sermon"
	}
	filename += ".md"

	now := service.now()
	export := &Export{
		Format:     FormatMarkdown,
		Filename:   filename,
		Token:      token,
		Download:   "/api/sermons/exports/" + token,
		ExportedAt: now,
		ExpiresAt:  now.Add(service.exportTTL),
	}

	if service.archive.Enabled() {
		key := constants.ObjectPrefixSermon + sermon.ID + ".md"
		if err := service.archive.Put(context, key, "text/markdown; charset=utf-8", []byte(markdown)); err != nil {
			return nil, apperr.Internal(fmt.Errorf("archive sermon %s: %w", sermon.ID, err))
		}
		export.ArchiveKey = &key
	}

	link := &Link{SermonID: sermon.ID, Filename: filename, Markdown: markdown}
	if err := service.links.Save(context, token, link, service.exportTTL); err != nil {
		return nil, apperr.ServiceUnavailable("Export links are unavailable", err)
	}

	record, err := json.Marshal(export)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := service.repository.SetExport(context, sermon.ID, record, now); err != nil {
		// The link must not outlive a failed export.
		if revokeErr := service.links.Delete(context, token); revokeErr != nil {
			service.logger.Warn("sermon_export_link_revoke_failed",
				slog.String("sermon_id", sermon.ID),
				slog.Any("error", revokeErr),
			)
		}
		return nil, err
	}

	service.logger.Info("sermon_exported",
		slog.String("sermon_id", sermon.ID),
		slog.String("filename", filename),
		slog.Time("expires_at", export.ExpiresAt),
	)

	return export, nil
}

// Download resolves a download token to its manuscript. 404 after expiry.
func (service *Service) Download(context context.Context, token string) (*Link, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperr.NotFound("Export link")
	}
	return service.links.Load(context, token)
}

// # Helpers

func normalize(sermon *Sermon) {
	sermon.SessionID = strings.TrimSpace(sermon.SessionID)
	sermon.Title = strings.TrimSpace(sermon.Title)

	if sermon.Outline == nil {
		sermon.Outline = []Division{}
	}
	if sermon.Applications == nil {
		sermon.Applications = []Application{}
	}
	for index := range sermon.Outline {
		sermon.Outline[index].ID = uuid.OrNew(sermon.Outline[index].ID)
		if sermon.Outline[index].Points == nil {
			sermon.Outline[index].Points = []string{}
		}
	}
	for index := range sermon.Applications {
		sermon.Applications[index].ID = uuid.OrNew(sermon.Applications[index].ID)
	}
}

func validateSermon(sermon *Sermon) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldSessionID, sermon.SessionID).
		Required(FieldTitle, sermon.Title).MaxLen(FieldTitle, sermon.Title, 300).
		MaxLen(FieldCentralIdea, sermon.CentralIdea, 2000)

	for _, division := range sermon.Outline {
		validator.Custom(FieldOutline, strings.TrimSpace(division.Title) == "", "Every division needs a title")
	}
	for _, application := range sermon.Applications {
		validator.Custom(FieldApplications, strings.TrimSpace(application.Title) == "", "Every application needs a title")
	}
	validator.Custom(FieldExport, len(sermon.Export) > 0 && !json.Valid(sermon.Export), "Must be valid JSON")

	return validator.Err()
}
