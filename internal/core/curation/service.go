// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package curation

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/validate"
	"github.com/taibuivan/canon/pkg/pagination"
	"github.com/taibuivan/canon/pkg/slice"
	"github.com/taibuivan/canon/pkg/slug"
	"github.com/taibuivan/canon/pkg/uuid"
)

// maxSlugLength caps ids derived from article titles.
const maxSlugLength = 96

// Service implements curated content use cases.
type Service struct {
	repository Repository
	fetcher    Fetcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new curation [Service].
func NewService(repository Repository, fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		fetcher:    fetcher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// List returns one page of content and the unpaged total.
func (service *Service) List(context context.Context, filter Filter, page pagination.Params) ([]*Content, int, error) {
	return service.repository.List(context, filter, page.Limit, page.Offset())
}

func (service *Service) Get(context context.Context, id string) (*Content, error) {
	return service.repository.FindByID(context, id)
}

func (service *Service) Sections(context context.Context) ([]Section, error) {
	return service.repository.Sections(context)
}

func (service *Service) Sources(context context.Context) ([]*Source, error) {
	return service.repository.Sources(context)
}

/*
Create stores a curated item.

Description: Without an ID the slug of the title is used, so items ingested
twice from the same article collide instead of duplicating. Tags are
trimmed, lowercased and deduplicated.

Returns:
  - *Content: The stored item
  - error: 400 on invalid fields, 404 on an unknown source, 409 on a duplicate ID
*/
func (service *Service) Create(context context.Context, content *Content) (*Content, error) {
	content.ID = strings.TrimSpace(content.ID)
	if content.ID == "" {
		content.ID = slug.FromLimit(content.Title, maxSlugLength)
	}
	content.ID = uuid.OrNew(content.ID)

	normalize(content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	content.CreatedAt = service.now()
	if content.PublishedAt.IsZero() {
		content.PublishedAt = content.CreatedAt
	}

	if err := service.repository.Create(context, content); err != nil {
		return nil, err
	}

	service.logger.Info("curated_content_created",
		slog.String("content_id", content.ID),
		slog.String("section", content.Section),
	)
	return content, nil
}

// Update replaces a curated item, keeping its created_at.
func (service *Service) Update(context context.Context, id string, content *Content) (*Content, error) {
	existing, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	content.ID = existing.ID
	normalize(content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	content.CreatedAt = existing.CreatedAt
	if content.PublishedAt.IsZero() {
		content.PublishedAt = existing.PublishedAt
	}

	if err := service.repository.Update(context, content); err != nil {
		return nil, err
	}

	service.logger.Info("curated_content_updated", slog.String("content_id", content.ID))
	return content, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}
	service.logger.Info("curated_content_deleted", slog.String("content_id", id))
	return nil
}

/*
IngestURL fetches a web page, extracts the article and stores it.

Description: Title, byline, site name and excerpt come from readability;
the item is filed under the given section and source.
*/
func (service *Service) IngestURL(context context.Context, ingest Ingest) (*Content, error) {
	ingest.URL = strings.TrimSpace(ingest.URL)

	validator := &validate.Validator{}
	validator.
		URL(FieldURL, ingest.URL).
		Required(FieldSection, strings.TrimSpace(ingest.Section))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	pageURL, err := url.Parse(ingest.URL)
	if err != nil {
		return nil, apperr.BadRequest("Malformed page URL")
	}

	body, err := service.fetcher.Fetch(context, ingest.URL)
	if err != nil {
		return nil, apperr.ServiceUnavailable("Page could not be fetched", err)
	}

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, apperr.BadRequest(fmt.Sprintf("No article could be extracted: %v", err))
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		return nil, apperr.BadRequest("Extracted article has no title")
	}

	content := &Content{
		Section:       ingest.Section,
		Title:         title,
		Author:        optional(article.Byline),
		Institution:   optional(article.SiteName),
		Tags:          ingest.Tags,
		MaterialLevel: ingest.MaterialLevel,
		Abstract:      optional(article.Excerpt),
		URL:           &ingest.URL,
		SourceID:      optional(ingest.SourceID),
	}

	created, err := service.Create(context, content)
	if err != nil {
		return nil, err
	}

	service.logger.Info("curated_content_ingested",
		slog.String("content_id", created.ID),
		slog.String("url", ingest.URL),
		slog.Int("text_length", len(article.TextContent)),
	)
	return created, nil
}

// # Helpers

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func normalize(content *Content) {
	content.Section = strings.TrimSpace(content.Section)
	content.Title = strings.TrimSpace(content.Title)
	content.MaterialLevel = strings.ToLower(strings.TrimSpace(content.MaterialLevel))

	tags := slice.Map(content.Tags, func(tag string) string { return strings.ToLower(strings.TrimSpace(tag)) })
	content.Tags = slice.Unique(slice.Filter(tags, func(tag string) bool { return tag != "" }))
	if content.Tags == nil {
		content.Tags = []string{}
	}

	if content.SourceID != nil {
		content.SourceID = optional(*content.SourceID)
	}
}

func validateContent(content *Content) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldSection, content.Section).MaxLen(FieldSection, content.Section, 100).
		Required(FieldTitle, content.Title).MaxLen(FieldTitle, content.Title, 500)

	if content.MaterialLevel != "" {
		validator.OneOf(FieldMaterialLevel, content.MaterialLevel, MaterialLevels...)
	}
	if content.URL != nil {
		validator.URL(FieldURL, *content.URL)
	}
	return validator.Err()
}
