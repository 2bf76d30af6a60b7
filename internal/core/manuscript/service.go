// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manuscript

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/validate"
	"github.com/taibuivan/canon/pkg/slice"
)

// Service implements the textual-criticism queries.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new manuscript [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

func (service *Service) List(context context.Context, testament Testament) ([]*Manuscript, error) {
	return service.repository.List(context, testament)
}

func (service *Service) Get(context context.Context, id string) (*Manuscript, error) {
	return service.repository.FindByID(context, id)
}

// Verses returns a manuscript's text, 404 for an unknown manuscript.
func (service *Service) Verses(context context.Context, id, book string, chapter *int) ([]*Verse, error) {
	if _, err := service.repository.FindByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.Verses(context, id, book, chapter)
}

/*
Compare lines up the witnesses of one verse with the variants recorded there.

Parameters:
  - manuscriptIDs: []string (empty compares every witness of the verse)

Returns:
  - *Comparison: Readings and variants, both possibly empty
  - error: 400 for an invalid location, 404 for an unknown manuscript
*/
func (service *Service) Compare(context context.Context, book string, chapter, verse int, manuscriptIDs []string) (*Comparison, error) {
	book = strings.TrimSpace(book)

	validator := &validate.Validator{}
	validator.
		Required(FieldBook, book).
		Positive(FieldChapter, chapter).
		Positive(FieldVerse, verse)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	for _, id := range manuscriptIDs {
		if _, err := service.repository.FindByID(context, id); err != nil {
			return nil, err
		}
	}

	readings, err := service.repository.Readings(context, book, chapter, verse, manuscriptIDs)
	if err != nil {
		return nil, err
	}

	variants, err := service.repository.Variants(context, VariantFilter{Book: book, Chapter: &chapter, Verse: &verse})
	if err != nil {
		return nil, err
	}
	if len(manuscriptIDs) > 0 {
		variants = slice.Filter(variants, func(variant *Variant) bool {
			return slices.Contains(manuscriptIDs, variant.ManuscriptID)
		})
	}
	if variants == nil {
		variants = []*Variant{}
	}

	return &Comparison{Book: book, Chapter: chapter, Verse: verse, Readings: readings, Variants: variants}, nil
}

// Variants lists recorded variants; the testament filter uses the fixed book lists.
func (service *Service) Variants(context context.Context, filter VariantFilter) ([]*Variant, error) {
	variants, err := service.repository.Variants(context, filter)
	if err != nil {
		return nil, err
	}

	kept := slice.Filter(variants, func(variant *Variant) bool {
		return InTestament(variant.Book, filter.Testament)
	})
	if kept == nil {
		kept = []*Variant{}
	}
	return kept, nil
}

// Analytics summarises the variants matching filter.
func (service *Service) Analytics(context context.Context, filter VariantFilter) (Analytics, error) {
	variants, err := service.repository.Variants(context, VariantFilter{Book: filter.Book, Chapter: filter.Chapter})
	if err != nil {
		return Analytics{}, err
	}

	analytics := Summarize(variants, filter.Testament)
	service.logger.Debug("variant_analytics",
		slog.String("testament", string(filter.Testament)),
		slog.String("book", filter.Book),
		slog.Int("total", analytics.TotalVariants),
	)
	return analytics, nil
}

// testamentParam parses the testament query value into a 400 on failure.
func testamentParam(value string) (Testament, error) {
	testament, err := ParseTestament(value)
	if err != nil {
		return "", apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldTestament,
			Message: "Must be one of: OT, NT",
		})
	}
	return testament, nil
}
