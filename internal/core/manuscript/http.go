// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manuscript

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/canon/internal/platform/request"
	"github.com/taibuivan/canon/internal/platform/respond"
	"github.com/taibuivan/canon/pkg/pointer"
	"github.com/taibuivan/canon/pkg/query"
)

// Handler implements the HTTP layer for manuscripts and textual criticism.
type Handler struct {
	service *Service
}

// NewHandler constructs a new manuscript [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ManuscriptRoutes serves /api/manuscripts.
func (handler *Handler) ManuscriptRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listManuscripts)
	router.Get("/{id}", handler.getManuscript)
	router.Get("/{id}/verses", handler.listVerses)

	return router
}

// CriticismRoutes serves /api/textual-criticism.
func (handler *Handler) CriticismRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/compare", handler.compare)
	router.Get("/variants", handler.listVariants)
	router.Get("/analytics", handler.analytics)

	return router
}

func (handler *Handler) listManuscripts(writer http.ResponseWriter, request *http.Request) {
	testament, err := testamentParam(requestutil.Query(request, FieldTestament))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	manuscripts, err := handler.service.List(request.Context(), testament)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, manuscripts)
}

func (handler *Handler) getManuscript(writer http.ResponseWriter, request *http.Request) {
	manuscript, err := handler.service.Get(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, manuscript)
}

func (handler *Handler) listVerses(writer http.ResponseWriter, request *http.Request) {
	chapter, err := requestutil.OptionalIntQuery(request, FieldChapter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	verses, err := handler.service.Verses(request.Context(),
		requestutil.Param(request, FieldID),
		requestutil.Query(request, FieldBook),
		chapter,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, verses)
}

/*
GET /api/textual-criticism/compare.

Request:
  - book: string
  - chapter, verse: int
  - manuscripts: comma-separated IDs (optional)
*/
func (handler *Handler) compare(writer http.ResponseWriter, request *http.Request) {
	chapter, err := requestutil.OptionalIntQuery(request, FieldChapter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	verse, err := requestutil.OptionalIntQuery(request, FieldVerse)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comparison, err := handler.service.Compare(request.Context(),
		requestutil.Query(request, FieldBook),
		pointer.Fallback(chapter, 0),
		pointer.Fallback(verse, 0),
		query.StringSlice(requestutil.Query(request, FieldManuscripts)),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comparison)
}

func (handler *Handler) listVariants(writer http.ResponseWriter, request *http.Request) {
	filter, err := variantFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	variants, err := handler.service.Variants(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, variants)
}

func (handler *Handler) analytics(writer http.ResponseWriter, request *http.Request) {
	filter, err := variantFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	analytics, err := handler.service.Analytics(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, analytics)
}

func variantFilter(request *http.Request) (VariantFilter, error) {
	testament, err := testamentParam(requestutil.Query(request, FieldTestament))
	if err != nil {
		return VariantFilter{}, err
	}
	chapter, err := requestutil.OptionalIntQuery(request, FieldChapter)
	if err != nil {
		return VariantFilter{}, err
	}

	return VariantFilter{
		Book:      requestutil.Query(request, FieldBook),
		Chapter:   chapter,
		Testament: testament,
	}, nil
}
