// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package curation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/canon/internal/platform/request"
	"github.com/taibuivan/canon/internal/platform/respond"
	"github.com/taibuivan/canon/pkg/pagination"
)

// Handler implements the read-only HTTP layer for curated content.
type Handler struct {
	service *Service
}

// NewHandler constructs a new curation [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves /api/curated.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listContent)
	router.Get("/sections", handler.listSections)
	router.Get("/sources", handler.listSources)
	router.Get("/{id}", handler.getContent)

	return router
}

/*
GET /api/curated.

Request:
  - section, source_id, tag: string (optional)
  - page, limit: int (optional, limit capped at 100)

Response:
  - 200: []Content with X-Total-Count
*/
func (handler *Handler) listContent(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Section:  requestutil.Query(request, FieldSection),
		SourceID: requestutil.Query(request, FieldSourceID),
		Tag:      requestutil.Query(request, FieldTag),
	}

	items, total, err := handler.service.List(request.Context(), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, items, total)
}

func (handler *Handler) listSections(writer http.ResponseWriter, request *http.Request) {
	sections, err := handler.service.Sections(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sections)
}

func (handler *Handler) listSources(writer http.ResponseWriter, request *http.Request) {
	sources, err := handler.service.Sources(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sources)
}

func (handler *Handler) getContent(writer http.ResponseWriter, request *http.Request) {
	content, err := handler.service.Get(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, content)
}
