// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package highlight

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/canon/internal/platform/request"
	"github.com/taibuivan/canon/internal/platform/respond"
)

// Handler implements the HTTP layer for highlights.
type Handler struct {
	service *Service
}

// NewHandler constructs a new highlight [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves /api/highlights.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listHighlights)
	router.Post("/", handler.createHighlight)
	router.Get("/{id}", handler.getHighlight)
	router.Delete("/{id}", handler.deleteHighlight)

	return router
}

func (handler *Handler) listHighlights(writer http.ResponseWriter, request *http.Request) {
	verse, err := requestutil.OptionalIntQuery(request, FieldVerse)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	highlights, err := handler.service.List(request.Context(), Filter{
		SessionID: requestutil.Query(request, FieldSessionID),
		Verse:     verse,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, highlights)
}

func (handler *Handler) createHighlight(writer http.ResponseWriter, request *http.Request) {
	var input Highlight
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	highlight, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, highlight)
}

func (handler *Handler) getHighlight(writer http.ResponseWriter, request *http.Request) {
	highlight, err := handler.service.Get(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, highlight)
}

func (handler *Handler) deleteHighlight(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}
