// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/canon/internal/platform/request"
	"github.com/taibuivan/canon/internal/platform/respond"
	"github.com/taibuivan/canon/pkg/convert"
)

// Handler implements the HTTP layer for notes.
type Handler struct {
	service *Service
}

// NewHandler constructs a new note [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves /api/notes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listNotes)
	router.Post("/", handler.saveNote)
	router.Get("/{id}", handler.getNote)
	router.Delete("/{id}", handler.deleteNote)

	return router
}

/*
GET /api/notes.

Request:
  - session_id, source: string (optional)
  - pinned: bool (optional)
*/
func (handler *Handler) listNotes(writer http.ResponseWriter, request *http.Request) {
	notes, err := handler.service.List(request.Context(), Filter{
		SessionID: requestutil.Query(request, FieldSessionID),
		Source:    requestutil.Query(request, FieldSource),
		Pinned:    convert.OptionalBool(requestutil.Query(request, "pinned")),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, notes)
}

func (handler *Handler) saveNote(writer http.ResponseWriter, request *http.Request) {
	var input Note
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.Save(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, note)
}

func (handler *Handler) getNote(writer http.ResponseWriter, request *http.Request) {
	note, err := handler.service.Get(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, note)
}

func (handler *Handler) deleteNote(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}
