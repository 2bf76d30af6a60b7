// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/canon/internal/platform/request"
	"github.com/taibuivan/canon/internal/platform/respond"
)

// Handler implements the HTTP layer for sermons.
type Handler struct {
	service *Service
}

// NewHandler constructs a new sermon [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves /api/sermons.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSermons)
	router.Post("/", handler.createSermon)
	router.Get("/exports/{token}", handler.downloadExport)
	router.Get("/{id}", handler.getSermon)
	router.Put("/{id}", handler.updateSermon)
	router.Delete("/{id}", handler.deleteSermon)
	router.Post("/{id}/export", handler.exportSermon)

	return router
}

// sermonRequest is the writable part of a [Sermon].
type sermonRequest struct {
	ID           string          `json:"id"`
	SessionID    string          `json:"session_id"`
	Title        string          `json:"title"`
	CentralIdea  string          `json:"central_idea"`
	Outline      []Division      `json:"outline"`
	Applications []Application   `json:"applications"`
	Export       json.RawMessage `json:"export"`
}

func (input sermonRequest) toSermon() *Sermon {
	sermon := &Sermon{
		ID:           input.ID,
		SessionID:    input.SessionID,
		Title:        input.Title,
		CentralIdea:  input.CentralIdea,
		Outline:      input.Outline,
		Applications: input.Applications,
	}
	// A literal null is the same as leaving the export out.
	if string(input.Export) != "null" {
		sermon.Export = input.Export
	}
	return sermon
}

func (handler *Handler) listSermons(writer http.ResponseWriter, request *http.Request) {
	sermons, err := handler.service.List(request.Context(), requestutil.Query(request, FieldSessionID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sermons)
}

/*
POST /api/sermons.

Response:
  - 200: Sermon
  - 400: Invalid fields
  - 404: Session does not exist
*/
func (handler *Handler) createSermon(writer http.ResponseWriter, request *http.Request) {
	var input sermonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sermon, err := handler.service.Create(request.Context(), input.toSermon())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sermon)
}

func (handler *Handler) getSermon(writer http.ResponseWriter, request *http.Request) {
	sermon, err := handler.service.Get(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sermon)
}

func (handler *Handler) updateSermon(writer http.ResponseWriter, request *http.Request) {
	var input sermonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sermon, err := handler.service.Update(request.Context(), requestutil.Param(request, FieldID), input.toSermon())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sermon)
}

func (handler *Handler) deleteSermon(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

/*
POST /api/sermons/{id}/export.

Response:
  - 200: Export with the download token and its expiry
  - 404: Sermon does not exist
*/
func (handler *Handler) exportSermon(writer http.ResponseWriter, request *http.Request) {
	export, err := handler.service.Export(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, export)
}

/*
GET /api/sermons/exports/{token}.

Query:
  - format=raw: serve the Markdown file itself as an attachment

Response:
  - 200: {sermon_id, filename, markdown}
  - 404: Unknown or expired token
*/
func (handler *Handler) downloadExport(writer http.ResponseWriter, request *http.Request) {
	link, err := handler.service.Download(request.Context(), requestutil.Param(request, FieldToken))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if requestutil.Query(request, "format") == "raw" {
		writer.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		writer.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": link.Filename}))
		writer.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(writer, link.Markdown)
		return
	}
	respond.OK(writer, link)
}
