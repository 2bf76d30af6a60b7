// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bible

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/canon/internal/platform/request"
	"github.com/taibuivan/canon/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for translations and chapter lookup.
type Handler struct {
	service *Service
}

// NewHandler constructs a new bible [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TranslationRoutes serves /api/translations.
func (handler *Handler) TranslationRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTranslations)
	router.Post("/", handler.saveTranslation)
	router.Get("/{id}", handler.getTranslation)
	router.Delete("/{id}", handler.deleteTranslation)

	return router
}

// BibleRoutes serves /api/bible.
func (handler *Handler) BibleRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{translation}/books", handler.listBooks)
	router.Put("/{translation}/verses", handler.importVerses)
	router.Get("/{translation}/{book}/{chapter}", handler.getChapter)

	return router
}

// # Translation Endpoints

// translationRequest keeps Data raw so the document is stored byte-for-byte.
type translationRequest struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Abbreviation string          `json:"abbreviation"`
	Data         json.RawMessage `json:"data"`
}

func (handler *Handler) listTranslations(writer http.ResponseWriter, request *http.Request) {
	translations, err := handler.service.ListTranslations(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, translations)
}

/*
POST /api/translations.

Description: Creates the translation or replaces the one with the same id.

Request:
  - id, name, abbreviation: string
  - data: object (the whole translation document)

Response:
  - 200: TranslationSummary
  - 400: Missing fields or non-object data
*/
func (handler *Handler) saveTranslation(writer http.ResponseWriter, request *http.Request) {
	var input translationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.SaveTranslation(request.Context(), &Translation{
		ID:           input.ID,
		Name:         input.Name,
		Abbreviation: input.Abbreviation,
		Data:         input.Data,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

func (handler *Handler) getTranslation(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.service.GetTranslation(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, document)
}

func (handler *Handler) deleteTranslation(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteTranslation(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

// # Bible Endpoints

/*
GET /api/bible/{translation}/{book}/{chapter}.

Response:
  - 200: Chapter
  - 400: chapter is not a positive integer
  - 404: Translation, book, or chapter not found
*/
func (handler *Handler) getChapter(writer http.ResponseWriter, request *http.Request) {
	chapterNumber, err := requestutil.PositiveIntParam(request, "chapter")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.ResolveChapter(request.Context(),
		requestutil.Param(request, "translation"),
		requestutil.Param(request, "book"),
		chapterNumber,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chapter)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context(), requestutil.Param(request, "translation"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

/*
PUT /api/bible/{translation}/verses.

Request: []VerseRecord

Response:
  - 200: {"translation": string, "imported": int}
*/
func (handler *Handler) importVerses(writer http.ResponseWriter, request *http.Request) {
	var verses []VerseRecord
	if err := requestutil.DecodeJSON(request, &verses); err != nil {
		respond.Error(writer, request, err)
		return
	}

	translation := requestutil.Param(request, "translation")
	written, err := handler.service.ImportVerses(request.Context(), translation, verses)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"translation": translation, "imported": written})
}
