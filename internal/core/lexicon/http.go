// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lexicon

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/canon/internal/platform/apperr"
	requestutil "github.com/taibuivan/canon/internal/platform/request"
	"github.com/taibuivan/canon/internal/platform/respond"
)

// Handler implements the HTTP layer for lexicons.
type Handler struct {
	service        *Service
	maxUploadBytes int64
}

// NewHandler constructs a new lexicon [Handler]. Uploads larger than
// maxUploadBytes are rejected.
func NewHandler(service *Service, maxUploadBytes int64) *Handler {
	return &Handler{service: service, maxUploadBytes: maxUploadBytes}
}

// Routes serves /api/lexicons.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listLexicons)
	router.Post("/", handler.uploadLexicon)
	router.Get("/lookup", handler.lookup)
	router.Get("/{id}", handler.getLexicon)
	router.Get("/{id}/entries", handler.listEntries)
	router.Delete("/{id}", handler.deleteLexicon)

	return router
}

/*
POST /api/lexicons.

Request (multipart/form-data):
  - file: JSON lexicon document
  - name, language, source: form fields

Request (application/json):
  - {name, language, source, entries}

Response:
  - 200: Lexicon
  - 400: Invalid metadata or document
  - 413: Body above MAX_UPLOAD_BYTES
*/
func (handler *Handler) uploadLexicon(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, handler.maxUploadBytes)

	var (
		upload Upload
		err    error
	)
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		upload, err = handler.readMultipart(request)
	} else {
		upload, err = readJSON(request)
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lexicon, err := handler.service.Import(request.Context(), upload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lexicon)
}

func (handler *Handler) readMultipart(request *http.Request) (Upload, error) {
	if err := request.ParseMultipartForm(handler.maxUploadBytes); err != nil {
		return Upload{}, uploadError(err)
	}

	file, _, err := request.FormFile(FieldFile)
	if err != nil {
		return Upload{}, apperr.BadRequest(`Multipart upload needs a "file" part`)
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		return Upload{}, uploadError(err)
	}

	return Upload{
		Name:     request.FormValue(FieldName),
		Language: Language(request.FormValue(FieldLanguage)),
		Source:   request.FormValue(FieldSource),
		Document: document,
	}, nil
}

func readJSON(request *http.Request) (Upload, error) {
	var input struct {
		Name     string          `json:"name"`
		Language Language        `json:"language"`
		Source   string          `json:"source"`
		Entries  json.RawMessage `json:"entries"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		return Upload{}, err
	}
	if len(input.Entries) == 0 {
		return Upload{}, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldEntries,
			Message: "This field is required",
		})
	}

	return Upload{
		Name:     input.Name,
		Language: input.Language,
		Source:   input.Source,
		Document: input.Entries,
	}, nil
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.PayloadTooLarge(tooLarge.Limit)
	}
	return apperr.BadRequest("Malformed upload")
}

func (handler *Handler) listLexicons(writer http.ResponseWriter, request *http.Request) {
	lexicons, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lexicons)
}

func (handler *Handler) getLexicon(writer http.ResponseWriter, request *http.Request) {
	lexicon, err := handler.service.Get(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lexicon)
}

func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.Entries(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) deleteLexicon(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

// lookup serves GET /api/lexicons/lookup?word=&language=.
func (handler *Handler) lookup(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.Lookup(request.Context(),
		requestutil.Query(request, FieldWord),
		Language(requestutil.Query(request, FieldLanguage)),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}
