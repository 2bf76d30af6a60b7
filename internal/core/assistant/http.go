// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package assistant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/canon/internal/platform/request"
	"github.com/taibuivan/canon/internal/platform/respond"
)

// Handler implements the HTTP layer for the assistant.
type Handler struct {
	service *Service
}

// NewHandler constructs a new assistant [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves /api/assistant and its /api/didaskalos alias.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/query", handler.query)
	return router
}

/*
POST /api/assistant/query.

Request:
  - query: string
  - context: {session_id, stage, book, chapter, language} (optional)

Response:
  - 200: Answer
*/
func (handler *Handler) query(writer http.ResponseWriter, request *http.Request) {
	var input Query
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	answer, err := handler.service.Ask(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, answer)
}
