// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/canon/internal/platform/request"
	"github.com/taibuivan/canon/internal/platform/respond"
)

// Handler implements the HTTP layer for study sessions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new session [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves /api/study-sessions.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSessions)
	router.Post("/", handler.startSession)
	router.Get("/last", handler.lastSession)
	router.Get("/in-progress", handler.inProgressSessions)
	router.Get("/{id}", handler.getSession)
	router.Put("/{id}", handler.updateSession)
	router.Patch("/{id}/stage", handler.advanceStage)
	router.Delete("/{id}", handler.deleteSession)

	return router
}

// sessionRequest is the writable part of a [Session].
type sessionRequest struct {
	ID                  string   `json:"id"`
	UserID              string   `json:"user_id"`
	Translation         string   `json:"translation"`
	Book                string   `json:"book"`
	Chapter             int      `json:"chapter"`
	VerseRange          *string  `json:"verse_range"`
	Stage               Stage    `json:"stage"`
	Status              Status   `json:"status"`
	UnresolvedQuestions []string `json:"unresolved_questions"`
}

func (input sessionRequest) toSession() *Session {
	return &Session{
		ID:                  input.ID,
		UserID:              input.UserID,
		Translation:         input.Translation,
		Book:                input.Book,
		Chapter:             input.Chapter,
		VerseRange:          input.VerseRange,
		Stage:               input.Stage,
		Status:              input.Status,
		UnresolvedQuestions: input.UnresolvedQuestions,
	}
}

/*
POST /api/study-sessions.

Response:
  - 200: Session
  - 400: Invalid fields
  - 409: Supplied id already exists
*/
func (handler *Handler) startSession(writer http.ResponseWriter, request *http.Request) {
	var input sessionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Start(request.Context(), input.toSession())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

func (handler *Handler) updateSession(writer http.ResponseWriter, request *http.Request) {
	var input sessionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), input.toSession())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

func (handler *Handler) advanceStage(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Stage Stage `json:"stage"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.AdvanceStage(request.Context(), requestutil.Param(request, "id"), input.Stage)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

func (handler *Handler) lastSession(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.service.Last(request.Context(), requestutil.Query(request, FieldUserID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

func (handler *Handler) inProgressSessions(writer http.ResponseWriter, request *http.Request) {
	sessions, err := handler.service.InProgress(request.Context(), requestutil.Query(request, FieldUserID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sessions)
}

/*
GET /api/study-sessions.

Request:
  - user_id, book, status: string (optional filters)
*/
func (handler *Handler) listSessions(writer http.ResponseWriter, request *http.Request) {
	sessions, err := handler.service.List(request.Context(), Filter{
		UserID: requestutil.Query(request, FieldUserID),
		Book:   requestutil.Query(request, FieldBook),
		Status: Status(requestutil.Query(request, FieldStatus)),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sessions)
}

// deleteSession answers with the deletion acknowledgement plus cascade counts.
func (handler *Handler) deleteSession(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Delete(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct {
		Status string `json:"status"`
		DeleteResult
	}{Status: "deleted", DeleteResult: result})
}
