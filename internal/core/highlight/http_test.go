// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package highlight

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_Highlights(t *testing.T) {
	service, _ := newTestService(t)
	router := chi.NewRouter()
	router.Mount("/api/highlights", NewHandler(service).Routes())

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(method, target, strings.NewReader(body))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	created := serve(http.MethodPost, "/api/highlights",
		`{"id":"h-1","session_id":"s-1","verse":1,"start_offset":0,"end_offset":20,"text":"No princípio era o Verbo","color":"blue"}`)
	require.Equal(t, http.StatusOK, created.Code, created.Body.String())

	var highlight Highlight
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &highlight))
	assert.Equal(t, ColorBlue, highlight.Color)
	assert.False(t, highlight.CreatedAt.IsZero())

	duplicate := serve(http.MethodPost, "/api/highlights",
		`{"id":"h-1","session_id":"s-1","verse":1,"color":"blue"}`)
	assert.Equal(t, http.StatusConflict, duplicate.Code)

	listed := serve(http.MethodGet, "/api/highlights?session_id=s-1&verse=1", "")
	assert.Equal(t, http.StatusOK, listed.Code)
	assert.Contains(t, listed.Body.String(), `"id":"h-1"`)

	assert.JSONEq(t, `[]`, serve(http.MethodGet, "/api/highlights?verse=2", "").Body.String())
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodGet, "/api/highlights?verse=two", "").Code)
	assert.Equal(t, http.StatusNotFound,
		serve(http.MethodPost, "/api/highlights", `{"session_id":"ghost","verse":1,"color":"green"}`).Code)

	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/highlights/h-1", "").Code)
	assert.Equal(t, http.StatusOK, serve(http.MethodDelete, "/api/highlights/h-1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(http.MethodDelete, "/api/highlights/h-1", "").Code)
}
