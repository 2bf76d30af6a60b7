// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package assistant

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

func TestHTTP_QueryOnBothPaths(t *testing.T) {
	handler := NewHandler(newTestService(&fakeLexicons{}))
	router := chi.NewRouter()
	router.Mount("/api/assistant", handler.Routes())
	router.Mount("/api/didaskalos", handler.Routes())

	for _, path := range []string{"/api/assistant/query", "/api/didaskalos/query"} {
		t.Run(path, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, path,
				strings.NewReader(`{"query":"posso pregar?","context":{"session_id":"s-1","stage":"observation","book":"Romans","chapter":3}}`))
			request.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

			var answer Answer
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &answer))
			assert.Equal(t, "Method guidance for Romans 3: focus on observation and let the biblical text govern your next step.", answer.Answer)
			assert.Equal(t, Warning, answer.Warning)
			assert.Equal(t, 3, answer.NoteCount)
		})
	}
}

func TestHTTP_QueryRejectsMalformedBody(t *testing.T) {
	router := chi.NewRouter()
	router.Mount("/api/assistant", NewHandler(newTestService(&fakeLexicons{})).Routes())

	request := httptest.NewRequest(http.MethodPost, "/api/assistant/query", strings.NewReader(`{`))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
