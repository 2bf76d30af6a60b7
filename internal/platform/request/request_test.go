// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

func withParam(request *http.Request, name, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(name, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

func TestDecodeJSON(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ACF"}`))
	require.NoError(t, DecodeJSON(request, &target))
	assert.Equal(t, "ACF", target.Name)

	for _, body := range []string{`{"name":`, ``, `{"name":"ACF"} {"name":"KJV"}`} {
		request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := DecodeJSON(request, &target)
		require.Error(t, err, body)
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus, body)
	}

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("a", 64)+`"}`))
	request.Body = http.MaxBytesReader(httptest.NewRecorder(), request.Body, 16)
	err := DecodeJSON(request, &target)
	require.Error(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, apperr.As(err).HTTPStatus)
}

func TestPositiveIntParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"150", 150, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			request := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "chapter", tt.raw)
			got, err := PositiveIntParam(request, "chapter")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalIntQuery(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?chapter=3&bad=x", nil)

	value, err := OptionalIntQuery(request, "chapter")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 3, *value)

	value, err = OptionalIntQuery(request, "verse")
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = OptionalIntQuery(request, "bad")
	assert.Error(t, err)
}

func TestQueryTrims(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?book=+Romans+", nil)
	assert.Equal(t, "Romans", Query(request, "book"))
}
