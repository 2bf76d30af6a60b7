// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil reads path parameters, query values and JSON bodies in
the shapes Canon handlers expect, turning bad input into 400 responses.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/validate"
)

/*
DecodeJSON decodes the body into target.

An empty body, malformed JSON and trailing data after the document all map
to 400 "Invalid JSON payload"; a body cut off by http.MaxBytesReader maps to
413.
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(request.Body)

	if err := decoder.Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.PayloadTooLarge(tooLarge.Limit)
		}
		return validate.ErrInvalidJSON
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
PositiveIntParam parses a named URL parameter as a positive integer.

Returns:
  - int: The parsed value
  - error: 400 VALIDATION_ERROR when missing, non-numeric, or below 1
*/
func PositiveIntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   name,
			Message: "Must be a positive integer",
		})
	}
	return value, nil
}

/*
Query returns a trimmed query string value.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
OptionalIntQuery parses an optional integer query parameter.

Returns nil when the parameter is absent, and a 400 VALIDATION_ERROR when it
is present but not an integer.
*/
func OptionalIntQuery(request *http.Request, name string) (*int, error) {
	raw := Query(request, name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   name,
			Message: "Must be an integer",
		})
	}
	return &value, nil
}
