// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr is the error vocabulary shared by services and the HTTP layer.

Services return *[AppError] values built by the constructors below; the
respond package turns them into {"error", "code", "details"} bodies with the
matching status. Any other error reaching a handler is reported as
INTERNAL_ERROR and its text stays in the server log.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable codes sent in the "code" field.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeBadRequest         = "BAD_REQUEST"
	CodeValidation         = "VALIDATION_ERROR"
	CodeConflict           = "CONFLICT"
	CodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	CodeInternal           = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// AppError is an error a client is allowed to see.
//
// Message and Details are serialized; Cause and HTTPStatus never are.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError names one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

// WithCause attaches a server-side cause and returns e.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func newError(status int, code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// # 4xx

// NotFound reports a missing resource: NotFound("Study session") reads
// "Study session not found".
func NotFound(resource string) *AppError {
	return newError(http.StatusNotFound, CodeNotFound, resource+" not found")
}

// BadRequest reports input that is malformed as a whole rather than in one field.
func BadRequest(msg string) *AppError {
	return newError(http.StatusBadRequest, CodeBadRequest, msg)
}

// ValidationError reports per-field failures.
func ValidationError(msg string, details ...FieldError) *AppError {
	err := newError(http.StatusBadRequest, CodeValidation, msg)
	err.Details = details
	return err
}

// Conflict reports a duplicate id or unique key.
func Conflict(msg string) *AppError {
	return newError(http.StatusConflict, CodeConflict, msg)
}

// PayloadTooLarge reports an upload above limit bytes.
func PayloadTooLarge(limit int64) *AppError {
	return newError(http.StatusRequestEntityTooLarge, CodePayloadTooLarge,
		fmt.Sprintf("Upload exceeds the size limit of %d bytes", limit))
}

// # 5xx

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	return newError(http.StatusInternalServerError, CodeInternal, "An unexpected error occurred").WithCause(cause)
}

// ServiceUnavailable reports a backing service (cache, archive, remote site)
// that could not be reached.
func ServiceUnavailable(msg string, cause error) *AppError {
	return newError(http.StatusServiceUnavailable, CodeServiceUnavailable, msg).WithCause(cause)
}

// # Inspection

// IsAppError reports whether err's chain holds an [*AppError].
func IsAppError(err error) bool {
	return As(err) != nil
}

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var target *AppError
	if errors.As(err, &target) {
		return target
	}
	return nil
}

// IsNotFound reports whether err's chain holds a 404 [AppError].
func IsNotFound(err error) bool {
	target := As(err)
	return target != nil && target.HTTPStatus == http.StatusNotFound
}
