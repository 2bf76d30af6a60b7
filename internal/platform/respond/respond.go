// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond writes every Canon HTTP response.
//
// Success bodies are the bare resource, an object or an array, never wrapped.
// Failures always use [ErrorEnvelope].
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/constants"
	"github.com/taibuivan/canon/internal/platform/ctxutil"
)

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload as the body.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, data)
}

// List writes a 200 OK array response and advertises the unpaged total in the
// X-Total-Count header.
func List(writer http.ResponseWriter, items any, total int) {
	writer.Header().Set(constants.HeaderTotalCount, strconv.Itoa(total))
	JSON(writer, http.StatusOK, items)
}

// Deleted writes the static deletion acknowledgement.
func Deleted(writer http.ResponseWriter) {
	JSON(writer, http.StatusOK, map[string]string{constants.FieldStatus: constants.StatusDeleted})
}

// Error writes err as an [ErrorEnvelope]. Errors that are not
// [apperr.AppError] values become a generic 500 and their text is logged only.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	switch {
	case appError.HTTPStatus >= http.StatusInternalServerError:
		logger.ErrorContext(ctx, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.Any("cause", appError.Cause),
		)
	default:
		logger.DebugContext(ctx, "api_client_error",
			slog.String("code", appError.Code),
			slog.String("error", appError.Message),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
