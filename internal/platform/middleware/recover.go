// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/taibuivan/canon/internal/platform/ctxutil"
)

// PanicRecovery turns a handler panic into a logged 500. The fallback logger
// is used only when no request logger was installed upstream.
func PanicRecovery(fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				// net/http uses this sentinel to abort a response on purpose.
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				logger := ctxutil.GetLogger(request.Context())
				if logger == slog.Default() && fallback != nil {
					logger = fallback
				}
				logger.ErrorContext(request.Context(), "panic_recovered",
					slog.Any("error", recovered),
					slog.String("stack", string(debug.Stack())),
				)

				writeError(writer, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
			}()

			next.ServeHTTP(writer, request)
		})
	}
}
