// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware holds the HTTP decorators every Canon route passes through.

Order matters. The router installs them as

	RequestID -> StructuredLogger -> chi Timeout -> CORS -> RateLimit -> PanicRecovery

so that the request logger already carries the correlation id when a limit
is hit or a handler panics, and a 429 still carries the CORS headers.
*/
package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/taibuivan/canon/internal/platform/constants"
)

// RealIP returns the client address, preferring proxy headers over the socket.
func RealIP(request *http.Request) string {
	if ip := strings.TrimSpace(request.Header.Get(constants.HeaderXRealIP)); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if host, _, err := net.SplitHostPort(request.RemoteAddr); err == nil {
		return host
	}
	return request.RemoteAddr
}

// writeError emits the {"error","code"} body used by the respond package.
func writeError(writer http.ResponseWriter, status int, code, message string) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]string{
		constants.FieldError: message,
		constants.FieldCode:  code,
	})
}
