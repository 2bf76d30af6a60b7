// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/canon/internal/platform/constants"
)

var (
	corsMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsExposed = strings.Join([]string{
		"Content-Length", "Content-Disposition", "Retry-After", constants.HeaderXRequestID, constants.HeaderTotalCount,
	}, ", ")
)

// CORS opens the API to every origin. Canon runs without accounts, so the
// browser study client may live on any host.
func CORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			header := writer.Header()

			// A wildcard origin cannot be combined with credentials.
			if origin := request.Header.Get(constants.HeaderOrigin); origin != "" {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Add("Vary", constants.HeaderOrigin)
			} else {
				header.Set("Access-Control-Allow-Origin", "*")
			}

			requested := request.Header.Get("Access-Control-Request-Headers")
			if requested == "" {
				requested = "*"
			}
			header.Set("Access-Control-Allow-Methods", corsMethods)
			header.Set("Access-Control-Allow-Headers", requested)
			header.Set("Access-Control-Expose-Headers", corsExposed)
			header.Set("Access-Control-Max-Age", "600")

			if request.Method == http.MethodOptions && request.Header.Get("Access-Control-Request-Method") != "" {
				writer.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
