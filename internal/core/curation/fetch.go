// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package curation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taibuivan/canon/internal/platform/constants"
)

// maxPageBytes bounds a fetched HTML page.
const maxPageBytes = 10 << 20

// Fetcher downloads the HTML of a web page.
type Fetcher interface {
	Fetch(context context.Context, pageURL string) ([]byte, error)
}

// HTTPFetcher implements [Fetcher] over plain HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher whose requests give up after timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

/*
Fetch downloads pageURL.

Description: Non-200 responses and bodies above 10 MiB are errors; a body
exactly at the limit is treated as truncated.
*/
func (fetcher *HTTPFetcher) Fetch(context context.Context, pageURL string) ([]byte, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("User-Agent", constants.AppName+"/"+constants.AppVersion)
	request.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	response, err := fetcher.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", pageURL, response.StatusCode)
	}
	if response.ContentLength > maxPageBytes {
		return nil, fmt.Errorf("fetch %s: content length %d exceeds %d bytes", pageURL, response.ContentLength, maxPageBytes)
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", pageURL, err)
	}
	if len(body) >= maxPageBytes {
		return nil, fmt.Errorf("fetch %s: body exceeds %d bytes", pageURL, maxPageBytes)
	}
	return body, nil
}
