// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/canon/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		query  string
		params pagination.Params
		offset int
	}{
		{"", pagination.Params{Page: 1, Limit: 20}, 0},
		{"?page=3&limit=10", pagination.Params{Page: 3, Limit: 10}, 20},
		{"?page=-2&limit=0", pagination.Params{Page: 1, Limit: 20}, 0},
		{"?page=x&limit=500", pagination.Params{Page: 1, Limit: 100}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/api/curated"+tc.query, nil))
			assert.Equal(t, tc.params, params)
			assert.Equal(t, tc.offset, params.Offset())
		})
	}
}
