// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/canon/pkg/slice"
)

func TestMap(t *testing.T) {
	books := []string{"Genesis", "Exodus", "John"}
	assert.Equal(t, []int{7, 6, 4}, slice.Map(books, func(book string) int { return len(book) }))
	assert.Nil(t, slice.Map[string, int](nil, nil))
}

func TestFilter(t *testing.T) {
	books := []string{"Genesis", "Exodus", "John"}
	assert.Equal(t, []string{"Genesis", "Exodus"}, slice.Filter(books, func(book string) bool {
		return strings.Contains(book, "s")
	}))

	none := slice.Filter(books, func(string) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.Nil(t, slice.Filter[string](nil, nil))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"grace", "faith"}, slice.Unique([]string{"grace", "faith", "grace"}))
	assert.Equal(t, []int{3, 1, 2}, slice.Unique([]int{3, 1, 3, 2, 1}))
	assert.Nil(t, slice.Unique[int](nil))
}
