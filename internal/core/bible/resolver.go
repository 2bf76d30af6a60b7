// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bible

import (
	"encoding/json"
	"strconv"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

const (
	memberBooks    = "books"
	memberName     = "name"
	memberChapters = "chapters"
	memberNumber   = "number"
	memberVerses   = "verses"
)

var (
	// ErrBookNotFound is returned when the document has no matching book.
	ErrBookNotFound = apperr.NotFound("Book")

	// ErrChapterNotFound is returned when the book has no matching chapter.
	ErrChapterNotFound = apperr.NotFound("Chapter")
)

/*
ResolveDocument extracts the verse list of book/chapter from a translation
document.

Accepted shapes for data.books:

  - keyed: {"Genesis": <book>} where <book> is the chapters collection or a
    record carrying "chapters".
  - ordered: [{"name": "Genesis", "chapters": <chapters>}, ...].

Accepted shapes for the chapters collection:

  - keyed: {"1": <chapter>} where <chapter> is the verse list or a record
    carrying "verses".
  - ordered: [{"number": 1, "verses": [...]}, ...], falling back to the
    element at position chapter-1 when no number matches.

Book names match exactly. The returned verse list is the document's own JSON.
*/
func ResolveDocument(data json.RawMessage, book string, chapter int) (json.RawMessage, error) {
	chapters, ok := findBook(data, book)
	if !ok {
		return nil, ErrBookNotFound
	}

	verses, ok := findChapter(chapters, chapter)
	if !ok {
		return nil, ErrChapterNotFound
	}

	return verses, nil
}

// findBook returns the chapters collection for book.
func findBook(data json.RawMessage, book string) (json.RawMessage, bool) {
	document := newEntry("", data)
	books, _ := document.field(memberBooks)

	collection := newContainer(books)
	switch collection.shape {
	case shapeKeyed:
		for _, item := range collection.entries {
			if item.key != book {
				continue
			}
			chapters := item.unwrap(memberChapters)
			return chapters, !isNull(chapters)
		}

	case shapeOrdered:
		for _, item := range collection.entries {
			if !item.stringField(memberName, book) {
				continue
			}
			chapters, _ := item.field(memberChapters)
			return chapters, !isNull(chapters)
		}
	}

	return nil, false
}

// findChapter returns the verse list for chapter within a chapters collection.
func findChapter(chapters json.RawMessage, chapter int) (json.RawMessage, bool) {
	collection := newContainer(chapters)
	switch collection.shape {
	case shapeKeyed:
		key := strconv.Itoa(chapter)
		for _, item := range collection.entries {
			if item.key != key {
				continue
			}
			verses := item.unwrap(memberVerses)
			return verses, !isNull(verses)
		}

	case shapeOrdered:
		// The first record with a matching number wins, even when its verses
		// are missing; positional lookup then gets a chance.
		for _, item := range collection.entries {
			if !item.numberField(memberNumber, chapter) {
				continue
			}
			if verses, _ := item.field(memberVerses); !isNull(verses) {
				return verses, true
			}
			break
		}

		if chapter >= 1 && len(collection.entries) >= chapter {
			verses := collection.entries[chapter-1].unwrap(memberVerses)
			return verses, !isNull(verses)
		}
	}

	return nil, false
}
