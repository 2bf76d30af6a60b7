// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

var (
	ErrNotJSON   = apperr.BadRequest("Lexicon file is not valid JSON")
	ErrBadShape  = apperr.BadRequest(`Lexicon file must be a JSON array of entries or an object with an "entries" array`)
	ErrMalformed = apperr.BadRequest("Lexicon entries must be objects with string fields and an integer occurrences")
)

/*
ParseEntries reads a lexicon document.

Description: Accepts either a top-level array of entries or an object with
an "entries" array. Every entry needs a non-empty word.

Returns:
  - []Entry: Entries in document order, without IDs
  - error: 400 BadRequest for any other content
*/
func ParseEntries(document []byte) ([]Entry, error) {
	if !json.Valid(document) {
		return nil, ErrNotJSON
	}

	list := bytes.TrimSpace(document)
	if len(list) > 0 && list[0] == '{' {
		var wrapper struct {
			Entries json.RawMessage `json:"entries"`
		}
		if err := json.Unmarshal(list, &wrapper); err != nil {
			return nil, ErrBadShape
		}
		list = bytes.TrimSpace(wrapper.Entries)
	}

	if len(list) == 0 || list[0] != '[' {
		return nil, ErrBadShape
	}

	var entries []Entry
	if err := json.Unmarshal(list, &entries); err != nil {
		return nil, ErrMalformed
	}

	for index := range entries {
		entry := &entries[index]
		entry.ID = ""
		entry.LexiconID = ""
		entry.Word = strings.TrimSpace(entry.Word)
		if entry.Word == "" {
			return nil, apperr.BadRequest(fmt.Sprintf("Lexicon entry %d has no word", index+1))
		}
	}

	return entries, nil
}

// Key folds a word for lookup: NFC composition, lower case, and Greek final
// sigma written as medial sigma.
func Key(word string) string {
	return strings.ReplaceAll(strings.ToLower(norm.NFC.String(strings.TrimSpace(word))), "ς", "σ")
}

// QueryKeys splits free text into distinct lookup keys.
func QueryKeys(text string) []string {
	fields := strings.FieldsFunc(norm.NFC.String(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsMark(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool, len(fields))
	keys := make([]string, 0, len(fields))
	for _, field := range fields {
		key := Key(field)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}
