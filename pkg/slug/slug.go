// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug turns titles into lowercase ASCII identifiers.
//
// Latin diacritics are folded ("Justiça" becomes "justica"). Runs of anything
// else, including letters of other scripts, collapse into a single hyphen.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From slugs s with no length limit.
func From(s string) string {
	return FromLimit(s, 0)
}

// FromLimit slugs s and cuts the result to at most limit bytes, backing off to
// the last whole word when the cut lands inside one. A limit of zero or less
// disables the cut.
func FromLimit(s string, limit int) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var builder strings.Builder
	builder.Grow(len(folded))

	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			pendingHyphen = false
			builder.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	result := builder.String()
	if limit <= 0 || len(result) <= limit {
		return result
	}

	result = result[:limit]
	if cut := strings.LastIndexByte(result, '-'); cut > 0 {
		result = result[:cut]
	}
	return strings.TrimRight(result, "-")
}
