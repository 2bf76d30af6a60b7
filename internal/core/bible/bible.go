// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bible owns Bible translations and the normalized verse table, and
resolves chapters out of either of them.

Two representations of a translation coexist:

  - Normalized: one row per (translation, book, chapter, verse). Seeded or
    bulk imported, always authoritative.
  - Document: the whole translation stored as one JSON document uploaded by
    a client. Its shape is not enforced; see [ResolveDocument].
*/
package bible

import (
	"encoding/json"
	"time"
)

// # Field Names

const (
	FieldID           = "id"
	FieldName         = "name"
	FieldAbbreviation = "abbreviation"
	FieldData         = "data"
	FieldBook         = "book"
	FieldChapter      = "chapter"
	FieldVerse        = "verse"
	FieldText         = "text"
)

// # Chapter Source

// Source tells the caller which representation answered a chapter request.
type Source string

const (
	// SourceNormalized means the verses came from the verse table.
	SourceNormalized Source = "normalized"

	// SourceDocument means the verses were extracted from a translation document.
	SourceDocument Source = "document"
)

// # Entities

// Translation is a named Bible text stored as a single JSON document.
type Translation struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Abbreviation string          `json:"abbreviation"`
	Data         json.RawMessage `json:"data"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Summary strips the document from a translation.
func (translation *Translation) Summary() TranslationSummary {
	return TranslationSummary{
		ID:           translation.ID,
		Name:         translation.Name,
		Abbreviation: translation.Abbreviation,
		CreatedAt:    translation.CreatedAt,
	}
}

// TranslationSummary is the listing shape of a [Translation].
type TranslationSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	CreatedAt    time.Time `json:"created_at"`
}

// Verse is one verse of a resolved chapter.
type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// VerseRecord is a fully addressed row of the normalized verse table.
type VerseRecord struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

// BookSummary lists a book present in the normalized table.
type BookSummary struct {
	Book     string `json:"book"`
	Chapters int    `json:"chapters"`
	Verses   int    `json:"verses"`
}

// Chapter is the result of chapter resolution.
//
// Verses is passed through verbatim when it comes from a document, so its
// element shape is whatever the uploader used.
type Chapter struct {
	Translation string          `json:"translation"`
	Book        string          `json:"book"`
	Chapter     int             `json:"chapter"`
	Source      Source          `json:"source"`
	Verses      json.RawMessage `json:"verses"`
}
