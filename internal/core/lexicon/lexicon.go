// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package lexicon imports and queries original-language lexicons.

A lexicon is uploaded wholesale as a JSON document and its entries are never
edited afterwards; replacing a lexicon means deleting it and uploading again.
*/
package lexicon

import "time"

// Language is the original language a lexicon describes.
type Language string

const (
	LanguageGreek   Language = "greek"
	LanguageHebrew  Language = "hebrew"
	LanguageAramaic Language = "aramaic"
)

// Languages lists every accepted [Language].
var Languages = []string{string(LanguageGreek), string(LanguageHebrew), string(LanguageAramaic)}

const (
	FieldID       = "id"
	FieldName     = "name"
	FieldLanguage = "language"
	FieldSource   = "source"
	FieldEntries  = "entries"
	FieldWord     = "word"
	FieldFile     = "file"
)

// Lexicon is an uploaded dictionary of one original language.
type Lexicon struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Language   Language  `json:"language"`
	Source     string    `json:"source"`
	EntryCount int       `json:"entry_count"`
	ArchiveKey *string   `json:"archive_key"`
	CreatedAt  time.Time `json:"created_at"`
}

// Entry is one headword of a lexicon.
type Entry struct {
	ID              string `json:"id"`
	LexiconID       string `json:"lexicon_id"`
	Word            string `json:"word"`
	Lemma           string `json:"lemma"`
	Transliteration string `json:"transliteration"`
	Meaning         string `json:"meaning"`
	Morphology      string `json:"morphology"`
	Strongs         string `json:"strongs"`
	Occurrences     int    `json:"occurrences"`
}

// Upload is a lexicon to import together with its raw document.
type Upload struct {
	Name     string
	Language Language
	Source   string

	// Document is the JSON file as received; it is parsed by [ParseEntries]
	// and archived verbatim.
	Document []byte
}
