// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// LexiconEntryTable represents the 'lexicon.entry' table
type LexiconEntryTable struct {
	Table           string
	ID              string
	LexiconID       string
	Word            string
	Lemma           string
	Transliteration string
	Meaning         string
	Morphology      string
	Strongs         string
	Occurrences     string
	WordKey         string
	LemmaKey        string
	TranslitKey     string
}

// LexiconEntry is the schema definition for lexicon.entry
var LexiconEntry = LexiconEntryTable{
	Table:           "lexicon.entry",
	ID:              "id",
	LexiconID:       "lexiconid",
	Word:            "word",
	Lemma:           "lemma",
	Transliteration: "transliteration",
	Meaning:         "meaning",
	Morphology:      "morphology",
	Strongs:         "strongs",
	Occurrences:     "occurrences",
	WordKey:         "wordkey",
	LemmaKey:        "lemmakey",
	TranslitKey:     "translitkey",
}

func (t LexiconEntryTable) Columns() []string {
	return []string{
		t.ID, t.LexiconID, t.Word, t.Lemma, t.Transliteration, t.Meaning, t.Morphology, t.Strongs, t.Occurrences, t.WordKey, t.LemmaKey, t.TranslitKey,
	}
}
