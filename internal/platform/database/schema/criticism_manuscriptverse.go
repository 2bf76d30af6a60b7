// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CriticismManuscriptVerseTable represents the 'criticism.manuscriptverse' table
type CriticismManuscriptVerseTable struct {
	Table           string
	ManuscriptID    string
	Book            string
	Chapter         string
	Verse           string
	Text            string
	Transliteration string
}

// CriticismManuscriptVerse is the schema definition for criticism.manuscriptverse
var CriticismManuscriptVerse = CriticismManuscriptVerseTable{
	Table:           "criticism.manuscriptverse",
	ManuscriptID:    "manuscriptid",
	Book:            "book",
	Chapter:         "chapter",
	Verse:           "verse",
	Text:            "text",
	Transliteration: "transliteration",
}

func (t CriticismManuscriptVerseTable) Columns() []string {
	return []string{
		t.ManuscriptID, t.Book, t.Chapter, t.Verse, t.Text, t.Transliteration,
	}
}
