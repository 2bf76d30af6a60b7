// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BibleVerseTable represents the 'bible.verse' table
type BibleVerseTable struct {
	Table       string
	Translation string
	Book        string
	Chapter     string
	Verse       string
	Text        string
}

// BibleVerse is the schema definition for bible.verse
var BibleVerse = BibleVerseTable{
	Table:       "bible.verse",
	Translation: "translation",
	Book:        "book",
	Chapter:     "chapter",
	Verse:       "verse",
	Text:        "text",
}

func (t BibleVerseTable) Columns() []string {
	return []string{
		t.Translation, t.Book, t.Chapter, t.Verse, t.Text,
	}
}
