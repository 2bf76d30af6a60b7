// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// LexiconLexiconTable represents the 'lexicon.lexicon' table
type LexiconLexiconTable struct {
	Table      string
	ID         string
	Name       string
	Language   string
	Source     string
	EntryCount string
	ArchiveKey string
	CreatedAt  string
}

// LexiconLexicon is the schema definition for lexicon.lexicon
var LexiconLexicon = LexiconLexiconTable{
	Table:      "lexicon.lexicon",
	ID:         "id",
	Name:       "name",
	Language:   "language",
	Source:     "source",
	EntryCount: "entrycount",
	ArchiveKey: "archivekey",
	CreatedAt:  "createdat",
}

func (t LexiconLexiconTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Language, t.Source, t.EntryCount, t.ArchiveKey, t.CreatedAt,
	}
}
