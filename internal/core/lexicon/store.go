// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lexicon

import "context"

// Repository defines the data access contract for lexicons and entries.
type Repository interface {

	// Create inserts the lexicon and all entries in one transaction.
	Create(context context.Context, lexicon *Lexicon, entries []Entry) error

	List(context context.Context) ([]*Lexicon, error)
	FindByID(context context.Context, id string) (*Lexicon, error)

	// Entries returns the entries of one lexicon ordered by word.
	Entries(context context.Context, lexiconID string) ([]*Entry, error)

	// Delete removes a lexicon with its entries.
	Delete(context context.Context, id string) error

	/*
		Lookup finds entries whose word, lemma or transliteration key equals
		key. An empty language matches every lexicon.
	*/
	Lookup(context context.Context, key string, language Language) ([]*Entry, error)

	// CountMatches counts entries matching any of keys.
	CountMatches(context context.Context, keys []string, language Language) (int, error)
}
