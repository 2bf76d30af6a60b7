// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bible

import "context"

// # Bible Data Access

// Repository defines the data access contract for translations and verses.
type Repository interface {

	// ListTranslations returns every stored translation without its document.
	ListTranslations(context context.Context) ([]TranslationSummary, error)

	/*
		UpsertTranslation inserts the translation or replaces the row with the
		same ID wholesale.

		Parameters:
		  - context: context.Context
		  - translation: *Translation (CreatedAt already assigned)

		Returns:
		  - error: Database failures
	*/
	UpsertTranslation(context context.Context, translation *Translation) error

	// FindTranslation returns the translation with the exact ID.
	FindTranslation(context context.Context, id string) (*Translation, error)

	/*
		FindTranslationByReference resolves a translation by ID first and by
		abbreviation second.

		Returns:
		  - *Translation: The matching translation
		  - error: apperr.NotFound("Translation") when neither matches
	*/
	FindTranslationByReference(context context.Context, reference string) (*Translation, error)

	// DeleteTranslation removes a translation document. NotFound if absent.
	DeleteTranslation(context context.Context, id string) error

	/*
		ChapterVerses returns normalized verses ordered by ascending verse number.

		Returns:
		  - []Verse: Empty when the chapter is not normalized
		  - error: Database failures
	*/
	ChapterVerses(context context.Context, translation, book string, chapter int) ([]Verse, error)

	// UpsertVerses writes verses for a translation in one transaction and
	// returns the number of rows written.
	UpsertVerses(context context.Context, translation string, verses []VerseRecord) (int, error)

	// ListBooks summarizes the normalized books of a translation.
	ListBooks(context context.Context, translation string) ([]BookSummary, error)
}
